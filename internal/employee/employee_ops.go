package employee

import (
	"go-proyek/internal/attendance"
	"go-proyek/internal/state"
)

// Add menambahkan karyawan ke roster dan men-seed satu baris absensi
// kosong ke SETIAP periode milik proyeknya, bukan hanya periode aktif.
func Add(st *state.AppState, emp state.Employee) error {
	st.Employees = append(st.Employees, emp)
	for _, p := range st.PeriodsForProject(emp.ProjectID) {
		records, err := attendance.AddEmployeeToPeriod(st.Attendance[p.ID], p, emp.ID)
		if err != nil {
			return err
		}
		st.Attendance[p.ID] = records
	}
	return nil
}

// Remove menghapus karyawan dari roster. Record absensi lama yang masih
// menunjuk id ini SENGAJA dibiarkan (delete tidak cascade, angka historis
// dipertahankan); agregasi gaji melewatinya karena iterasi atas roster.
func Remove(st *state.AppState, employeeID string) bool {
	for i, e := range st.Employees {
		if e.ID == employeeID {
			st.Employees = append(st.Employees[:i], st.Employees[i+1:]...)
			return true
		}
	}
	return false
}

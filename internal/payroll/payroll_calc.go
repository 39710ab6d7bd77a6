package payroll

import "go-proyek/internal/state"

// Summary adalah hasil gaji satu karyawan untuk satu periode. Semua nilai
// uang dalam satuan rupiah bulat (int64), tanpa pecahan.
type Summary struct {
	WorkDays      int
	OvertimeHours float64
	BasicPay      int64
	OvertimePay   int64
	TotalPay      int64
}

// Compute menurunkan gaji dari satu record absensi dan rate card karyawan.
// workDays menghitung hari dengan isPresent=true; jam lembur dijumlah dari
// SEMUA entri hari terlepas dari kehadiran, lembur pada hari absen tetap
// dibayar, itu perilaku yang disengaja. Record kosong (karyawan tanpa
// baris absensi) menghasilkan nol di semua field, bukan error.
func Compute(emp state.Employee, rec state.AttendanceRecord) Summary {
	var out Summary
	for _, day := range rec.Days {
		if day.IsPresent {
			out.WorkDays++
		}
		out.OvertimeHours += day.OvertimeHours
	}
	out.BasicPay = int64(out.WorkDays) * emp.DailyRate
	out.OvertimePay = int64(out.OvertimeHours * float64(emp.OvertimeRate))
	out.TotalPay = out.BasicPay + out.OvertimePay
	return out
}

// recordFor mencari record absensi karyawan dalam satu periode; bila tidak
// ada, mengembalikan record kosong sehingga baris gaji tetap muncul nol.
func recordFor(records []state.AttendanceRecord, employeeID string) state.AttendanceRecord {
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			return rec
		}
	}
	return state.AttendanceRecord{EmployeeID: employeeID}
}

// PeriodTotal menjumlahkan totalPay seluruh karyawan proyek untuk satu
// periode, terlepas dari ada tidaknya record absensi mereka. Record yang
// menunjuk karyawan yang sudah dihapus otomatis tidak terhitung karena
// iterasi berjalan atas roster, bukan atas record.
func PeriodTotal(st state.AppState, projectID, periodID string) int64 {
	var total int64
	records := st.Attendance[periodID]
	for _, emp := range st.EmployeesForProject(projectID) {
		total += Compute(emp, recordFor(records, emp.ID)).TotalPay
	}
	return total
}

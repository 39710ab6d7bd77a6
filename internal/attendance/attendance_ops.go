package attendance

import (
	"go-proyek/internal/calendar"
	"go-proyek/internal/state"
)

// Operasi murni atas deretan AttendanceRecord milik satu periode.
// Semua fungsi mengembalikan deretan baru, input tidak pernah dimutasi.

func indexOf(records []state.AttendanceRecord, employeeID string) int {
	for i, rec := range records {
		if rec.EmployeeID == employeeID {
			return i
		}
	}
	return -1
}

// Toggle membalik isPresent untuk (employeeId, dateStr). Record atau entri
// hari yang belum ada dibuat dulu (overtimeHours=0). Toggle dua kali
// mengembalikan isPresent ke nilai semula; jam lembur tidak tersentuh.
func Toggle(records []state.AttendanceRecord, employeeID, dateStr string) []state.AttendanceRecord {
	out := state.CloneRecords(records)
	idx := indexOf(out, employeeID)
	if idx < 0 {
		out = append(out, state.AttendanceRecord{
			EmployeeID: employeeID,
			Days:       map[string]state.DailyAttendance{},
		})
		idx = len(out) - 1
	}

	day, ok := out[idx].Days[dateStr]
	if !ok {
		day = state.DailyAttendance{Date: dateStr}
	}
	day.IsPresent = !day.IsPresent
	out[idx].Days[dateStr] = day
	return out
}

// SetOvertime menulis jam lembur untuk (employeeId, dateStr), dengan
// semantik buat-kalau-belum-ada yang sama dengan Toggle. Nilai disimpan
// apa adanya; pembatasan ke [0,24] adalah tanggung jawab pemanggil.
func SetOvertime(records []state.AttendanceRecord, employeeID, dateStr string, hours float64) []state.AttendanceRecord {
	out := state.CloneRecords(records)
	idx := indexOf(out, employeeID)
	if idx < 0 {
		out = append(out, state.AttendanceRecord{
			EmployeeID: employeeID,
			Days:       map[string]state.DailyAttendance{},
		})
		idx = len(out) - 1
	}

	day, ok := out[idx].Days[dateStr]
	if !ok {
		day = state.DailyAttendance{Date: dateStr}
	}
	day.OvertimeHours = hours
	out[idx].Days[dateStr] = day
	return out
}

// AddEmployeeToPeriod menambahkan satu record baru dengan skeleton padat
// untuk rentang periode. No-op bila karyawan sudah punya record di periode
// itu (keunikan employeeId per periode).
func AddEmployeeToPeriod(records []state.AttendanceRecord, period state.Period, employeeID string) ([]state.AttendanceRecord, error) {
	out := state.CloneRecords(records)
	if indexOf(out, employeeID) >= 0 {
		return out, nil
	}
	days, err := calendar.EmptySkeleton(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}
	return append(out, state.AttendanceRecord{EmployeeID: employeeID, Days: days}), nil
}

// ResetPeriodDays mengganti peta hari SETIAP karyawan dengan skeleton
// segar untuk rentang baru. Seluruh data hadir/lembur lama untuk periode
// itu dibuang; ini perilaku yang diminta saat rentang periode diedit.
func ResetPeriodDays(records []state.AttendanceRecord, newStart, newEnd string) ([]state.AttendanceRecord, error) {
	out := make([]state.AttendanceRecord, len(records))
	for i, rec := range records {
		days, err := calendar.EmptySkeleton(newStart, newEnd)
		if err != nil {
			return nil, err
		}
		out[i] = state.AttendanceRecord{EmployeeID: rec.EmployeeID, Days: days}
	}
	return out, nil
}

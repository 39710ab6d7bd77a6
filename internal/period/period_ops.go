package period

import (
	"go-proyek/internal/attendance"
	"go-proyek/internal/calendar"
	"go-proyek/internal/state"

	"github.com/google/uuid"
)

// Create menambahkan periode baru ke proyek: nama dihasilkan dari rentang
// tanggal, absensi di-seed satu record padat per karyawan proyek, dan
// pointer periode aktif proyek dipindah ke periode baru. Periode lama
// tidak dihapus; riwayat periode menumpuk.
func Create(st *state.AppState, projectID, startDate, endDate string) (state.Period, error) {
	name, err := calendar.PeriodName(startDate, endDate)
	if err != nil {
		return state.Period{}, err
	}

	newPeriod := state.Period{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		StartDate: startDate,
		EndDate:   endDate,
		Name:      name,
	}

	var records []state.AttendanceRecord
	for _, emp := range st.EmployeesForProject(projectID) {
		days, err := calendar.EmptySkeleton(startDate, endDate)
		if err != nil {
			return state.Period{}, err
		}
		records = append(records, state.AttendanceRecord{EmployeeID: emp.ID, Days: days})
	}

	st.Periods = append(st.Periods, newPeriod)
	st.Attendance[newPeriod.ID] = records
	for i, p := range st.Projects {
		if p.ID == projectID {
			st.Projects[i].CurrentPeriodID = newPeriod.ID
		}
	}
	return newPeriod, nil
}

// Edit mengubah rentang tanggal periode. Nama dihitung ulang kecuali
// keepName diminta; customName (bila ada) selalu menang atas keepName.
// Mengedit rentang MEMBUANG seluruh absensi periode itu: peta hari setiap
// karyawan di-reset ke skeleton segar untuk rentang baru.
func Edit(st *state.AppState, periodID, startDate, endDate string, keepName bool, customName *string) (state.Period, bool, error) {
	idx := -1
	for i, p := range st.Periods {
		if p.ID == periodID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state.Period{}, false, nil
	}

	p := st.Periods[idx]
	switch {
	case customName != nil:
		p.Name = *customName
	case !keepName:
		name, err := calendar.PeriodName(startDate, endDate)
		if err != nil {
			return state.Period{}, false, err
		}
		p.Name = name
	}
	p.StartDate = startDate
	p.EndDate = endDate

	records, err := attendance.ResetPeriodDays(st.Attendance[periodID], startDate, endDate)
	if err != nil {
		return state.Period{}, false, err
	}

	st.Periods[idx] = p
	st.Attendance[periodID] = records
	return p, true, nil
}

package employee

import (
	"testing"

	"go-proyek/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestAdd_SeedsEveryProjectPeriod(t *testing.T) {
	st := state.NewAppState()
	st.Projects = []state.Project{{ID: "pro-1", CurrentPeriodID: "per-2"}}
	st.Periods = []state.Period{
		{ID: "per-1", ProjectID: "pro-1", StartDate: "2026-02-08", EndDate: "2026-02-14"},
		{ID: "per-2", ProjectID: "pro-1", StartDate: "2026-02-15", EndDate: "2026-02-21"},
		{ID: "per-other", ProjectID: "pro-2", StartDate: "2026-02-15", EndDate: "2026-02-21"},
	}

	err := Add(&st, state.Employee{ID: "emp-1", ProjectID: "pro-1", Name: "BUDI"})
	assert.NoError(t, err)

	assert.Len(t, st.Employees, 1)
	// di-seed ke SEMUA periode proyeknya, bukan hanya yang aktif
	assert.Len(t, st.Attendance["per-1"], 1)
	assert.Len(t, st.Attendance["per-2"], 1)
	assert.Len(t, st.Attendance["per-1"][0].Days, 7)
	// periode proyek lain tidak tersentuh
	assert.Empty(t, st.Attendance["per-other"])
}

func TestRemove_KeepsHistoricalAttendance(t *testing.T) {
	st := state.NewAppState()
	st.Employees = []state.Employee{{ID: "emp-1", ProjectID: "pro-1"}}
	st.Attendance["per-1"] = []state.AttendanceRecord{
		{EmployeeID: "emp-1", Days: map[string]state.DailyAttendance{
			"2026-02-15": {IsPresent: true},
		}},
	}

	assert.True(t, Remove(&st, "emp-1"))
	assert.Empty(t, st.Employees)
	// record absensi lama sengaja dibiarkan
	assert.Len(t, st.Attendance["per-1"], 1)

	assert.False(t, Remove(&st, "emp-1"))
}

package calendar

import (
	"testing"

	"go-proyek/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestDatesInRange(t *testing.T) {
	dates, err := DatesInRange("2026-02-15", "2026-02-21")
	assert.NoError(t, err)
	assert.Len(t, dates, 7)
	assert.Equal(t, "2026-02-15", dates[0])
	assert.Equal(t, "2026-02-21", dates[6])
}

func TestDatesInRange_SingleDay(t *testing.T) {
	dates, err := DatesInRange("2026-02-15", "2026-02-15")
	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-02-15"}, dates)
}

func TestDatesInRange_CrossMonth(t *testing.T) {
	dates, err := DatesInRange("2026-01-29", "2026-02-03")
	assert.NoError(t, err)
	assert.Len(t, dates, 6)
	assert.Equal(t, "2026-01-31", dates[2])
	assert.Equal(t, "2026-02-01", dates[3])
}

func TestDatesInRange_EndBeforeStart(t *testing.T) {
	_, err := DatesInRange("2026-02-21", "2026-02-15")
	assert.Error(t, err)
}

func TestDatesInRange_BadDate(t *testing.T) {
	_, err := DatesInRange("15-02-2026", "2026-02-21")
	assert.Error(t, err)
}

func TestEmptySkeleton(t *testing.T) {
	days, err := EmptySkeleton("2026-02-15", "2026-02-21")
	assert.NoError(t, err)
	assert.Len(t, days, 7)
	for dateStr, day := range days {
		assert.Equal(t, dateStr, day.Date)
		assert.False(t, day.IsPresent)
		assert.Zero(t, day.OvertimeHours)
	}

	// idempoten
	again, err := EmptySkeleton("2026-02-15", "2026-02-21")
	assert.NoError(t, err)
	assert.Equal(t, days, again)
}

func TestPeriodName(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"2026-02-15", "2026-02-21", "15 SD 21 FEBRUARI 2026"},
		{"2026-01-29", "2026-02-03", "29 JANUARI SD 03 FEBRUARI 2026"},
		{"2026-12-28", "2027-01-03", "28 DESEMBER SD 03 JANUARI 2027"},
		{"2026-05-01", "2026-05-07", "01 SD 07 MEI 2026"},
	}
	for _, tc := range tests {
		got, err := PeriodName(tc.start, tc.end)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestInPeriod(t *testing.T) {
	p := state.Period{StartDate: "2026-02-15", EndDate: "2026-02-21"}

	assert.True(t, InPeriod("2026-02-15", p))
	assert.True(t, InPeriod("2026-02-21", p))
	assert.True(t, InPeriod("2026-02-18", p))
	assert.False(t, InPeriod("2026-02-14", p))
	assert.False(t, InPeriod("2026-02-22", p))
	assert.False(t, InPeriod("not-a-date", p))
}

package calendar

import (
	"fmt"
	"time"

	"go-proyek/internal/state"
)

const DateLayout = "2006-01-02"

// Nama bulan untuk nama periode, mis. "15 SD 21 FEBRUARI 2026".
var months = [12]string{
	"JANUARI", "FEBRUARI", "MARET", "APRIL", "MEI", "JUNI",
	"JULI", "AGUSTUS", "SEPTEMBER", "OKTOBER", "NOVEMBER", "DESEMBER",
}

// ParseDate membaca label tanggal ISO sebagai tengah malam lokal.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DatesInRange menghasilkan deretan tanggal kalender inklusif dari start
// sampai end, satu entri per label tanggal. Increment dilakukan per
// komponen tanggal, bukan per 24 jam, jadi hari transisi DST tetap
// menghasilkan tepat satu entri.
func DatesInRange(startDate, endDate string) ([]string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("start date %s is after end date %s", startDate, endDate)
	}

	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out, nil
}

// EmptySkeleton membuat peta absensi padat untuk seluruh rentang periode:
// setiap tanggal hadir dengan isPresent=false dan overtimeHours=0.
// Idempoten: dua pemanggilan menghasilkan struktur yang sama.
func EmptySkeleton(startDate, endDate string) (map[string]state.DailyAttendance, error) {
	dates, err := DatesInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	days := make(map[string]state.DailyAttendance, len(dates))
	for _, dateStr := range dates {
		days[dateStr] = state.DailyAttendance{Date: dateStr}
	}
	return days, nil
}

// PeriodName menghasilkan label periode dari rentang tanggal.
// Satu bulan: "DD SD DD BULAN YYYY", lintas bulan: "DD BULAN SD DD BULAN YYYY".
func PeriodName(startDate, endDate string) (string, error) {
	s, err := ParseDate(startDate)
	if err != nil {
		return "", err
	}
	e, err := ParseDate(endDate)
	if err != nil {
		return "", err
	}

	if s.Month() == e.Month() && s.Year() == e.Year() {
		return fmt.Sprintf("%02d SD %02d %s %d",
			s.Day(), e.Day(), months[s.Month()-1], s.Year()), nil
	}
	return fmt.Sprintf("%02d %s SD %02d %s %d",
		s.Day(), months[s.Month()-1], e.Day(), months[e.Month()-1], e.Year()), nil
}

// InPeriod melaporkan apakah label tanggal jatuh dalam rentang inklusif
// [startDate, endDate] milik periode. Perbandingan per label tanggal,
// setara dengan jendela [start 00:00:00, end 23:59:59].
func InPeriod(dateStr string, p state.Period) bool {
	d, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

package dto

import (
	"testing"
	"time"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

func TestComputeAttendanceRate(t *testing.T) {
	cases := []struct {
		present, total int64
		want           int
	}{
		{0, 0, 0}, // tanpa mark → 0, bukan NaN
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33}, // 33.33 → 33
		{2, 3, 67}, // 66.67 → 67
		{1, 2, 50},
		{5, 8, 63}, // 62.5 → 63 (round half up)
	}
	for _, tc := range cases {
		if got := ComputeAttendanceRate(tc.present, tc.total); got != tc.want {
			t.Fatalf("ComputeAttendanceRate(%d, %d) = %d, want %d", tc.present, tc.total, got, tc.want)
		}
	}
}

func TestStatusOrDefault(t *testing.T) {
	mark := AttendanceMark{}
	if got := mark.StatusOrDefault(); got != m.AttendanceAbsent {
		t.Fatalf("status kosong harus absent, got %s", got)
	}
	mark.Status = "late"
	if got := mark.StatusOrDefault(); got != m.AttendanceLate {
		t.Fatalf("got %s", got)
	}
}

func TestTodayDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, 3, 6, 23, 45, 0, 0, loc)
	got := TodayDate(now)
	if got.Hour() != 0 || got.Day() != 6 || got.Location() != loc {
		t.Fatalf("got %v", got)
	}
}

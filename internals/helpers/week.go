// file: internals/helpers/week.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

const LayoutDateISO = "2006-01-02" // YYYY-MM-DD

// WeekStart mengembalikan hari Senin (00:00) dari minggu tanggal t.
// Minggu (Sunday=0) dinormalisasi ke akhir minggu, jadi Senin selalu hari ke-1.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

func FormatDateISO(t time.Time) string {
	return t.Format(LayoutDateISO)
}

func ParseDateISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(LayoutDateISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// ResolveWeekStart memakai nilai dari client kalau ada, kalau kosong fallback
// ke Senin minggu berjalan.
func ResolveWeekStart(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FormatDateISO(WeekStart(now)), nil
	}
	t, err := ParseDateISO(s)
	if err != nil {
		return "", err
	}
	return FormatDateISO(t), nil
}

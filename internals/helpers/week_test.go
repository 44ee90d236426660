package helper

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	// 2024-03-04 adalah Senin
	cases := map[string]string{
		"2024-03-04": "2024-03-04", // Senin → dirinya sendiri
		"2024-03-05": "2024-03-04", // Selasa
		"2024-03-08": "2024-03-04", // Jumat
		"2024-03-09": "2024-03-04", // Sabtu
		"2024-03-10": "2024-03-04", // Minggu → tetap minggu yang sama
		"2024-03-11": "2024-03-11", // Senin berikutnya
	}
	for in, want := range cases {
		d, err := time.Parse(LayoutDateISO, in)
		if err != nil {
			t.Fatalf("parse %s: %v", in, err)
		}
		if got := FormatDateISO(WeekStart(d)); got != want {
			t.Fatalf("WeekStart(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestWeekStartKeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	d := time.Date(2024, 3, 7, 23, 30, 0, 0, loc) // Kamis malam
	got := WeekStart(d)
	if got.Location() != loc {
		t.Fatalf("expected location preserved, got %v", got.Location())
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestResolveWeekStart(t *testing.T) {
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC) // Rabu

	got, err := ResolveWeekStart("", now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "2024-03-04" {
		t.Fatalf("fallback = %s, want 2024-03-04", got)
	}

	got, err = ResolveWeekStart(" 2024-04-01 ", now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "2024-04-01" {
		t.Fatalf("explicit = %s, want 2024-04-01", got)
	}

	if _, err := ResolveWeekStart("04-03-2024", now); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

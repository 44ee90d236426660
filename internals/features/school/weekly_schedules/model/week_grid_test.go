package model

import "testing"

func TestEmptyWeekGrid(t *testing.T) {
	g := EmptyWeekGrid()
	if len(g) != 7 {
		t.Fatalf("expected 7 hari, got %d", len(g))
	}
	for _, d := range Weekdays {
		sessions, ok := g[d]
		if !ok {
			t.Fatalf("hari %s tidak ada", d)
		}
		if sessions == nil || len(sessions) != 0 {
			t.Fatalf("hari %s harus list kosong, got %v", d, sessions)
		}
	}
}

func TestNormalizeFillsMissingAndDropsUnknown(t *testing.T) {
	g := WeekGrid{
		Monday:            {{Day: Monday, StartTime: "09:00", EndTime: "10:00", Subject: "Matematika"}},
		Weekday("Funday"): {{StartTime: "11:00", EndTime: "12:00"}},
	}
	out := g.Normalize()
	if len(out) != 7 {
		t.Fatalf("expected 7 hari, got %d", len(out))
	}
	if _, ok := out[Weekday("Funday")]; ok {
		t.Fatalf("key tidak valid harus dibuang")
	}
	if len(out[Monday]) != 1 || out[Monday][0].Subject != "Matematika" {
		t.Fatalf("sesi Senin hilang: %v", out[Monday])
	}
	if len(out[Sunday]) != 0 {
		t.Fatalf("hari kosong harus list kosong")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := EmptyWeekGrid()
	g[Monday] = []SessionEntry{{Day: Monday, StartTime: "09:00", EndTime: "10:00"}}

	cp := g.Clone()
	cp[Monday][0].StartTime = "13:00"
	cp[Tuesday] = append(cp[Tuesday], SessionEntry{StartTime: "08:00", EndTime: "09:00"})

	if g[Monday][0].StartTime != "09:00" {
		t.Fatalf("clone tidak deep: source ikut berubah")
	}
	if len(g[Tuesday]) != 0 {
		t.Fatalf("append di clone bocor ke source")
	}
}

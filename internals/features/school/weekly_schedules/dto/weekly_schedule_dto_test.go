package dto

import (
	"encoding/json"
	"reflect"
	"testing"

	m "sekolahku_backend/internals/features/school/weekly_schedules/model"
)

func TestParseWeekGridFromObject(t *testing.T) {
	raw := json.RawMessage(`{"Monday":[{"day":"Monday","start_time":"09:00","end_time":"10:00","subject":"Fisika","room":"R-101"}]}`)
	g := ParseWeekGrid(raw)
	if len(g) != 7 {
		t.Fatalf("expected 7 hari, got %d", len(g))
	}
	if len(g[m.Monday]) != 1 || g[m.Monday][0].Subject != "Fisika" {
		t.Fatalf("sesi Senin tidak terbaca: %v", g[m.Monday])
	}
	if len(g[m.Tuesday]) != 0 {
		t.Fatalf("hari lain harus kosong")
	}
}

func TestParseWeekGridFromJSONString(t *testing.T) {
	// FE lama mengirim grid sebagai string JSON
	raw := json.RawMessage(`"{\"Monday\":[{\"start_time\":\"09:00\",\"end_time\":\"10:00\"}]}"`)
	g := ParseWeekGrid(raw)
	if len(g[m.Monday]) != 1 || g[m.Monday][0].StartTime != "09:00" {
		t.Fatalf("string payload tidak terbaca: %v", g[m.Monday])
	}
}

func TestParseWeekGridFallsBackToEmpty(t *testing.T) {
	cases := []string{``, `null`, `"bukan json"`, `123`, `["array"]`, `""`}
	for _, c := range cases {
		g := ParseWeekGrid(json.RawMessage(c))
		if len(g) != 7 {
			t.Fatalf("payload %q: expected grid kosong 7 hari, got %d", c, len(g))
		}
		for _, d := range m.Weekdays {
			if len(g[d]) != 0 {
				t.Fatalf("payload %q: hari %s harus kosong", c, d)
			}
		}
	}
}

func TestParseWeekGridRoundTrip(t *testing.T) {
	src := m.EmptyWeekGrid()
	src[m.Monday] = []m.SessionEntry{{Day: m.Monday, StartTime: "09:00", EndTime: "10:00", Subject: "Kimia"}}
	src[m.Friday] = []m.SessionEntry{{Day: m.Friday, StartTime: "13:00", EndTime: "14:30", Room: "Lab-2"}}

	raw, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := ParseWeekGrid(raw)
	if !reflect.DeepEqual(got, src.Normalize()) {
		t.Fatalf("round-trip mismatch:\n got %v\nwant %v", got, src)
	}
}

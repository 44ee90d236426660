// file: internals/features/school/weekly_schedules/model/week_grid.go
package model

/* =======================================================
   WeekGrid — grid mingguan bertipe (bukan map bebas)
   ======================================================= */

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Urutan tetap Senin..Minggu
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// SessionEntry — satu sesi dalam grid
type SessionEntry struct {
	Day       Weekday `json:"day,omitempty"`
	StartTime string  `json:"start_time"` // "HH:mm"
	EndTime   string  `json:"end_time"`
	Subject   string  `json:"subject,omitempty"`
	Room      string  `json:"room,omitempty"`
}

// WeekGrid memetakan nama hari → daftar sesi terurut.
type WeekGrid map[Weekday][]SessionEntry

// EmptyWeekGrid mengembalikan grid dengan tepat tujuh hari, semuanya kosong.
func EmptyWeekGrid() WeekGrid {
	g := make(WeekGrid, len(Weekdays))
	for _, d := range Weekdays {
		g[d] = []SessionEntry{}
	}
	return g
}

// Normalize memastikan grid punya tepat tujuh key hari yang valid:
// hari yang hilang diisi list kosong, key di luar Senin..Minggu dibuang.
func (g WeekGrid) Normalize() WeekGrid {
	out := make(WeekGrid, len(Weekdays))
	for _, d := range Weekdays {
		if sessions, ok := g[d]; ok && sessions != nil {
			out[d] = sessions
		} else {
			out[d] = []SessionEntry{}
		}
	}
	return out
}

// Clone membuat deep copy (dipakai copy_week supaya target tidak berbagi slice).
func (g WeekGrid) Clone() WeekGrid {
	out := make(WeekGrid, len(Weekdays))
	for _, d := range Weekdays {
		src := g[d]
		dst := make([]SessionEntry, len(src))
		copy(dst, src)
		out[d] = dst
	}
	return out
}

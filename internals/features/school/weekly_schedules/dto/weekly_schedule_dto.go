// file: internals/features/school/weekly_schedules/dto/weekly_schedule_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/weekly_schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Request DTOs
   ======================================================= */

const (
	ActionCopyWeek  = "copy_week"
	ActionClearWeek = "clear_week"
)

type SaveWeeklyScheduleRequest struct {
	ClassroomID   string `json:"classroom_id"    validate:"required,uuid4"`
	WeekStartDate string `json:"week_start_date" validate:"required"` // "YYYY-MM-DD"

	// Boleh objek grid ATAU string berisi JSON grid (FE lama mengirim string).
	// Invalid/absen → fallback ke grid kosong, bukan error.
	ScheduleData json.RawMessage `json:"schedule_data"`
}

type UpdateWeeklyScheduleRequest struct {
	ScheduleData json.RawMessage `json:"schedule_data" validate:"required"`
}

type WeekActionRequest struct {
	Action              string `json:"action"                 validate:"required,oneof=copy_week clear_week"`
	ClassroomID         string `json:"classroom_id"           validate:"required,uuid4"`
	SourceWeekStartDate string `json:"source_week_start_date" validate:"omitempty"`
	TargetWeekStartDate string `json:"target_week_start_date" validate:"required"`
}

/* =======================================================
   schedule_data parser
   - terima objek atau JSON string; fallback ke grid kosong
   ======================================================= */

// ParseWeekGrid menormalkan payload schedule_data menjadi WeekGrid yang valid.
// Bentuk yang diterima: objek grid, string berisi JSON grid, atau kosong.
// Payload yang tidak bisa dibaca TIDAK membuat request gagal — dianggap grid kosong.
func ParseWeekGrid(raw json.RawMessage) m.WeekGrid {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return m.EmptyWeekGrid()
	}

	// String ter-encode: unwrap dulu
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return m.EmptyWeekGrid()
		}
		trimmed = strings.TrimSpace(inner)
		if trimmed == "" {
			return m.EmptyWeekGrid()
		}
		raw = json.RawMessage(trimmed)
	}

	var grid m.WeekGrid
	if err := json.Unmarshal(raw, &grid); err != nil {
		return m.EmptyWeekGrid()
	}
	return grid.Normalize()
}

/* =======================================================
   Response DTO
   ======================================================= */

type WeeklyScheduleResponse struct {
	WeeklyScheduleID *uuid.UUID `json:"weekly_schedule_id,omitempty"` // nil untuk grid sintetis (belum tersimpan)
	SchoolID         uuid.UUID  `json:"school_id"`
	TeacherID        uuid.UUID  `json:"teacher_id"`
	ClassroomID      uuid.UUID  `json:"classroom_id"`
	WeekStartDate    string     `json:"week_start_date"` // YYYY-MM-DD
	WeeklyData       m.WeekGrid `json:"weekly_data"`
	IsActive         bool       `json:"is_active"`
}

func NewWeeklyScheduleResponse(src *m.WeeklyScheduleModel) WeeklyScheduleResponse {
	id := src.WeeklyScheduleID
	return WeeklyScheduleResponse{
		WeeklyScheduleID: &id,
		SchoolID:         src.WeeklySchedulesSchoolID,
		TeacherID:        src.WeeklySchedulesTeacherID,
		ClassroomID:      src.WeeklySchedulesClassroomID,
		WeekStartDate:    helper.FormatDateISO(src.WeeklySchedulesWeekStartDate),
		WeeklyData:       src.WeeklySchedulesWeeklyData.Data().Normalize(),
		IsActive:         src.WeeklySchedulesIsActive,
	}
}

// NewEmptyWeeklyScheduleResponse — grid sintetis untuk minggu yang belum pernah
// disimpan; TIDAK di-persist (ketiadaan dokumen ≡ jadwal kosong).
func NewEmptyWeeklyScheduleResponse(schoolID, teacherID, classroomID uuid.UUID, weekStartDate string) WeeklyScheduleResponse {
	return WeeklyScheduleResponse{
		SchoolID:      schoolID,
		TeacherID:     teacherID,
		ClassroomID:   classroomID,
		WeekStartDate: weekStartDate,
		WeeklyData:    m.EmptyWeekGrid(),
		IsActive:      true,
	}
}

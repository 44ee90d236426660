package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestWeekActionRequestValidation(t *testing.T) {
	v := validator.New()

	ok := WeekActionRequest{
		Action:              ActionCopyWeek,
		ClassroomID:         "7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1",
		SourceWeekStartDate: "2024-03-04",
		TargetWeekStartDate: "2024-03-11",
	}
	if err := v.Struct(ok); err != nil {
		t.Fatalf("copy_week valid ditolak: %v", err)
	}

	ok.Action = ActionClearWeek
	ok.SourceWeekStartDate = "" // clear tidak butuh source
	if err := v.Struct(ok); err != nil {
		t.Fatalf("clear_week valid ditolak: %v", err)
	}

	bad := ok
	bad.Action = "duplicate_week"
	if err := v.Struct(bad); err == nil {
		t.Fatalf("action di luar enum harus ditolak")
	}

	bad = ok
	bad.TargetWeekStartDate = ""
	if err := v.Struct(bad); err == nil {
		t.Fatalf("target kosong harus ditolak")
	}
}

func TestSaveWeeklyScheduleRequestValidation(t *testing.T) {
	v := validator.New()

	req := SaveWeeklyScheduleRequest{
		ClassroomID:   "7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1",
		WeekStartDate: "2024-03-04",
	}
	// schedule_data boleh absen (fallback grid kosong)
	if err := v.Struct(req); err != nil {
		t.Fatalf("request tanpa schedule_data harus valid: %v", err)
	}

	req.ClassroomID = ""
	if err := v.Struct(req); err == nil {
		t.Fatalf("classroom_id kosong harus ditolak")
	}
}

package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func validMarkRequest() MarkAttendanceRequest {
	return MarkAttendanceRequest{
		ClassroomID: "7b7c9a1e-2f64-4f0a-9a37-0d2f6f9640b1",
		SubjectName: "Matematika",
		Date:        "2024-03-04",
		Records: []AttendanceMark{
			{StudentID: "f2b430e4-18b2-4b95-b913-8ac7f29a3bc8", Status: "present"},
		},
	}
}

func TestMarkAttendanceRequestValid(t *testing.T) {
	v := validator.New()
	req := validMarkRequest()
	if err := v.Struct(req); err != nil {
		t.Fatalf("request valid ditolak: %v", err)
	}

	// status kosong = default absent, tetap valid
	req.Records[0].Status = ""
	if err := v.Struct(req); err != nil {
		t.Fatalf("status kosong harus valid: %v", err)
	}
}

func TestMarkAttendanceRequestRejectsUnknownStatus(t *testing.T) {
	v := validator.New()
	req := validMarkRequest()
	req.Records[0].Status = "sakit" // di luar enum → ditolak, bukan dikoreksi
	if err := v.Struct(req); err == nil {
		t.Fatalf("status di luar enum harus ditolak")
	}
}

func TestMarkAttendanceRequestRequiresRecords(t *testing.T) {
	v := validator.New()
	req := validMarkRequest()
	req.Records = nil
	if err := v.Struct(req); err == nil {
		t.Fatalf("records kosong harus ditolak")
	}

	req = validMarkRequest()
	req.ClassroomID = ""
	if err := v.Struct(req); err == nil {
		t.Fatalf("classroom_id kosong harus ditolak")
	}

	req = validMarkRequest()
	req.Records[0].StudentID = "bukan-uuid"
	if err := v.Struct(req); err == nil {
		t.Fatalf("student_id non-uuid harus ditolak")
	}
}

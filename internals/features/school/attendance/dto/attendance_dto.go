// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type AttendanceMark struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
	// Kosong = default absent; string di luar enum DITOLAK, tidak dikoreksi diam-diam
	Status  string  `json:"status"  validate:"omitempty,oneof=present absent late"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	ClassroomID string           `json:"classroom_id" validate:"required,uuid4"`
	SubjectName string           `json:"subject_name" validate:"required,min=1,max=120"`
	Date        string           `json:"date"         validate:"required"` // "YYYY-MM-DD"
	TimeSlot    *string          `json:"time_slot"    validate:"omitempty,max=40"`
	Records     []AttendanceMark `json:"records"      validate:"required,min=1,dive"`
}

// StatusOrDefault — absen kalau UI tidak mengirim status
func (r *AttendanceMark) StatusOrDefault() m.AttendanceStatus {
	if r.Status == "" {
		return m.AttendanceAbsent
	}
	return m.AttendanceStatus(r.Status)
}

/* =======================================================
   Response DTOs
   ======================================================= */

type AttendanceInfo struct {
	Status   m.AttendanceStatus `json:"status"`
	TimeSlot *string            `json:"time_slot,omitempty"`
	Remarks  *string            `json:"remarks,omitempty"`
}

// RosterEntry — siswa + record kehadiran untuk tanggal tsb.
// Attendance nil = belum ada record; FE merender default "absent"
// TANPA kita memfabrikasi record di DB.
type RosterEntry struct {
	StudentID   uuid.UUID       `json:"student_id"`
	StudentName string          `json:"student_name"`
	Attendance  *AttendanceInfo `json:"attendance"`
}

type MarkAttendanceResponse struct {
	SavedRecords int `json:"saved_records"`
}

type AttendanceStatsResponse struct {
	TotalMarks    int64  `json:"total_marks"`
	TotalSessions int64  `json:"total_sessions"`
	SessionsToday int64  `json:"sessions_today"`
	PresentCount  int64  `json:"present_count"`
	LateCount     int64  `json:"late_count"`
	Rate          int    `json:"attendance_rate"` // persen, dibulatkan
	Date          string `json:"date"`            // "hari ini" yang dipakai query
}

func NewAttendanceInfo(src *m.AttendanceRecordModel) *AttendanceInfo {
	if src == nil {
		return nil
	}
	return &AttendanceInfo{
		Status:   src.AttendanceRecordsStatus,
		TimeSlot: src.AttendanceRecordsTimeSlot,
		Remarks:  src.AttendanceRecordsRemarks,
	}
}

/* =======================================================
   Statistik murni (gampang di-test tanpa DB)
   ======================================================= */

// ComputeAttendanceRate = present / total × 100, dibulatkan ke integer terdekat.
// 0 saat tidak ada mark sama sekali (hindari pembagian nol).
// Catatan: "late" TIDAK dihitung hadir — dilaporkan terpisah di response.
func ComputeAttendanceRate(present, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) * 100 / float64(total)))
}

// TodayDate memotong timestamp ke tanggal (local) untuk query sessions_today.
func TodayDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

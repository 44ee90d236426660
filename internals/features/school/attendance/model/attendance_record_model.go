// file: internals/features/school/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum status kehadiran
   ======================================================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

/* =======================================================
   AttendanceRecordModel — map ke tabel attendance_records
   Natural key: (student_id, teacher_id, class_name, date, subject_name)
   Submit ulang untuk key yang sama = overwrite, tidak pernah duplikat.
   Tidak ada path delete.
   ======================================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"type:uuid;primaryKey;column:attendance_record_id;default:gen_random_uuid()"`

	// Tenant / scope
	AttendanceRecordsSchoolID uuid.UUID `json:"attendance_records_school_id" gorm:"type:uuid;not null;column:attendance_records_school_id;index"`

	// Natural key
	AttendanceRecordsStudentID   uuid.UUID `json:"attendance_records_student_id" gorm:"type:uuid;not null;column:attendance_records_student_id;uniqueIndex:uq_attendance_records_natural"`
	AttendanceRecordsTeacherID   uuid.UUID `json:"attendance_records_teacher_id" gorm:"type:uuid;not null;column:attendance_records_teacher_id;uniqueIndex:uq_attendance_records_natural"`
	AttendanceRecordsClassName   string    `json:"attendance_records_class_name" gorm:"type:varchar(120);not null;column:attendance_records_class_name;uniqueIndex:uq_attendance_records_natural"`
	AttendanceRecordsDate        time.Time `json:"attendance_records_date" gorm:"type:date;not null;column:attendance_records_date;uniqueIndex:uq_attendance_records_natural"`
	AttendanceRecordsSubjectName string    `json:"attendance_records_subject_name" gorm:"type:varchar(120);not null;column:attendance_records_subject_name;uniqueIndex:uq_attendance_records_natural"`

	// Referensi kelas (bukan bagian natural key)
	AttendanceRecordsClassroomID uuid.UUID `json:"attendance_records_classroom_id" gorm:"type:uuid;not null;column:attendance_records_classroom_id;index"`

	AttendanceRecordsStatus   AttendanceStatus `json:"attendance_records_status" gorm:"type:text;not null;default:'absent';column:attendance_records_status"`
	AttendanceRecordsTimeSlot *string          `json:"attendance_records_time_slot,omitempty" gorm:"type:varchar(40);column:attendance_records_time_slot"`
	AttendanceRecordsRemarks  *string          `json:"attendance_records_remarks,omitempty" gorm:"type:text;column:attendance_records_remarks"`

	AttendanceRecordsCreatedAt time.Time `json:"attendance_records_created_at" gorm:"column:attendance_records_created_at;not null;autoCreateTime"`
	AttendanceRecordsUpdatedAt time.Time `json:"attendance_records_updated_at" gorm:"column:attendance_records_updated_at;not null;autoUpdateTime"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

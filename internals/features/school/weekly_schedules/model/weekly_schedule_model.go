// file: internals/features/school/weekly_schedules/model/weekly_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   WeeklyScheduleModel — map ke tabel weekly_schedules
   Natural key: (teacher_id, classroom_id, week_start_date)
   Soft delete lewat is_active (dokumen tetap ada, bisa
   direaktivasi oleh upsert berikutnya).
   ======================================================= */

type WeeklyScheduleModel struct {
	// PK
	WeeklyScheduleID uuid.UUID `json:"weekly_schedule_id" gorm:"type:uuid;primaryKey;column:weekly_schedule_id;default:gen_random_uuid()"`

	// Tenant / scope
	WeeklySchedulesSchoolID uuid.UUID `json:"weekly_schedules_school_id" gorm:"type:uuid;not null;column:weekly_schedules_school_id;index"`

	// Natural key
	WeeklySchedulesTeacherID     uuid.UUID `json:"weekly_schedules_teacher_id" gorm:"type:uuid;not null;column:weekly_schedules_teacher_id;uniqueIndex:uq_weekly_schedules_owner_week"`
	WeeklySchedulesClassroomID   uuid.UUID `json:"weekly_schedules_classroom_id" gorm:"type:uuid;not null;column:weekly_schedules_classroom_id;uniqueIndex:uq_weekly_schedules_owner_week"`
	WeeklySchedulesWeekStartDate time.Time `json:"weekly_schedules_week_start_date" gorm:"type:date;not null;column:weekly_schedules_week_start_date;uniqueIndex:uq_weekly_schedules_owner_week"`

	// Grid bertipe, disimpan sebagai JSONB
	WeeklySchedulesWeeklyData datatypes.JSONType[WeekGrid] `json:"weekly_schedules_weekly_data" gorm:"type:jsonb;not null;column:weekly_schedules_weekly_data"`

	// Soft delete
	WeeklySchedulesIsActive bool `json:"weekly_schedules_is_active" gorm:"type:boolean;not null;default:true;column:weekly_schedules_is_active"`

	// Timestamps eksplisit (auto create/update)
	WeeklySchedulesCreatedAt time.Time `json:"weekly_schedules_created_at" gorm:"column:weekly_schedules_created_at;not null;autoCreateTime"`
	WeeklySchedulesUpdatedAt time.Time `json:"weekly_schedules_updated_at" gorm:"column:weekly_schedules_updated_at;not null;autoUpdateTime"`
}

func (WeeklyScheduleModel) TableName() string {
	return "weekly_schedules"
}

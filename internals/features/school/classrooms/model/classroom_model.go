// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   ClassRoomModel — map ke tabel class_rooms
   ======================================================= */

type ClassRoomModel struct {
	// PK
	ClassRoomID uuid.UUID `json:"class_room_id" gorm:"type:uuid;primaryKey;column:class_room_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassRoomsSchoolID uuid.UUID `json:"class_rooms_school_id" gorm:"type:uuid;not null;column:class_rooms_school_id;uniqueIndex:uq_class_rooms_school_invite"`

	// Pemilik kelas
	ClassRoomsTeacherID uuid.UUID `json:"class_rooms_teacher_id" gorm:"type:uuid;not null;column:class_rooms_teacher_id;index"`

	ClassRoomsName string `json:"class_rooms_name" gorm:"type:varchar(120);not null;column:class_rooms_name"`
	ClassRoomsSlug string `json:"class_rooms_slug" gorm:"type:varchar(160);not null;column:class_rooms_slug"`

	// Kode undangan — unik per school
	ClassRoomsInviteCode string `json:"class_rooms_invite_code" gorm:"type:varchar(16);not null;column:class_rooms_invite_code;uniqueIndex:uq_class_rooms_school_invite"`

	// Kapasitas vs enrollment berjalan
	ClassRoomsMaxStudents   int `json:"class_rooms_max_students" gorm:"type:int;not null;default:30;column:class_rooms_max_students"`
	ClassRoomsStudentsCount int `json:"class_rooms_students_count" gorm:"type:int;not null;default:0;column:class_rooms_students_count"`

	ClassRoomsFacilities pq.StringArray `json:"class_rooms_facilities" gorm:"type:text[];column:class_rooms_facilities"`

	ClassRoomsIsActive bool `json:"class_rooms_is_active" gorm:"type:boolean;not null;default:true;column:class_rooms_is_active"`

	ClassRoomsCreatedAt time.Time      `json:"class_rooms_created_at" gorm:"column:class_rooms_created_at;not null;autoCreateTime"`
	ClassRoomsUpdatedAt time.Time      `json:"class_rooms_updated_at" gorm:"column:class_rooms_updated_at;not null;autoUpdateTime"`
	ClassRoomsDeletedAt gorm.DeletedAt `json:"class_rooms_deleted_at" gorm:"column:class_rooms_deleted_at;index"`
}

func (ClassRoomModel) TableName() string {
	return "class_rooms"
}

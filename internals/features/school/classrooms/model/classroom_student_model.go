// file: internals/features/school/classrooms/model/classroom_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ClassRoomStudentModel — enrollment (siswa di kelas)
   Satu siswa hanya sekali per kelas.
   ======================================================= */

type ClassRoomStudentModel struct {
	ClassRoomStudentID uuid.UUID `json:"class_room_student_id" gorm:"type:uuid;primaryKey;column:class_room_student_id;default:gen_random_uuid()"`

	ClassRoomStudentsSchoolID    uuid.UUID `json:"class_room_students_school_id" gorm:"type:uuid;not null;column:class_room_students_school_id;index"`
	ClassRoomStudentsClassroomID uuid.UUID `json:"class_room_students_classroom_id" gorm:"type:uuid;not null;column:class_room_students_classroom_id;uniqueIndex:uq_class_room_students_member"`
	ClassRoomStudentsStudentID   uuid.UUID `json:"class_room_students_student_id" gorm:"type:uuid;not null;column:class_room_students_student_id;uniqueIndex:uq_class_room_students_member"`

	// Snapshot nama biar roster tidak join ke tabel user
	ClassRoomStudentsStudentName string `json:"class_room_students_student_name" gorm:"type:varchar(120);not null;default:'';column:class_room_students_student_name"`

	ClassRoomStudentsIsActive bool      `json:"class_room_students_is_active" gorm:"type:boolean;not null;default:true;column:class_room_students_is_active"`
	ClassRoomStudentsJoinedAt time.Time `json:"class_room_students_joined_at" gorm:"column:class_room_students_joined_at;not null;autoCreateTime"`
}

func (ClassRoomStudentModel) TableName() string {
	return "class_room_students"
}

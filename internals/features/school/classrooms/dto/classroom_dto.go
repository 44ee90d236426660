// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "sekolahku_backend/internals/features/school/classrooms/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateClassRoomRequest struct {
	ClassRoomsName        string   `json:"class_rooms_name"         validate:"required,min=2,max=120"`
	ClassRoomsMaxStudents *int     `json:"class_rooms_max_students" validate:"omitempty,gte=1,lte=200"`
	ClassRoomsFacilities  []string `json:"class_rooms_facilities"   validate:"omitempty,dive,min=1"`
}

type PatchClassRoomRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	ClassRoomsName        *string   `json:"class_rooms_name,omitempty"         validate:"omitempty,min=2,max=120"`
	ClassRoomsMaxStudents *int      `json:"class_rooms_max_students,omitempty" validate:"omitempty,gte=1,lte=200"`
	ClassRoomsFacilities  *[]string `json:"class_rooms_facilities,omitempty"`
	ClassRoomsIsActive    *bool     `json:"class_rooms_is_active,omitempty"`
}

// ApplyPatch mengembalikan map kolom→nilai untuk Updates (hanya non-nil).
func (p *PatchClassRoomRequest) ApplyPatch() map[string]any {
	updates := map[string]any{}
	if p.ClassRoomsName != nil {
		updates["class_rooms_name"] = strings.TrimSpace(*p.ClassRoomsName)
	}
	if p.ClassRoomsMaxStudents != nil {
		updates["class_rooms_max_students"] = *p.ClassRoomsMaxStudents
	}
	if p.ClassRoomsFacilities != nil {
		updates["class_rooms_facilities"] = pq.StringArray(*p.ClassRoomsFacilities)
	}
	if p.ClassRoomsIsActive != nil {
		updates["class_rooms_is_active"] = *p.ClassRoomsIsActive
	}
	return updates
}

type JoinClassRoomRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=8,alphanum"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

type ClassRoomResponse struct {
	ClassRoomID   uuid.UUID `json:"class_room_id"`
	SchoolID      uuid.UUID `json:"school_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	InviteCode    string    `json:"invite_code"`
	MaxStudents   int       `json:"max_students"`
	StudentsCount int       `json:"students_count"`
	Facilities    []string  `json:"facilities"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewClassRoomResponse(src *m.ClassRoomModel) ClassRoomResponse {
	return ClassRoomResponse{
		ClassRoomID:   src.ClassRoomID,
		SchoolID:      src.ClassRoomsSchoolID,
		TeacherID:     src.ClassRoomsTeacherID,
		Name:          src.ClassRoomsName,
		Slug:          src.ClassRoomsSlug,
		InviteCode:    src.ClassRoomsInviteCode,
		MaxStudents:   src.ClassRoomsMaxStudents,
		StudentsCount: src.ClassRoomsStudentsCount,
		Facilities:    []string(src.ClassRoomsFacilities),
		IsActive:      src.ClassRoomsIsActive,
		CreatedAt:     src.ClassRoomsCreatedAt,
		UpdatedAt:     src.ClassRoomsUpdatedAt,
	}
}

func NewClassRoomResponses(src []m.ClassRoomModel) []ClassRoomResponse {
	out := make([]ClassRoomResponse, 0, len(src))
	for i := range src {
		out = append(out, NewClassRoomResponse(&src[i]))
	}
	return out
}

type ClassRoomStudentResponse struct {
	ClassRoomStudentID uuid.UUID `json:"class_room_student_id"`
	ClassroomID        uuid.UUID `json:"classroom_id"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	JoinedAt           time.Time `json:"joined_at"`
}

func NewClassRoomStudentResponse(src *m.ClassRoomStudentModel) ClassRoomStudentResponse {
	return ClassRoomStudentResponse{
		ClassRoomStudentID: src.ClassRoomStudentID,
		ClassroomID:        src.ClassRoomStudentsClassroomID,
		StudentID:          src.ClassRoomStudentsStudentID,
		StudentName:        src.ClassRoomStudentsStudentName,
		JoinedAt:           src.ClassRoomStudentsJoinedAt,
	}
}

// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/classrooms/dto"
	"sekolahku_backend/internals/features/school/classrooms/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassRoomController(db *gorm.DB) *ClassRoomController {
	return &ClassRoomController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /classrooms
func (ctrl *ClassRoomController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "class_rooms",
		SlugColumn:       "class_rooms_slug",
		SoftDeleteColumn: "class_rooms_deleted_at",
		Filters:          map[string]any{"class_rooms_school_id": schoolID},
		DefaultBase:      "kelas",
	}, req.ClassRoomsName)
	if err != nil {
		log.Printf("[ERROR] generate slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	code, err := helper.GenerateInviteCode(helper.InviteCodeLength)
	if err != nil {
		log.Printf("[ERROR] generate invite code: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	maxStudents := 30
	if req.ClassRoomsMaxStudents != nil {
		maxStudents = *req.ClassRoomsMaxStudents
	}

	room := model.ClassRoomModel{
		ClassRoomsSchoolID:    schoolID,
		ClassRoomsTeacherID:   teacherID,
		ClassRoomsName:        strings.TrimSpace(req.ClassRoomsName),
		ClassRoomsSlug:        slug,
		ClassRoomsInviteCode:  code,
		ClassRoomsMaxStudents: maxStudents,
		ClassRoomsFacilities:  pq.StringArray(req.ClassRoomsFacilities),
		ClassRoomsIsActive:    true,
	}
	if err := ctrl.DB.Create(&room).Error; err != nil {
		log.Printf("[ERROR] create classroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.NewClassRoomResponse(&room))
}

/* ===================== LIST ===================== */
// GET /classrooms
func (ctrl *ClassRoomController) List(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassRoomModel{}).
		Where("class_rooms_school_id = ? AND class_rooms_teacher_id = ?", schoolID, teacherID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count classrooms: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	var rooms []model.ClassRoomModel
	if err := q.Order("class_rooms_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rooms).Error; err != nil {
		log.Printf("[ERROR] list classrooms: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.NewClassRoomResponses(rooms), &pagination)
}

/* ===================== DETAIL ===================== */
// GET /classrooms/:id
func (ctrl *ClassRoomController) GetByID(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var room model.ClassRoomModel
	if err := ctrl.DB.
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", roomID, schoolID, teacherID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 404 juga saat bukan pemilik — existence tidak dibocorkan
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] get classroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	return helper.JsonOK(c, "", dto.NewClassRoomResponse(&room))
}

/* ===================== PATCH ===================== */
// PATCH /classrooms/:id
func (ctrl *ClassRoomController) Patch(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := req.ApplyPatch()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"class_room_id": roomID})
	}

	var updated model.ClassRoomModel
	tx := ctrl.DB.Model(&updated).
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", roomID, schoolID, teacherID).
		Updates(updates)
	if tx.Error != nil {
		log.Printf("[ERROR] patch classroom: %v", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	if err := ctrl.DB.First(&updated, "class_room_id = ?", roomID).Error; err != nil {
		log.Printf("[ERROR] reload classroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.NewClassRoomResponse(&updated))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /classrooms/:id
func (ctrl *ClassRoomController) Delete(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", roomID, schoolID, teacherID).
		Delete(&model.ClassRoomModel{})
	if tx.Error != nil {
		log.Printf("[ERROR] delete classroom: %v", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_room_id": roomID})
}

/* ===================== REGENERATE INVITE CODE ===================== */
// POST /classrooms/:id/invite-code
func (ctrl *ClassRoomController) RegenerateInviteCode(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	code, err := helper.GenerateInviteCode(helper.InviteCodeLength)
	if err != nil {
		log.Printf("[ERROR] regenerate invite code: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kode baru")
	}

	tx := ctrl.DB.Model(&model.ClassRoomModel{}).
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", roomID, schoolID, teacherID).
		Update("class_rooms_invite_code", code)
	if tx.Error != nil {
		log.Printf("[ERROR] update invite code: %v", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kode baru")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Kode undangan diperbarui", fiber.Map{
		"class_room_id": roomID,
		"invite_code":   code,
	})
}

/* ===================== ROSTER ===================== */
// GET /classrooms/:id/students
func (ctrl *ClassRoomController) Roster(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Ownership dulu — 404 kalau kelas bukan milik teacher ini
	var cnt int64
	if err := ctrl.DB.Model(&model.ClassRoomModel{}).
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", roomID, schoolID, teacherID).
		Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] roster ownership: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	var members []model.ClassRoomStudentModel
	if err := ctrl.DB.
		Where("class_room_students_classroom_id = ? AND class_room_students_is_active = TRUE", roomID).
		Order("class_room_students_student_name ASC").
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] roster list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	out := make([]dto.ClassRoomStudentResponse, 0, len(members))
	for i := range members {
		out = append(out, dto.NewClassRoomStudentResponse(&members[i]))
	}
	return helper.JsonOK(c, "", out)
}

// file: internals/features/school/classrooms/controller/classroom_join_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/classrooms/dto"
	"sekolahku_backend/internals/features/school/classrooms/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassRoomJoinController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassRoomJoinController(db *gorm.DB) *ClassRoomJoinController {
	return &ClassRoomJoinController{DB: db, Validate: validator.New()}
}

/* ===================== JOIN BY INVITE CODE ===================== */
// POST /classrooms/join
func (ctrl *ClassRoomJoinController) JoinByCode(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentName, _ := c.Locals("user_name").(string)

	var req dto.JoinClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.InviteCode = strings.ToUpper(strings.TrimSpace(req.InviteCode))
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode undangan tidak valid")
	}

	var room model.ClassRoomModel
	if err := ctrl.DB.
		Where("class_rooms_school_id = ? AND class_rooms_invite_code = ? AND class_rooms_is_active = TRUE", schoolID, req.InviteCode).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas dengan kode tersebut tidak ditemukan")
		}
		log.Printf("[ERROR] join lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke kelas")
	}

	// Sudah terdaftar?
	var dup int64
	if err := ctrl.DB.Model(&model.ClassRoomStudentModel{}).
		Where("class_room_students_classroom_id = ? AND class_room_students_student_id = ?", room.ClassRoomID, studentID).
		Count(&dup).Error; err != nil {
		log.Printf("[ERROR] join dup check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke kelas")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kamu sudah terdaftar di kelas ini")
	}

	var member model.ClassRoomStudentModel

	// ===== TRANSACTION START =====
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Cek kapasitas DAN increment dalam satu UPDATE bersyarat,
		// jadi kelas penuh tidak bisa kebobolan oleh dua join bersamaan.
		res := tx.Model(&model.ClassRoomModel{}).
			Where("class_room_id = ? AND class_rooms_students_count < class_rooms_max_students", room.ClassRoomID).
			Update("class_rooms_students_count", gorm.Expr("class_rooms_students_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errClassFull
		}

		member = model.ClassRoomStudentModel{
			ClassRoomStudentsSchoolID:    schoolID,
			ClassRoomStudentsClassroomID: room.ClassRoomID,
			ClassRoomStudentsStudentID:   studentID,
			ClassRoomStudentsStudentName: studentName,
			ClassRoomStudentsIsActive:    true,
		}
		return tx.Create(&member).Error
	}); err != nil {
		if errors.Is(err, errClassFull) {
			return helper.JsonError(c, fiber.StatusConflict, "Kelas sudah penuh")
		}
		log.Printf("[ERROR] join tx: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke kelas")
	}
	// ===== TRANSACTION END =====

	return helper.JsonCreated(c, "Berhasil bergabung ke kelas", dto.NewClassRoomStudentResponse(&member))
}

var errClassFull = errors.New("class full")

// file: internals/features/school/weekly_schedules/controller/weekly_schedule_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "sekolahku_backend/internals/features/school/classrooms/model"
	"sekolahku_backend/internals/features/school/weekly_schedules/dto"
	"sekolahku_backend/internals/features/school/weekly_schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

type WeeklyScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWeeklyScheduleController(db *gorm.DB) *WeeklyScheduleController {
	return &WeeklyScheduleController{DB: db, Validate: validator.New()}
}

/* =======================================================
   Internal helpers
   ======================================================= */

// ensureClassroomOwned memastikan kelas ada di tenant DAN milik teacher ini.
// 404 untuk keduanya — existence tidak dibocorkan ke non-pemilik.
// Dipakai SEMUA operasi mutasi (POST/PATCH copy/clear) biar konsisten.
func (ctrl *WeeklyScheduleController) ensureClassroomOwned(schoolID, teacherID, classroomID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Model(&classModel.ClassRoomModel{}).
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", classroomID, schoolID, teacherID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// weekUpsertConflict — natural key dokumen minggu; tabrakan = overwrite grid
// sekaligus reaktivasi dokumen yang pernah di-soft-delete.
func weekUpsertConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "weekly_schedules_teacher_id"},
			{Name: "weekly_schedules_classroom_id"},
			{Name: "weekly_schedules_week_start_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"weekly_schedules_weekly_data",
			"weekly_schedules_is_active",
			"weekly_schedules_updated_at",
		}),
	}
}

// upsertWeek menulis grid ke natural key (teacher, classroom, week) —
// create kalau belum ada, overwrite weekly_data + reaktivasi kalau sudah.
func (ctrl *WeeklyScheduleController) upsertWeek(schoolID, teacherID, classroomID uuid.UUID, weekStart time.Time, grid model.WeekGrid) (*model.WeeklyScheduleModel, error) {
	row := model.WeeklyScheduleModel{
		WeeklySchedulesSchoolID:      schoolID,
		WeeklySchedulesTeacherID:     teacherID,
		WeeklySchedulesClassroomID:   classroomID,
		WeeklySchedulesWeekStartDate: weekStart,
		WeeklySchedulesWeeklyData:    datatypes.NewJSONType(grid.Normalize()),
		WeeklySchedulesIsActive:      true,
	}
	if err := ctrl.DB.
		Clauses(weekUpsertConflict()).
		Clauses(clause.Returning{}).
		Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (ctrl *WeeklyScheduleController) listClassrooms(schoolID, teacherID uuid.UUID) ([]classModel.ClassRoomModel, error) {
	var rooms []classModel.ClassRoomModel
	err := ctrl.DB.
		Where("class_rooms_school_id = ? AND class_rooms_teacher_id = ? AND class_rooms_is_active = TRUE", schoolID, teacherID).
		Order("class_rooms_name ASC").
		Find(&rooms).Error
	return rooms, err
}

/* ===================== GET ===================== */
// GET /weekly-schedules?classroom_id=&week_start_date=
func (ctrl *WeeklyScheduleController) GetSchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	rooms, err := ctrl.listClassrooms(schoolID, teacherID)
	if err != nil {
		log.Printf("[ERROR] list classrooms: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	// Tanpa classroom_id → balikan daftar kelas saja biar FE bisa prompt pilihan
	classroomStr := c.Query("classroom_id")
	if classroomStr == "" {
		return helper.JsonOK(c, "", fiber.Map{
			"schedule":        nil,
			"classrooms":      rooms,
			"week_start_date": "",
		})
	}

	classroomID, err := uuid.Parse(classroomStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
	}

	weekStartStr, err := helper.ResolveWeekStart(c.Query("week_start_date"), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	weekStart, _ := helper.ParseDateISO(weekStartStr)

	var row model.WeeklyScheduleModel
	err = ctrl.DB.
		Where("weekly_schedules_teacher_id = ? AND weekly_schedules_classroom_id = ? AND weekly_schedules_week_start_date = ? AND weekly_schedules_is_active = TRUE",
			teacherID, classroomID, weekStart).
		First(&row).Error
	switch {
	case err == nil:
		return helper.JsonOK(c, "", fiber.Map{
			"schedule":        dto.NewWeeklyScheduleResponse(&row),
			"classrooms":      rooms,
			"week_start_date": weekStartStr,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Tidak ada dokumen ≡ jadwal kosong — disintesis, TIDAK disimpan
		return helper.JsonOK(c, "", fiber.Map{
			"schedule":        dto.NewEmptyWeeklyScheduleResponse(schoolID, teacherID, classroomID, weekStartStr),
			"classrooms":      rooms,
			"week_start_date": weekStartStr,
		})
	default:
		log.Printf("[ERROR] get schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
}

/* ===================== SAVE (upsert) ===================== */
// POST /weekly-schedules
func (ctrl *WeeklyScheduleController) SaveSchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SaveWeeklyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classroomID, _ := uuid.Parse(req.ClassroomID)
	weekStart, err := helper.ParseDateISO(req.WeekStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.ensureClassroomOwned(schoolID, teacherID, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] ownership check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	// Payload invalid/absen jatuh ke grid kosong, bukan error
	grid := dto.ParseWeekGrid(req.ScheduleData)

	row, err := ctrl.upsertWeek(schoolID, teacherID, classroomID, weekStart, grid)
	if err != nil {
		log.Printf("[ERROR] save schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	return helper.JsonOK(c, "Jadwal berhasil disimpan", dto.NewWeeklyScheduleResponse(row))
}

/* ===================== UPDATE (field) ===================== */
// PUT /weekly-schedules/:id
func (ctrl *WeeklyScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateWeeklyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	grid := dto.ParseWeekGrid(req.ScheduleData)

	tx := ctrl.DB.Model(&model.WeeklyScheduleModel{}).
		Where("weekly_schedule_id = ? AND weekly_schedules_school_id = ? AND weekly_schedules_teacher_id = ?", scheduleID, schoolID, teacherID).
		Update("weekly_schedules_weekly_data", datatypes.NewJSONType(grid))
	if tx.Error != nil {
		log.Printf("[ERROR] update schedule: %v", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	var row model.WeeklyScheduleModel
	if err := ctrl.DB.First(&row, "weekly_schedule_id = ?", scheduleID).Error; err != nil {
		log.Printf("[ERROR] reload schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", dto.NewWeeklyScheduleResponse(&row))
}

/* ===================== DELETE (soft) ===================== */
// DELETE /weekly-schedules/:id
func (ctrl *WeeklyScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Soft delete: is_active=false, dokumen tetap ada (bisa direaktivasi upsert)
	tx := ctrl.DB.Model(&model.WeeklyScheduleModel{}).
		Where("weekly_schedule_id = ? AND weekly_schedules_school_id = ? AND weekly_schedules_teacher_id = ? AND weekly_schedules_is_active = TRUE",
			scheduleID, schoolID, teacherID).
		Update("weekly_schedules_is_active", false)
	if tx.Error != nil {
		log.Printf("[ERROR] delete schedule: %v", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"weekly_schedule_id": scheduleID})
}

/* ===================== WEEK ACTION (copy/clear) ===================== */
// PATCH /weekly-schedules
func (ctrl *WeeklyScheduleController) WeekAction(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.WeekActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classroomID, _ := uuid.Parse(req.ClassroomID)
	targetWeek, err := helper.ParseDateISO(req.TargetWeekStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "target_week_start_date: "+err.Error())
	}

	// Ownership check yang sama dengan POST — copy/clear tidak boleh bypass
	if err := ctrl.ensureClassroomOwned(schoolID, teacherID, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] ownership check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses aksi")
	}

	switch req.Action {
	case dto.ActionClearWeek:
		// Reset ke grid kosong; tidak butuh dokumen pre-existing
		row, err := ctrl.upsertWeek(schoolID, teacherID, classroomID, targetWeek, model.EmptyWeekGrid())
		if err != nil {
			log.Printf("[ERROR] clear week: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengosongkan minggu")
		}
		return helper.JsonOK(c, "Minggu berhasil dikosongkan", dto.NewWeeklyScheduleResponse(row))

	case dto.ActionCopyWeek:
		sourceWeek, err := helper.ParseDateISO(req.SourceWeekStartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "source_week_start_date: "+err.Error())
		}

		var src model.WeeklyScheduleModel
		err = ctrl.DB.
			Where("weekly_schedules_teacher_id = ? AND weekly_schedules_classroom_id = ? AND weekly_schedules_week_start_date = ? AND weekly_schedules_is_active = TRUE",
				teacherID, classroomID, sourceWeek).
			First(&src).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Source absen → 404, target TIDAK dibuat
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal minggu sumber tidak ditemukan")
		}
		if err != nil {
			log.Printf("[ERROR] copy week read source: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyalin minggu")
		}

		row, err := ctrl.upsertWeek(schoolID, teacherID, classroomID, targetWeek,
			src.WeeklySchedulesWeeklyData.Data().Clone())
		if err != nil {
			log.Printf("[ERROR] copy week write target: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyalin minggu")
		}
		return helper.JsonOK(c, "Minggu berhasil disalin", dto.NewWeeklyScheduleResponse(row))

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "action tidak dikenal")
	}
}

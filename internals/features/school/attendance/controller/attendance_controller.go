// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classrooms/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// Satu "sesi" = kombinasi unik (kelas, mapel, tanggal). Count() GORM hanya
// menerapkan DISTINCT untuk satu kolom select, jadi multi-kolom harus lewat
// ekspresi eksplisit — kalau tidak, hasilnya jatuh ke count(*).
func sessionCountQuery(q *gorm.DB) *gorm.DB {
	return q.Select("COUNT(DISTINCT (attendance_records_classroom_id, attendance_records_subject_name, attendance_records_date))")
}

// sessionTodayCountQuery — tanggal sudah difilter caller, distinct cukup (kelas, mapel).
func sessionTodayCountQuery(q *gorm.DB) *gorm.DB {
	return q.Select("COUNT(DISTINCT (attendance_records_classroom_id, attendance_records_subject_name))")
}

// attendanceUpsertConflict — natural key satu record absensi; tabrakan =
// overwrite status/time_slot/remarks, bukan duplikat baris.
func attendanceUpsertConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_records_student_id"},
			{Name: "attendance_records_teacher_id"},
			{Name: "attendance_records_class_name"},
			{Name: "attendance_records_date"},
			{Name: "attendance_records_subject_name"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_records_status",
			"attendance_records_time_slot",
			"attendance_records_remarks",
			"attendance_records_updated_at",
		}),
	}
}

// classroomOwned mengambil kelas milik teacher (404 kalau bukan miliknya).
func (ctrl *AttendanceController) classroomOwned(schoolID, teacherID, classroomID uuid.UUID) (*classModel.ClassRoomModel, error) {
	var room classModel.ClassRoomModel
	err := ctrl.DB.
		Where("class_room_id = ? AND class_rooms_school_id = ? AND class_rooms_teacher_id = ?", classroomID, schoolID, teacherID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

/* ===================== MARK (bulk upsert) ===================== */
// POST /attendance
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	// oneof menolak status di luar present/absent/late → 400
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := helper.ParseDateISO(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}

	classroomID, _ := uuid.Parse(req.ClassroomID)
	room, err := ctrl.classroomOwned(schoolID, teacherID, classroomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] mark ownership: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	// Roster aktif sebagai whitelist — record untuk siswa di luar kelas di-skip,
	// bukan menggagalkan seluruh batch.
	var members []classModel.ClassRoomStudentModel
	if err := ctrl.DB.
		Where("class_room_students_classroom_id = ? AND class_room_students_is_active = TRUE", classroomID).
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] mark roster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	enrolled := make(map[uuid.UUID]bool, len(members))
	for i := range members {
		enrolled[members[i].ClassRoomStudentsStudentID] = true
	}

	// Per-record upsert yang saling independen: satu record gagal tidak
	// memblokir record lain; jumlah yang berhasil dilaporkan apa adanya.
	saved := 0
	for i := range req.Records {
		rec := &req.Records[i]
		studentID, err := uuid.Parse(rec.StudentID)
		if err != nil {
			continue // sudah tervalidasi, guard saja
		}
		if !enrolled[studentID] {
			log.Printf("[WARN] absensi skip: siswa %s tidak terdaftar di kelas %s", studentID, classroomID)
			continue
		}

		row := model.AttendanceRecordModel{
			AttendanceRecordsSchoolID:    schoolID,
			AttendanceRecordsStudentID:   studentID,
			AttendanceRecordsTeacherID:   teacherID,
			AttendanceRecordsClassName:   room.ClassRoomsName,
			AttendanceRecordsDate:        date,
			AttendanceRecordsSubjectName: req.SubjectName,
			AttendanceRecordsClassroomID: classroomID,
			AttendanceRecordsStatus:      rec.StatusOrDefault(),
			AttendanceRecordsTimeSlot:    req.TimeSlot,
			AttendanceRecordsRemarks:     rec.Remarks,
		}
		if err := ctrl.DB.
			Clauses(attendanceUpsertConflict()).
			Create(&row).Error; err != nil {
			log.Printf("[ERROR] absensi siswa %s: %v", studentID, err)
			continue
		}
		saved++
	}

	return helper.JsonOK(c, "Absensi tersimpan", dto.MarkAttendanceResponse{SavedRecords: saved})
}

/* ===================== ROSTER + MARKS ===================== */
// GET /attendance/roster?classroom_id=&date=
func (ctrl *AttendanceController) RosterWithAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Query("classroom_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
	}
	date, err := helper.ParseDateISO(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}

	if _, err := ctrl.classroomOwned(schoolID, teacherID, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] roster ownership: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	var members []classModel.ClassRoomStudentModel
	if err := ctrl.DB.
		Where("class_room_students_classroom_id = ? AND class_room_students_is_active = TRUE", classroomID).
		Order("class_room_students_student_name ASC").
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] roster list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_records_teacher_id = ? AND attendance_records_classroom_id = ? AND attendance_records_date = ?",
			teacherID, classroomID, date).
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] roster records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}
	byStudent := make(map[uuid.UUID]*model.AttendanceRecordModel, len(records))
	for i := range records {
		byStudent[records[i].AttendanceRecordsStudentID] = &records[i]
	}

	// Left join: siswa tanpa record → attendance null (FE render default absent)
	out := make([]dto.RosterEntry, 0, len(members))
	for i := range members {
		mrow := &members[i]
		out = append(out, dto.RosterEntry{
			StudentID:   mrow.ClassRoomStudentsStudentID,
			StudentName: mrow.ClassRoomStudentsStudentName,
			Attendance:  dto.NewAttendanceInfo(byStudent[mrow.ClassRoomStudentsStudentID]),
		})
	}

	return helper.JsonOK(c, "", fiber.Map{
		"date":     helper.FormatDateISO(date),
		"students": out,
	})
}

/* ===================== STATS ===================== */
// GET /attendance/stats
func (ctrl *AttendanceController) Stats(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	base := func() *gorm.DB {
		return ctrl.DB.Model(&model.AttendanceRecordModel{}).
			Where("attendance_records_school_id = ? AND attendance_records_teacher_id = ?", schoolID, teacherID)
	}

	var stats dto.AttendanceStatsResponse

	if err := base().Count(&stats.TotalMarks).Error; err != nil {
		log.Printf("[ERROR] stats total: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := sessionCountQuery(base()).Scan(&stats.TotalSessions).Error; err != nil {
		log.Printf("[ERROR] stats sessions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	today := dto.TodayDate(time.Now())
	if err := sessionTodayCountQuery(base().Where("attendance_records_date = ?", today)).
		Scan(&stats.SessionsToday).Error; err != nil {
		log.Printf("[ERROR] stats today: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := base().
		Where("attendance_records_status = ?", model.AttendancePresent).
		Count(&stats.PresentCount).Error; err != nil {
		log.Printf("[ERROR] stats present: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := base().
		Where("attendance_records_status = ?", model.AttendanceLate).
		Count(&stats.LateCount).Error; err != nil {
		log.Printf("[ERROR] stats late: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	stats.Rate = dto.ComputeAttendanceRate(stats.PresentCount, stats.TotalMarks)
	stats.Date = helper.FormatDateISO(today)

	return helper.JsonOK(c, "", stats)
}

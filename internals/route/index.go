// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classroomRoute "sekolahku_backend/internals/features/school/classrooms/route"
	scheduleRoute "sekolahku_backend/internals/features/school/weekly_schedules/route"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== TEACHER (per school) =====================
	log.Println("[INFO] Setting up TEACHER group (Auth + role guard)...")
	teacher := app.Group("/api/t",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.OnlyTeacher("manajemen kelas"),
	)

	classroomRoute.ClassRoomTeacherRoutes(teacher, db)
	scheduleRoute.WeeklyScheduleTeacherRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.OnlyStudent("kelas"),
	)

	classroomRoute.ClassRoomStudentRoutes(student, db)
}

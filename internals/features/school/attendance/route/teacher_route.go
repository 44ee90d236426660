package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "sekolahku_backend/internals/features/school/attendance/controller"
	"sekolahku_backend/internals/middlewares"
)

func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Post("/", middlewares.BulkWriteRateLimiter(), ctrl.MarkAttendance)
	g.Get("/roster", ctrl.RosterWithAttendance)
	g.Get("/stats", ctrl.Stats)
}

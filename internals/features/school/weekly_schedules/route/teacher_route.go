package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wsCtrl "sekolahku_backend/internals/features/school/weekly_schedules/controller"
)

func WeeklyScheduleTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := wsCtrl.NewWeeklyScheduleController(db)

	g := r.Group("/weekly-schedules")
	g.Get("/", ctrl.GetSchedule)
	g.Post("/", ctrl.SaveSchedule)
	g.Put("/:id", ctrl.UpdateSchedule)
	g.Delete("/:id", ctrl.DeleteSchedule)
	g.Patch("/", ctrl.WeekAction)
}

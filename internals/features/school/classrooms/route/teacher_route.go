package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "sekolahku_backend/internals/features/school/classrooms/controller"
)

func ClassRoomTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassRoomController(db)

	g := r.Group("/classrooms")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/invite-code", ctrl.RegenerateInviteCode)
	g.Get("/:id/students", ctrl.Roster)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "sekolahku_backend/internals/features/school/classrooms/controller"
)

func ClassRoomStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassRoomJoinController(db)

	g := r.Group("/classrooms")
	g.Post("/join", ctrl.JoinByCode)
}

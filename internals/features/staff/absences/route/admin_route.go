// file: internals/features/staff/absences/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/controller"
)

func AbsenceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewAbsenceController(db)

	planned := router.Group("/planned-absences")
	planned.Get("/", ctl.ListPlanned)
	planned.Post("/", ctl.CreatePlanned)
	planned.Put("/:id/status", ctl.UpdatePlannedStatus)
	planned.Delete("/:id", ctl.DeletePlanned)

	longTerm := router.Group("/long-term-absences")
	longTerm.Get("/", ctl.ListLongTerm)
	longTerm.Post("/", ctl.CreateLongTerm)
	longTerm.Put("/:id/status", ctl.UpdateLongTermStatus)
	longTerm.Delete("/:id", ctl.DeleteLongTerm)
}

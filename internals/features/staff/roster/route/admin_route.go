// file: internals/features/staff/roster/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/controller"
)

func RosterAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewRosterController(db)

	roster := router.Group("/roster-shifts")
	roster.Get("/:year/:week", ctl.ListWeek)
	roster.Post("/", ctl.Create)
	roster.Delete("/:id", ctl.Delete)
	roster.Post("/generate-month", ctl.GenerateMonth)
}

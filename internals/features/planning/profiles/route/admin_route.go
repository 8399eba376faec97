// file: internals/features/planning/profiles/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/controller"
)

func PlannerProfileAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewPlannerProfileController(db)

	profiles := router.Group("/planner-profiles")
	profiles.Get("/:name?", ctl.Get)
	profiles.Put("/:name?", ctl.Upsert)
}

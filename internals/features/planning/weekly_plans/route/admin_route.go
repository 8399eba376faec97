// file: internals/features/planning/weekly_plans/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/controller"
	"github.com/hinterbergers/mycliniq-sub002/internals/middlewares"
)

// WeeklyPlanAdminRoutes registers the weekly plan endpoints under the
// given (already authenticated) router group.
func WeeklyPlanAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewWeeklyPlanController(db)

	plans := router.Group("/weekly-plans")
	plans.Get("/:year/:week", ctl.Get)
	plans.Put("/:year/:week/locked-weekdays", ctl.UpdateLockedWeekdays)
	plans.Post("/:year/:week/status", ctl.TransitionStatus)

	plans.Post("/:year/:week/preview", middlewares.PlanningRateLimiter(), ctl.Preview)
	plans.Post("/:year/:week/apply", middlewares.PlanningRateLimiter(), ctl.Apply)

	plans.Post("/:year/:week/assignments", ctl.CreateAssignment)
	plans.Patch("/assignments/:id", ctl.PatchAssignment)
	plans.Delete("/assignments/:id", ctl.DeleteAssignment)
}

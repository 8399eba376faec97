// file: internals/features/workplaces/workplaces/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/controller"
)

func WorkplaceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewWorkplaceController(db)

	workplaces := router.Group("/workplaces")
	workplaces.Get("/", ctl.List)
	workplaces.Get("/:id", ctl.GetByID)
	workplaces.Post("/", ctl.Create)
	workplaces.Patch("/:id", ctl.Patch)
	workplaces.Delete("/:id", ctl.Delete)

	workplaces.Post("/:id/weekday-settings", ctl.CreateWeekdaySetting)
	workplaces.Delete("/:id/weekday-settings/:settingId", ctl.DeleteWeekdaySetting)

	workplaces.Post("/:id/required-competencies", ctl.CreateRequiredCompetency)
	workplaces.Delete("/:id/required-competencies/:competencyId", ctl.DeleteRequiredCompetency)
}

// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "github.com/hinterbergers/mycliniq-sub002/internals/middlewares/auth"

	profileRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/route"
	planRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/route"
	absenceRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/route"
	employeeRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/route"
	rosterRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/route"
	workplaceRoutes "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware())

	employeeRoutes.EmployeeAdminRoutes(api, db)
	absenceRoutes.AbsenceAdminRoutes(api, db)
	rosterRoutes.RosterAdminRoutes(api, db)
	workplaceRoutes.WorkplaceAdminRoutes(api, db)
	profileRoutes.PlannerProfileAdminRoutes(api, db)
	planRoutes.WeeklyPlanAdminRoutes(api, db)
}

// file: internals/features/staff/employees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/controller"
)

func EmployeeAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewEmployeeController(db)

	employees := router.Group("/employees")
	employees.Get("/", ctl.List)
	employees.Get("/:id", ctl.GetByID)
	employees.Post("/", ctl.Create)
	employees.Patch("/:id", ctl.Patch)
	employees.Delete("/:id", ctl.Delete)
}

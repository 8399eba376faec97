// file: internals/features/staff/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type EmployeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validate: validator.New()}
}

/* =========================
   Query: List
   ========================= */

type listQueryEmployees struct {
	RoleCategory string `query:"role_category"`
	Active       *bool  `query:"active"`
	Search       string `query:"q"`
}

func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	var q listQueryEmployees
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).Model(&m.EmployeeModel{})

	if q.RoleCategory != "" {
		cat := m.RoleCategory(q.RoleCategory)
		if !cat.Valid() {
			return fiber.NewError(http.StatusBadRequest, "role_category invalid")
		}
		db = db.Where("employee_role_category = ?", cat)
	}
	if q.Active != nil {
		db = db.Where("employee_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		db = db.Where("employee_first_name ILIKE ? OR employee_last_name ILIKE ?", like, like)
	}

	page := helper.ParsePage(c, helper.AdminOpts)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.EmployeeModel
	if err := db.
		Order("employee_last_name ASC, employee_first_name ASC").
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewEmployeeResponse(&rows[i]))
	}

	return helper.Success(c, "Employees fetched", fiber.Map{
		"items":      items,
		"pagination": helper.PageMeta(page, total),
	})
}

/* =========================
   CRUD
   ========================= */

func (ctl *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee id invalid")
	}

	var row m.EmployeeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Employee not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Employee fetched", d.NewEmployeeResponse(&row))
}

func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var req d.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.EmployeeModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Employee created", d.NewEmployeeResponse(&row))
}

func (ctl *EmployeeController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee id invalid")
	}

	var req d.PatchEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.EmployeeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Employee not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyPatch(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Employee updated", d.NewEmployeeResponse(&row))
}

func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.EmployeeModel{}, "employee_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Employee not found")
	}

	return helper.Success(c, "Employee deleted", nil)
}

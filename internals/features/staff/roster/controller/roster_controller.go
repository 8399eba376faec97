// file: internals/features/staff/roster/controller/roster_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/model"
)

type RosterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{DB: db, Validate: validator.New()}
}

// ListWeek returns the duty shifts of one ISO week, including the day
// before Monday (the weekly engine needs it for the after-duty rule, and
// the plan view renders it greyed out).
func (ctl *RosterController) ListWeek(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "year invalid")
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "week invalid")
	}
	if err := helper.ValidateISOWeek(year, week); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	from := helper.ISOWeekStart(year, week)
	to := from.AddDate(0, 0, 6)

	var rows []m.RosterShiftModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("roster_shift_date >= ? AND roster_shift_date <= ?", from.AddDate(0, 0, -1), to).
		Order("roster_shift_date ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.RosterShiftResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewRosterShiftResponse(&rows[i]))
	}
	return helper.Success(c, "Roster shifts fetched", items)
}

func (ctl *RosterController) Create(c *fiber.Ctx) error {
	var req d.CreateRosterShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.RosterShiftModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Roster shift created", d.NewRosterShiftResponse(&row))
}

func (ctl *RosterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "shift id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.RosterShiftModel{}, "roster_shift_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Roster shift not found")
	}
	return helper.Success(c, "Roster shift deleted", nil)
}

// GenerateMonth is the monthly duty-plan entry point. Generation is
// delegated to an external solving service; locally this stays a stub.
func (ctl *RosterController) GenerateMonth(c *fiber.Ctx) error {
	return helper.Error(c, http.StatusNotImplemented,
		"monthly duty-plan generation is delegated to the external solving service")
}

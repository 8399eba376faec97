// file: internals/features/staff/absences/controller/absence_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
)

type AbsenceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAbsenceController(db *gorm.DB) *AbsenceController {
	return &AbsenceController{DB: db, Validate: validator.New()}
}

/* =========================
   Planned absences
   ========================= */

func (ctl *AbsenceController) ListPlanned(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&m.PlannedAbsenceModel{})

	if emp := c.Query("employee_id"); emp != "" {
		id, err := uuid.Parse(emp)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "employee_id invalid")
		}
		db = db.Where("planned_absence_employee_id = ?", id)
	}

	var rows []m.PlannedAbsenceModel
	if err := db.Order("planned_absence_from ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.AbsenceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewPlannedAbsenceResponse(&rows[i]))
	}
	return helper.Success(c, "Planned absences fetched", items)
}

func (ctl *AbsenceController) CreatePlanned(c *fiber.Ctx) error {
	var req d.CreateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.PlannedAbsenceModel
	if err := req.ApplyToPlanned(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Planned absence created", d.NewPlannedAbsenceResponse(&row))
}

func (ctl *AbsenceController) UpdatePlannedStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "absence id invalid")
	}

	var req d.UpdateAbsenceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.PlannedAbsenceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "planned_absence_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Absence not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	row.PlannedAbsenceStatus = m.AbsenceStatus(req.Status)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Absence status updated", d.NewPlannedAbsenceResponse(&row))
}

func (ctl *AbsenceController) DeletePlanned(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "absence id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.PlannedAbsenceModel{}, "planned_absence_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Absence not found")
	}
	return helper.Success(c, "Absence deleted", nil)
}

/* =========================
   Long-term absences
   ========================= */

func (ctl *AbsenceController) ListLongTerm(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&m.LongTermAbsenceModel{})

	if emp := c.Query("employee_id"); emp != "" {
		id, err := uuid.Parse(emp)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "employee_id invalid")
		}
		db = db.Where("long_term_absence_employee_id = ?", id)
	}

	var rows []m.LongTermAbsenceModel
	if err := db.Order("long_term_absence_from ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.AbsenceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewLongTermAbsenceResponse(&rows[i]))
	}
	return helper.Success(c, "Long-term absences fetched", items)
}

func (ctl *AbsenceController) CreateLongTerm(c *fiber.Ctx) error {
	var req d.CreateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.LongTermAbsenceModel
	if err := req.ApplyToLongTerm(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Long-term absence created", d.NewLongTermAbsenceResponse(&row))
}

func (ctl *AbsenceController) UpdateLongTermStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "absence id invalid")
	}

	var req d.UpdateAbsenceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.LongTermAbsenceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "long_term_absence_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Absence not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	row.LongTermAbsenceStatus = m.AbsenceStatus(req.Status)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Absence status updated", d.NewLongTermAbsenceResponse(&row))
}

func (ctl *AbsenceController) DeleteLongTerm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "absence id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.LongTermAbsenceModel{}, "long_term_absence_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Absence not found")
	}
	return helper.Success(c, "Absence deleted", nil)
}

// file: internals/features/workplaces/workplaces/controller/workplace_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type WorkplaceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWorkplaceController(db *gorm.DB) *WorkplaceController {
	return &WorkplaceController{DB: db, Validate: validator.New()}
}

func (ctl *WorkplaceController) workplaceByID(c *fiber.Ctx) (*m.WorkplaceModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "workplace id invalid")
	}
	var row m.WorkplaceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "workplace_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "Workplace not found")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

/* =========================
   Workplace CRUD
   ========================= */

func (ctl *WorkplaceController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&m.WorkplaceModel{})

	if c.Query("active") == "true" {
		db = db.Where("workplace_is_active = TRUE")
	}
	if c.Query("in_weekly_plan") == "true" {
		db = db.Where("workplace_in_weekly_plan = TRUE")
	}

	var rows []m.WorkplaceModel
	if err := db.Order("workplace_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.WorkplaceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewWorkplaceResponse(&rows[i]))
	}
	return helper.Success(c, "Workplaces fetched", items)
}

func (ctl *WorkplaceController) GetByID(c *fiber.Ctx) error {
	row, err := ctl.workplaceByID(c)
	if err != nil {
		return err
	}

	var settings []m.WeekdaySettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("weekday_setting_workplace_id = ?", row.WorkplaceID).
		Order("weekday_setting_weekday ASC").
		Find(&settings).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var comps []m.RequiredCompetencyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("required_competency_workplace_id = ?", row.WorkplaceID).
		Find(&comps).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	settingItems := make([]d.WeekdaySettingResponse, 0, len(settings))
	for i := range settings {
		settingItems = append(settingItems, d.NewWeekdaySettingResponse(&settings[i]))
	}
	compItems := make([]d.RequiredCompetencyResponse, 0, len(comps))
	for i := range comps {
		compItems = append(compItems, d.NewRequiredCompetencyResponse(&comps[i]))
	}

	return helper.Success(c, "Workplace fetched", fiber.Map{
		"workplace":             d.NewWorkplaceResponse(row),
		"weekday_settings":      settingItems,
		"required_competencies": compItems,
	})
}

func (ctl *WorkplaceController) Create(c *fiber.Ctx) error {
	var req d.CreateWorkplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.WorkplaceModel
	req.ApplyToModel(&row)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Workplace created", d.NewWorkplaceResponse(&row))
}

func (ctl *WorkplaceController) Patch(c *fiber.Ctx) error {
	row, err := ctl.workplaceByID(c)
	if err != nil {
		return err
	}

	var req d.PatchWorkplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Workplace updated", d.NewWorkplaceResponse(row))
}

func (ctl *WorkplaceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "workplace id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.WorkplaceModel{}, "workplace_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Workplace not found")
	}
	return helper.Success(c, "Workplace deleted", nil)
}

/* =========================
   Weekday settings
   Overlapping settings for one (weekday, recurrence) are a
   configuration error and rejected here, not resolved
   inside the engine.
   ========================= */

func (ctl *WorkplaceController) CreateWeekdaySetting(c *fiber.Ctx) error {
	wp, err := ctl.workplaceByID(c)
	if err != nil {
		return err
	}

	var req d.UpsertWeekdaySettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.WeekdaySettingModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	row.WeekdaySettingWorkplaceID = wp.WorkplaceID

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m.WeekdaySettingModel{}).
		Where("weekday_setting_workplace_id = ? AND weekday_setting_weekday = ? AND weekday_setting_recurrence = ?",
			wp.WorkplaceID, row.WeekdaySettingWeekday, row.WeekdaySettingRecurrence).
		Count(&count).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.Error(c, http.StatusConflict,
			"a setting for this weekday and recurrence already exists")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Weekday setting created", d.NewWeekdaySettingResponse(&row))
}

func (ctl *WorkplaceController) DeleteWeekdaySetting(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("settingId"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "setting id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.WeekdaySettingModel{}, "weekday_setting_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Weekday setting not found")
	}
	return helper.Success(c, "Weekday setting deleted", nil)
}

/* =========================
   Required competencies
   ========================= */

func (ctl *WorkplaceController) CreateRequiredCompetency(c *fiber.Ctx) error {
	wp, err := ctl.workplaceByID(c)
	if err != nil {
		return err
	}

	var req d.CreateRequiredCompetencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	row := m.RequiredCompetencyModel{
		RequiredCompetencyWorkplaceID: wp.WorkplaceID,
		RequiredCompetencyName:        req.Name,
		RequiredCompetencyRelation:    m.CompetencyRelation(req.Relation),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Required competency created", d.NewRequiredCompetencyResponse(&row))
}

func (ctl *WorkplaceController) DeleteRequiredCompetency(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("competencyId"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "competency id invalid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.RequiredCompetencyModel{}, "required_competency_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Required competency not found")
	}
	return helper.Success(c, "Required competency deleted", nil)
}

// file: internals/features/planning/profiles/controller/planner_profile_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/model"
)

type PlannerProfileController struct {
	DB *gorm.DB
}

func NewPlannerProfileController(db *gorm.DB) *PlannerProfileController {
	return &PlannerProfileController{DB: db}
}

func profileName(c *fiber.Ctx) string {
	name := strings.TrimSpace(c.Params("name"))
	if name == "" {
		name = m.DefaultProfileName
	}
	return name
}

// Get returns the named profile; the "default" profile always exists
// logically, so a missing row comes back as an empty rules document.
func (ctl *PlannerProfileController) Get(c *fiber.Ctx) error {
	name := profileName(c)

	var row m.PlannerProfileModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("planner_profile_name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if name == m.DefaultProfileName {
			return helper.Success(c, "Planner profile fetched", d.PlannerProfileResponse{Name: name})
		}
		return helper.Error(c, http.StatusNotFound, "Planner profile not found")
	}
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Planner profile fetched", d.NewPlannerProfileResponse(&row))
}

// Upsert stores the rules document under the profile name.
func (ctl *PlannerProfileController) Upsert(c *fiber.Ctx) error {
	name := profileName(c)

	var req d.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	doc, err := sonic.Marshal(req.Rules)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var row m.PlannerProfileModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("planner_profile_name = ?", name).First(&row).Error
	switch {
	case err == nil:
		row.PlannerProfileRules = doc
		if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = m.PlannerProfileModel{
			PlannerProfileName:  name,
			PlannerProfileRules: doc,
		}
		if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	default:
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Planner profile saved", d.NewPlannerProfileResponse(&row))
}

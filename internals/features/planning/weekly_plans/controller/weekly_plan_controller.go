// file: internals/features/planning/weekly_plans/controller/weekly_plan_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
	"github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type WeeklyPlanController struct {
	DB       *gorm.DB
	Engine   *service.PlanningEngine
	Store    service.PlanStore
	Validate *validator.Validate
}

func NewWeeklyPlanController(db *gorm.DB) *WeeklyPlanController {
	store := service.NewGormPlanStore(db)
	return &WeeklyPlanController{
		DB:       db,
		Engine:   service.NewPlanningEngine(store),
		Store:    store,
		Validate: validator.New(),
	}
}

func (ctl *WeeklyPlanController) parseWeekParams(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, 0, fiber.NewError(http.StatusBadRequest, "year invalid")
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return 0, 0, fiber.NewError(http.StatusBadRequest, "week invalid")
	}
	if err := helper.ValidateISOWeek(year, week); err != nil {
		return 0, 0, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return year, week, nil
}

/* =========================
   Plan access
   ========================= */

// Get returns the plan for (year, week), creating it on first access.
func (ctl *WeeklyPlanController) Get(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	plan, err := ctl.Store.GetOrCreatePlan(c.UserContext(), year, week)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var assignments []m.WeeklyPlanAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("weekly_plan_assignment_plan_id = ?", plan.WeeklyPlanID).
		Order("weekly_plan_assignment_weekday ASC, weekly_plan_assignment_created_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]d.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		items = append(items, d.NewAssignmentResponse(&assignments[i]))
	}

	return helper.Success(c, "Weekly plan fetched", fiber.Map{
		"plan":        d.NewWeeklyPlanResponse(plan),
		"assignments": items,
	})
}

// UpdateLockedWeekdays replaces the set of weekdays excluded from
// automatic generation.
func (ctl *WeeklyPlanController) UpdateLockedWeekdays(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	var req d.UpdateLockedWeekdaysRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	plan, err := ctl.Store.GetOrCreatePlan(c.UserContext(), year, week)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	locked := make(pq.Int64Array, 0, len(req.LockedWeekdays))
	for _, day := range req.LockedWeekdays {
		locked = append(locked, int64(day))
	}
	plan.WeeklyPlanLockedWeekdays = locked

	if err := ctl.DB.WithContext(c.UserContext()).Save(plan).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Locked weekdays updated", d.NewWeeklyPlanResponse(plan))
}

// TransitionStatus applies a lifecycle transition, enforcing the
// draft/preview/released table.
func (ctl *WeeklyPlanController) TransitionStatus(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	var req d.TransitionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	plan, err := ctl.Store.GetOrCreatePlan(c.UserContext(), year, week)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	target := m.WeeklyPlanStatus(req.Status)
	if err := service.ValidateTransition(plan.WeeklyPlanStatus, target); err != nil {
		return helper.Error(c, http.StatusUnprocessableEntity, err.Error())
	}

	plan.WeeklyPlanStatus = target
	if err := ctl.DB.WithContext(c.UserContext()).Save(plan).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Plan status updated", d.NewWeeklyPlanResponse(plan))
}

/* =========================
   Generation
   ========================= */

// Preview computes the assignment run without persisting anything.
func (ctl *WeeklyPlanController) Preview(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	var req d.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	result, err := ctl.Engine.Preview(c.UserContext(), year, week, req.Profile)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Planning preview computed", result)
}

// Apply runs the engine and persists the non-conflicting generated
// assignments. Refused outright for released plans.
func (ctl *WeeklyPlanController) Apply(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	var req d.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	resp, err := ctl.Engine.Apply(c.UserContext(), year, week, req.Profile)
	if err != nil {
		if errors.Is(err, service.ErrPlanReleased) {
			return helper.Error(c, http.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Planning applied", resp)
}

/* =========================
   Manual assignment edits
   ========================= */

func (ctl *WeeklyPlanController) CreateAssignment(c *fiber.Ctx) error {
	year, week, err := ctl.parseWeekParams(c)
	if err != nil {
		return err
	}

	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	plan, err := ctl.Store.GetOrCreatePlan(c.UserContext(), year, week)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var row m.WeeklyPlanAssignmentModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	row.WeeklyPlanAssignmentPlanID = plan.WeeklyPlanID

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Assignment created", d.NewAssignmentResponse(&row))
}

func (ctl *WeeklyPlanController) PatchAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assignment id invalid")
	}

	var req d.PatchAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.WeeklyPlanAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "weekly_plan_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Assignment not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyPatch(&row); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Assignment updated", d.NewAssignmentResponse(&row))
}

func (ctl *WeeklyPlanController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assignment id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.WeeklyPlanAssignmentModel{}, "weekly_plan_assignment_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Assignment not found")
	}

	return helper.Success(c, "Assignment deleted", nil)
}

// file: internals/features/planning/weekly_plans/dto/weekly_plan_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
)

var layoutDate = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Plan requests
   ======================================================= */

type UpdateLockedWeekdaysRequest struct {
	LockedWeekdays []int `json:"locked_weekdays" validate:"dive,gte=1,lte=7"`
}

func (r *UpdateLockedWeekdaysRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	seen := map[int]bool{}
	for _, d := range r.LockedWeekdays {
		if seen[d] {
			return fmt.Errorf("weekday %d listed twice", d)
		}
		seen[d] = true
	}
	return nil
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft preview released"`
}

func (r *TransitionStatusRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// GenerateRequest is the body of the preview/apply endpoints. The embedded
// profile is optional; nil means "use the stored default".
type GenerateRequest struct {
	Profile *RuleProfileInput `json:"profile,omitempty"`
}

/* =======================================================
   Assignment requests (manual edits)
   ======================================================= */

type CreateAssignmentRequest struct {
	Weekday     int    `json:"weekday" validate:"required,gte=1,lte=7"`
	Date        string `json:"date" validate:"required"`
	WorkplaceID string `json:"workplace_id" validate:"required,uuid4"`

	EmployeeID *string `json:"employee_id,omitempty" validate:"omitempty,uuid4"`
	Note       *string `json:"note,omitempty"`
	Blocked    bool    `json:"blocked"`
}

func (r *CreateAssignmentRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.EmployeeID == nil && strPtrOrNil(r.Note) == nil && !r.Blocked {
		return errors.New("assignment needs an employee, a note, or a block")
	}
	return nil
}

func (r *CreateAssignmentRequest) ApplyToModel(dst *m.WeeklyPlanAssignmentModel) error {
	date, err := parseDate(r.Date)
	if err != nil {
		return err
	}
	workplaceID, err := uuid.Parse(r.WorkplaceID)
	if err != nil {
		return fmt.Errorf("workplace_id: %w", err)
	}
	employeeID, err := uuidPtrFromString(r.EmployeeID)
	if err != nil {
		return fmt.Errorf("employee_id: %w", err)
	}

	dst.WeeklyPlanAssignmentWeekday = r.Weekday
	dst.WeeklyPlanAssignmentDate = date
	dst.WeeklyPlanAssignmentWorkplaceID = workplaceID
	dst.WeeklyPlanAssignmentEmployeeID = employeeID
	dst.WeeklyPlanAssignmentNote = strPtrOrNil(r.Note)
	dst.WeeklyPlanAssignmentBlocked = r.Blocked
	dst.WeeklyPlanAssignmentKind = m.AssignmentManual
	return nil
}

type PatchAssignmentRequest struct {
	EmployeeID *string `json:"employee_id,omitempty" validate:"omitempty,uuid4"`
	Note       *string `json:"note,omitempty"`
	Blocked    *bool   `json:"blocked,omitempty"`
}

func (r *PatchAssignmentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchAssignmentRequest) ApplyPatch(dst *m.WeeklyPlanAssignmentModel) error {
	if r.EmployeeID != nil {
		idp, err := uuidPtrFromString(r.EmployeeID)
		if err != nil {
			return fmt.Errorf("employee_id: %w", err)
		}
		dst.WeeklyPlanAssignmentEmployeeID = idp
	}
	if r.Note != nil {
		dst.WeeklyPlanAssignmentNote = strPtrOrNil(r.Note)
	}
	if r.Blocked != nil {
		dst.WeeklyPlanAssignmentBlocked = *r.Blocked
	}
	return nil
}

/* =======================================================
   Responses
   ======================================================= */

type WeeklyPlanResponse struct {
	WeeklyPlanID   uuid.UUID          `json:"weekly_plan_id"`
	Year           int                `json:"year"`
	Week           int                `json:"week"`
	Status         m.WeeklyPlanStatus `json:"status"`
	LockedWeekdays []int              `json:"locked_weekdays"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func NewWeeklyPlanResponse(src *m.WeeklyPlanModel) WeeklyPlanResponse {
	locked := make([]int, 0, len(src.WeeklyPlanLockedWeekdays))
	for _, d := range src.WeeklyPlanLockedWeekdays {
		locked = append(locked, int(d))
	}
	return WeeklyPlanResponse{
		WeeklyPlanID:   src.WeeklyPlanID,
		Year:           src.WeeklyPlanYear,
		Week:           src.WeeklyPlanWeek,
		Status:         src.WeeklyPlanStatus,
		LockedWeekdays: locked,
		CreatedAt:      src.WeeklyPlanCreatedAt,
		UpdatedAt:      src.WeeklyPlanUpdatedAt,
	}
}

type AssignmentResponse struct {
	WeeklyPlanAssignmentID uuid.UUID        `json:"weekly_plan_assignment_id"`
	PlanID                 uuid.UUID        `json:"plan_id"`
	Weekday                int              `json:"weekday"`
	Date                   string           `json:"date"`
	WorkplaceID            uuid.UUID        `json:"workplace_id"`
	EmployeeID             *uuid.UUID       `json:"employee_id,omitempty"`
	Note                   *string          `json:"note,omitempty"`
	Blocked                bool             `json:"blocked"`
	Kind                   m.AssignmentKind `json:"kind"`
	Score                  *int             `json:"score,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

func NewAssignmentResponse(src *m.WeeklyPlanAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		WeeklyPlanAssignmentID: src.WeeklyPlanAssignmentID,
		PlanID:                 src.WeeklyPlanAssignmentPlanID,
		Weekday:                src.WeeklyPlanAssignmentWeekday,
		Date:                   src.WeeklyPlanAssignmentDate.Format(layoutDate),
		WorkplaceID:            src.WeeklyPlanAssignmentWorkplaceID,
		EmployeeID:             src.WeeklyPlanAssignmentEmployeeID,
		Note:                   src.WeeklyPlanAssignmentNote,
		Blocked:                src.WeeklyPlanAssignmentBlocked,
		Kind:                   src.WeeklyPlanAssignmentKind,
		Score:                  src.WeeklyPlanAssignmentScore,
		CreatedAt:              src.WeeklyPlanAssignmentCreatedAt,
		UpdatedAt:              src.WeeklyPlanAssignmentUpdatedAt,
	}
}

type ApplyResponse struct {
	Plan         WeeklyPlanResponse `json:"plan"`
	Result       *PlanningResult    `json:"result"`
	AppliedCount int                `json:"applied_count"`
}

// file: internals/features/workplaces/workplaces/dto/workplace_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

func normalizeLabels(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
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
   Workplace requests
   ======================================================= */

type CreateWorkplaceRequest struct {
	Name             string   `json:"name" validate:"required"`
	InWeeklyPlan     *bool    `json:"in_weekly_plan,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	RequiredRoles    []string `json:"required_roles,omitempty"`
	AlternativeRoles []string `json:"alternative_roles,omitempty"`
}

func (r *CreateWorkplaceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateWorkplaceRequest) ApplyToModel(dst *m.WorkplaceModel) {
	dst.WorkplaceName = strings.TrimSpace(r.Name)
	if r.InWeeklyPlan != nil {
		dst.WorkplaceInWeeklyPlan = *r.InWeeklyPlan
	} else {
		dst.WorkplaceInWeeklyPlan = true
	}
	if r.IsActive != nil {
		dst.WorkplaceIsActive = *r.IsActive
	} else {
		dst.WorkplaceIsActive = true
	}
	dst.WorkplaceRequiredRoles = normalizeLabels(r.RequiredRoles)
	dst.WorkplaceAlternativeRoles = normalizeLabels(r.AlternativeRoles)
}

type PatchWorkplaceRequest struct {
	Name             *string   `json:"name,omitempty"`
	InWeeklyPlan     *bool     `json:"in_weekly_plan,omitempty"`
	IsActive         *bool     `json:"is_active,omitempty"`
	RequiredRoles    *[]string `json:"required_roles,omitempty"`
	AlternativeRoles *[]string `json:"alternative_roles,omitempty"`
}

func (r *PatchWorkplaceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchWorkplaceRequest) ApplyPatch(dst *m.WorkplaceModel) error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name must not be empty")
		}
		dst.WorkplaceName = name
	}
	if r.InWeeklyPlan != nil {
		dst.WorkplaceInWeeklyPlan = *r.InWeeklyPlan
	}
	if r.IsActive != nil {
		dst.WorkplaceIsActive = *r.IsActive
	}
	if r.RequiredRoles != nil {
		dst.WorkplaceRequiredRoles = normalizeLabels(*r.RequiredRoles)
	}
	if r.AlternativeRoles != nil {
		dst.WorkplaceAlternativeRoles = normalizeLabels(*r.AlternativeRoles)
	}
	return nil
}

/* =======================================================
   Weekday setting requests
   ======================================================= */

type UpsertWeekdaySettingRequest struct {
	Weekday    int    `json:"weekday" validate:"required,gte=1,lte=7"`
	Recurrence string `json:"recurrence" validate:"required,oneof=weekly first_and_third first_of_month"`

	IsClosed     bool    `json:"is_closed"`
	ClosedReason *string `json:"closed_reason,omitempty"`
	UsageLabel   *string `json:"usage_label,omitempty"`
}

func (r *UpsertWeekdaySettingRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpsertWeekdaySettingRequest) ApplyToModel(dst *m.WeekdaySettingModel) error {
	rec := m.Recurrence(r.Recurrence)
	if !rec.Valid() {
		return fmt.Errorf("invalid recurrence %q", r.Recurrence)
	}
	dst.WeekdaySettingWeekday = r.Weekday
	dst.WeekdaySettingRecurrence = rec
	dst.WeekdaySettingIsClosed = r.IsClosed
	dst.WeekdaySettingClosedReason = strPtrOrNil(r.ClosedReason)
	dst.WeekdaySettingUsageLabel = strPtrOrNil(r.UsageLabel)
	return nil
}

/* =======================================================
   Required competency requests
   ======================================================= */

type CreateRequiredCompetencyRequest struct {
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation" validate:"required,oneof=AND OR"`
}

func (r *CreateRequiredCompetencyRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Responses
   ======================================================= */

type WorkplaceResponse struct {
	WorkplaceID      uuid.UUID `json:"workplace_id"`
	Name             string    `json:"name"`
	InWeeklyPlan     bool      `json:"in_weekly_plan"`
	IsActive         bool      `json:"is_active"`
	RequiredRoles    []string  `json:"required_roles"`
	AlternativeRoles []string  `json:"alternative_roles"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewWorkplaceResponse(src *m.WorkplaceModel) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:      src.WorkplaceID,
		Name:             src.WorkplaceName,
		InWeeklyPlan:     src.WorkplaceInWeeklyPlan,
		IsActive:         src.WorkplaceIsActive,
		RequiredRoles:    src.WorkplaceRequiredRoles,
		AlternativeRoles: src.WorkplaceAlternativeRoles,
		CreatedAt:        src.WorkplaceCreatedAt,
		UpdatedAt:        src.WorkplaceUpdatedAt,
	}
}

type WeekdaySettingResponse struct {
	WeekdaySettingID uuid.UUID    `json:"weekday_setting_id"`
	WorkplaceID      uuid.UUID    `json:"workplace_id"`
	Weekday          int          `json:"weekday"`
	Recurrence       m.Recurrence `json:"recurrence"`
	IsClosed         bool         `json:"is_closed"`
	ClosedReason     *string      `json:"closed_reason,omitempty"`
	UsageLabel       *string      `json:"usage_label,omitempty"`
}

func NewWeekdaySettingResponse(src *m.WeekdaySettingModel) WeekdaySettingResponse {
	return WeekdaySettingResponse{
		WeekdaySettingID: src.WeekdaySettingID,
		WorkplaceID:      src.WeekdaySettingWorkplaceID,
		Weekday:          src.WeekdaySettingWeekday,
		Recurrence:       src.WeekdaySettingRecurrence,
		IsClosed:         src.WeekdaySettingIsClosed,
		ClosedReason:     src.WeekdaySettingClosedReason,
		UsageLabel:       src.WeekdaySettingUsageLabel,
	}
}

type RequiredCompetencyResponse struct {
	RequiredCompetencyID uuid.UUID            `json:"required_competency_id"`
	WorkplaceID          uuid.UUID            `json:"workplace_id"`
	Name                 string               `json:"name"`
	Relation             m.CompetencyRelation `json:"relation"`
}

func NewRequiredCompetencyResponse(src *m.RequiredCompetencyModel) RequiredCompetencyResponse {
	return RequiredCompetencyResponse{
		RequiredCompetencyID: src.RequiredCompetencyID,
		WorkplaceID:          src.RequiredCompetencyWorkplaceID,
		Name:                 src.RequiredCompetencyName,
		Relation:             src.RequiredCompetencyRelation,
	}
}

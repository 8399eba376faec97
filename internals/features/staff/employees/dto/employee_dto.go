// file: internals/features/staff/employees/dto/employee_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
)

var layoutDate = "2006-01-02"

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutDate, strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return &t, nil
}

func normalizeTags(tags []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	RoleLabel    string `json:"role_label" validate:"required"`
	RoleCategory string `json:"role_category" validate:"required,oneof=medical service clerical"`

	CompetencyTags []string `json:"competency_tags,omitempty"`

	IsActive      *bool   `json:"is_active,omitempty"`
	InactiveFrom  *string `json:"inactive_from,omitempty"`
	InactiveUntil *string `json:"inactive_until,omitempty"`
}

func (r *CreateEmployeeRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateEmployeeRequest) ApplyToModel(dst *m.EmployeeModel) error {
	from, err := parseDatePtr(r.InactiveFrom)
	if err != nil {
		return err
	}
	until, err := parseDatePtr(r.InactiveUntil)
	if err != nil {
		return err
	}
	if from != nil && until != nil && until.Before(*from) {
		return errors.New("inactive_until must be >= inactive_from")
	}

	dst.EmployeeFirstName = strings.TrimSpace(r.FirstName)
	dst.EmployeeLastName = strings.TrimSpace(r.LastName)
	dst.EmployeeRoleLabel = strings.TrimSpace(r.RoleLabel)
	dst.EmployeeRoleCategory = m.RoleCategory(r.RoleCategory)
	dst.EmployeeCompetencyTags = normalizeTags(r.CompetencyTags)
	if r.IsActive != nil {
		dst.EmployeeIsActive = *r.IsActive
	} else {
		dst.EmployeeIsActive = true
	}
	dst.EmployeeInactiveFrom = from
	dst.EmployeeInactiveUntil = until
	return nil
}

type PatchEmployeeRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	RoleLabel    *string `json:"role_label,omitempty"`
	RoleCategory *string `json:"role_category,omitempty" validate:"omitempty,oneof=medical service clerical"`

	CompetencyTags *[]string `json:"competency_tags,omitempty"`

	IsActive      *bool   `json:"is_active,omitempty"`
	InactiveFrom  *string `json:"inactive_from,omitempty"`
	InactiveUntil *string `json:"inactive_until,omitempty"`
}

func (r *PatchEmployeeRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchEmployeeRequest) ApplyPatch(dst *m.EmployeeModel) error {
	if r.FirstName != nil {
		dst.EmployeeFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		dst.EmployeeLastName = strings.TrimSpace(*r.LastName)
	}
	if r.RoleLabel != nil {
		dst.EmployeeRoleLabel = strings.TrimSpace(*r.RoleLabel)
	}
	if r.RoleCategory != nil {
		cat := m.RoleCategory(*r.RoleCategory)
		if !cat.Valid() {
			return errors.New("invalid role_category")
		}
		dst.EmployeeRoleCategory = cat
	}
	if r.CompetencyTags != nil {
		dst.EmployeeCompetencyTags = normalizeTags(*r.CompetencyTags)
	}
	if r.IsActive != nil {
		dst.EmployeeIsActive = *r.IsActive
	}
	if r.InactiveFrom != nil {
		from, err := parseDatePtr(r.InactiveFrom)
		if err != nil {
			return err
		}
		dst.EmployeeInactiveFrom = from
	}
	if r.InactiveUntil != nil {
		until, err := parseDatePtr(r.InactiveUntil)
		if err != nil {
			return err
		}
		dst.EmployeeInactiveUntil = until
	}
	if dst.EmployeeInactiveFrom != nil && dst.EmployeeInactiveUntil != nil &&
		dst.EmployeeInactiveUntil.Before(*dst.EmployeeInactiveFrom) {
		return errors.New("inactive_until must be >= inactive_from")
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type EmployeeResponse struct {
	EmployeeID     uuid.UUID      `json:"employee_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	RoleLabel      string         `json:"role_label"`
	RoleCategory   m.RoleCategory `json:"role_category"`
	CompetencyTags []string       `json:"competency_tags"`
	IsActive       bool           `json:"is_active"`
	InactiveFrom   *string        `json:"inactive_from,omitempty"`
	InactiveUntil  *string        `json:"inactive_until,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func NewEmployeeResponse(src *m.EmployeeModel) EmployeeResponse {
	var from, until *string
	if src.EmployeeInactiveFrom != nil {
		s := src.EmployeeInactiveFrom.Format(layoutDate)
		from = &s
	}
	if src.EmployeeInactiveUntil != nil {
		s := src.EmployeeInactiveUntil.Format(layoutDate)
		until = &s
	}
	return EmployeeResponse{
		EmployeeID:     src.EmployeeID,
		FirstName:      src.EmployeeFirstName,
		LastName:       src.EmployeeLastName,
		RoleLabel:      src.EmployeeRoleLabel,
		RoleCategory:   src.EmployeeRoleCategory,
		CompetencyTags: src.EmployeeCompetencyTags,
		IsActive:       src.EmployeeIsActive,
		InactiveFrom:   from,
		InactiveUntil:  until,
		CreatedAt:      src.EmployeeCreatedAt,
		UpdatedAt:      src.EmployeeUpdatedAt,
	}
}

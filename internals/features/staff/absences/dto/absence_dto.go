// file: internals/features/staff/absences/dto/absence_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
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
   Requests: shared shape for both absence kinds
   ======================================================= */

type CreateAbsenceRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required,uuid4"`
	From       string  `json:"from" validate:"required"`
	Until      string  `json:"until" validate:"required"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=requested approved rejected"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateAbsenceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateAbsenceRequest) parse() (uuid.UUID, time.Time, time.Time, m.AbsenceStatus, error) {
	employeeID, err := uuid.Parse(r.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", fmt.Errorf("employee_id: %w", err)
	}
	from, err := parseDate(r.From)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", err
	}
	until, err := parseDate(r.Until)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", err
	}
	if until.Before(from) {
		return uuid.Nil, time.Time{}, time.Time{}, "", errors.New("until must be >= from")
	}
	status := m.AbsenceRequested
	if r.Status != nil {
		status = m.AbsenceStatus(*r.Status)
	}
	return employeeID, from, until, status, nil
}

func (r *CreateAbsenceRequest) ApplyToPlanned(dst *m.PlannedAbsenceModel) error {
	employeeID, from, until, status, err := r.parse()
	if err != nil {
		return err
	}
	dst.PlannedAbsenceEmployeeID = employeeID
	dst.PlannedAbsenceFrom = from
	dst.PlannedAbsenceUntil = until
	dst.PlannedAbsenceStatus = status
	dst.PlannedAbsenceReason = strPtrOrNil(r.Reason)
	return nil
}

func (r *CreateAbsenceRequest) ApplyToLongTerm(dst *m.LongTermAbsenceModel) error {
	employeeID, from, until, status, err := r.parse()
	if err != nil {
		return err
	}
	dst.LongTermAbsenceEmployeeID = employeeID
	dst.LongTermAbsenceFrom = from
	dst.LongTermAbsenceUntil = until
	dst.LongTermAbsenceStatus = status
	dst.LongTermAbsenceReason = strPtrOrNil(r.Reason)
	return nil
}

type UpdateAbsenceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=requested approved rejected"`
}

func (r *UpdateAbsenceStatusRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Responses
   ======================================================= */

type AbsenceResponse struct {
	AbsenceID  uuid.UUID       `json:"absence_id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Kind       string          `json:"kind"` // planned | long_term
	From       string          `json:"from"`
	Until      string          `json:"until"`
	Status     m.AbsenceStatus `json:"status"`
	Reason     *string         `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewPlannedAbsenceResponse(src *m.PlannedAbsenceModel) AbsenceResponse {
	return AbsenceResponse{
		AbsenceID:  src.PlannedAbsenceID,
		EmployeeID: src.PlannedAbsenceEmployeeID,
		Kind:       "planned",
		From:       src.PlannedAbsenceFrom.Format(layoutDate),
		Until:      src.PlannedAbsenceUntil.Format(layoutDate),
		Status:     src.PlannedAbsenceStatus,
		Reason:     src.PlannedAbsenceReason,
		CreatedAt:  src.PlannedAbsenceCreatedAt,
		UpdatedAt:  src.PlannedAbsenceUpdatedAt,
	}
}

func NewLongTermAbsenceResponse(src *m.LongTermAbsenceModel) AbsenceResponse {
	return AbsenceResponse{
		AbsenceID:  src.LongTermAbsenceID,
		EmployeeID: src.LongTermAbsenceEmployeeID,
		Kind:       "long_term",
		From:       src.LongTermAbsenceFrom.Format(layoutDate),
		Until:      src.LongTermAbsenceUntil.Format(layoutDate),
		Status:     src.LongTermAbsenceStatus,
		Reason:     src.LongTermAbsenceReason,
		CreatedAt:  src.LongTermAbsenceCreatedAt,
		UpdatedAt:  src.LongTermAbsenceUpdatedAt,
	}
}

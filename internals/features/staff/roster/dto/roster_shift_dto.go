// file: internals/features/staff/roster/dto/roster_shift_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/model"
)

var layoutDate = "2006-01-02"

type CreateRosterShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid4"`
	Date       string `json:"date" validate:"required"`
	Label      string `json:"label" validate:"required"`
	IsOverduty bool   `json:"is_overduty"`
}

func (r *CreateRosterShiftRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateRosterShiftRequest) ApplyToModel(dst *m.RosterShiftModel) error {
	employeeID, err := uuid.Parse(r.EmployeeID)
	if err != nil {
		return fmt.Errorf("employee_id: %w", err)
	}
	date, err := time.Parse(layoutDate, strings.TrimSpace(r.Date))
	if err != nil {
		return errors.New("invalid date format (want YYYY-MM-DD)")
	}

	dst.RosterShiftEmployeeID = employeeID
	dst.RosterShiftDate = date
	dst.RosterShiftLabel = strings.TrimSpace(r.Label)
	dst.RosterShiftIsOverduty = r.IsOverduty
	return nil
}

type RosterShiftResponse struct {
	RosterShiftID uuid.UUID `json:"roster_shift_id"`
	EmployeeID    uuid.UUID `json:"employee_id"`
	Date          string    `json:"date"`
	Label         string    `json:"label"`
	IsOverduty    bool      `json:"is_overduty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewRosterShiftResponse(src *m.RosterShiftModel) RosterShiftResponse {
	return RosterShiftResponse{
		RosterShiftID: src.RosterShiftID,
		EmployeeID:    src.RosterShiftEmployeeID,
		Date:          src.RosterShiftDate.Format(layoutDate),
		Label:         src.RosterShiftLabel,
		IsOverduty:    src.RosterShiftIsOverduty,
		CreatedAt:     src.RosterShiftCreatedAt,
	}
}

// file: internals/features/staff/roster/model/roster_shift_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterShiftModel is one monthly duty-plan assignment. The weekly engine
// reads these for the after-duty rule and the duty-coverage check; the
// monthly plan itself is produced by an external solving service.
type RosterShiftModel struct {
	RosterShiftID uuid.UUID `json:"roster_shift_id" gorm:"type:uuid;primaryKey;column:roster_shift_id;default:gen_random_uuid()"`

	RosterShiftEmployeeID uuid.UUID `json:"roster_shift_employee_id" gorm:"type:uuid;not null;column:roster_shift_employee_id;index"`

	RosterShiftDate  time.Time `json:"roster_shift_date" gorm:"type:date;not null;column:roster_shift_date;index"`
	RosterShiftLabel string    `json:"roster_shift_label" gorm:"type:text;not null;column:roster_shift_label"`

	// Overduty (standby/on-call) shifts do not count as a worked duty for
	// the after-duty rule or for duty coverage.
	RosterShiftIsOverduty bool `json:"roster_shift_is_overduty" gorm:"type:boolean;not null;default:false;column:roster_shift_is_overduty"`

	RosterShiftCreatedAt time.Time      `json:"roster_shift_created_at" gorm:"column:roster_shift_created_at;not null;autoCreateTime"`
	RosterShiftUpdatedAt time.Time      `json:"roster_shift_updated_at" gorm:"column:roster_shift_updated_at;not null;autoUpdateTime"`
	RosterShiftDeletedAt gorm.DeletedAt `json:"roster_shift_deleted_at" gorm:"column:roster_shift_deleted_at;index"`
}

func (RosterShiftModel) TableName() string {
	return "roster_shifts"
}

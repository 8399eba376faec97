// file: internals/features/staff/absences/model/absence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Approval status enum (shared by both absence kinds)
   ======================================================= */

type AbsenceStatus string

const (
	AbsenceRequested AbsenceStatus = "requested"
	AbsenceApproved  AbsenceStatus = "approved"
	AbsenceRejected  AbsenceStatus = "rejected"
)

func (s AbsenceStatus) Valid() bool {
	switch s {
	case AbsenceRequested, AbsenceApproved, AbsenceRejected:
		return true
	}
	return false
}

/* =======================================================
   PlannedAbsenceModel: short-range absences (vacation,
   training, ...). Blocks availability unless rejected.
   ======================================================= */

type PlannedAbsenceModel struct {
	PlannedAbsenceID uuid.UUID `json:"planned_absence_id" gorm:"type:uuid;primaryKey;column:planned_absence_id;default:gen_random_uuid()"`

	PlannedAbsenceEmployeeID uuid.UUID `json:"planned_absence_employee_id" gorm:"type:uuid;not null;column:planned_absence_employee_id;index"`

	PlannedAbsenceFrom  time.Time `json:"planned_absence_from" gorm:"type:date;not null;column:planned_absence_from"`
	PlannedAbsenceUntil time.Time `json:"planned_absence_until" gorm:"type:date;not null;column:planned_absence_until"`

	PlannedAbsenceStatus AbsenceStatus `json:"planned_absence_status" gorm:"type:text;not null;default:'requested';column:planned_absence_status"`
	PlannedAbsenceReason *string       `json:"planned_absence_reason,omitempty" gorm:"type:text;column:planned_absence_reason"`

	PlannedAbsenceCreatedAt time.Time      `json:"planned_absence_created_at" gorm:"column:planned_absence_created_at;not null;autoCreateTime"`
	PlannedAbsenceUpdatedAt time.Time      `json:"planned_absence_updated_at" gorm:"column:planned_absence_updated_at;not null;autoUpdateTime"`
	PlannedAbsenceDeletedAt gorm.DeletedAt `json:"planned_absence_deleted_at" gorm:"column:planned_absence_deleted_at;index"`
}

func (PlannedAbsenceModel) TableName() string {
	return "planned_absences"
}

// Blocks reports whether this entry makes the employee unavailable on the
// date. Rejected requests never block.
func (a *PlannedAbsenceModel) Blocks(date time.Time) bool {
	if a.PlannedAbsenceStatus == AbsenceRejected {
		return false
	}
	return !date.Before(a.PlannedAbsenceFrom) && !date.After(a.PlannedAbsenceUntil)
}

/* =======================================================
   LongTermAbsenceModel: parental leave, sabbatical, long
   sick leave. Blocks availability only once approved.
   ======================================================= */

type LongTermAbsenceModel struct {
	LongTermAbsenceID uuid.UUID `json:"long_term_absence_id" gorm:"type:uuid;primaryKey;column:long_term_absence_id;default:gen_random_uuid()"`

	LongTermAbsenceEmployeeID uuid.UUID `json:"long_term_absence_employee_id" gorm:"type:uuid;not null;column:long_term_absence_employee_id;index"`

	LongTermAbsenceFrom  time.Time `json:"long_term_absence_from" gorm:"type:date;not null;column:long_term_absence_from"`
	LongTermAbsenceUntil time.Time `json:"long_term_absence_until" gorm:"type:date;not null;column:long_term_absence_until"`

	LongTermAbsenceStatus AbsenceStatus `json:"long_term_absence_status" gorm:"type:text;not null;default:'requested';column:long_term_absence_status"`
	LongTermAbsenceReason *string       `json:"long_term_absence_reason,omitempty" gorm:"type:text;column:long_term_absence_reason"`

	LongTermAbsenceCreatedAt time.Time      `json:"long_term_absence_created_at" gorm:"column:long_term_absence_created_at;not null;autoCreateTime"`
	LongTermAbsenceUpdatedAt time.Time      `json:"long_term_absence_updated_at" gorm:"column:long_term_absence_updated_at;not null;autoUpdateTime"`
	LongTermAbsenceDeletedAt gorm.DeletedAt `json:"long_term_absence_deleted_at" gorm:"column:long_term_absence_deleted_at;index"`
}

func (LongTermAbsenceModel) TableName() string {
	return "long_term_absences"
}

func (a *LongTermAbsenceModel) Blocks(date time.Time) bool {
	if a.LongTermAbsenceStatus != AbsenceApproved {
		return false
	}
	return !date.Before(a.LongTermAbsenceFrom) && !date.After(a.LongTermAbsenceUntil)
}

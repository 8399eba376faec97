// file: internals/features/staff/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   Role category enum
   Candidacy filtering works on this explicit category, not
   on substring matches against the free-text role label.
   ======================================================= */

type RoleCategory string

const (
	RoleMedical  RoleCategory = "medical"
	RoleService  RoleCategory = "service"
	RoleClerical RoleCategory = "clerical"
)

func (r RoleCategory) Valid() bool {
	switch r {
	case RoleMedical, RoleService, RoleClerical:
		return true
	}
	return false
}

/* =======================================================
   EmployeeModel: maps to table employees
   ======================================================= */

type EmployeeModel struct {
	// PK
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;primaryKey;column:employee_id;default:gen_random_uuid()"`

	EmployeeFirstName string `json:"employee_first_name" gorm:"type:text;not null;column:employee_first_name"`
	EmployeeLastName  string `json:"employee_last_name" gorm:"type:text;not null;column:employee_last_name"`

	// Free-text role label as shown on the plan, plus the category used
	// by the assignment engine.
	EmployeeRoleLabel    string       `json:"employee_role_label" gorm:"type:text;not null;column:employee_role_label"`
	EmployeeRoleCategory RoleCategory `json:"employee_role_category" gorm:"type:text;not null;default:'medical';column:employee_role_category"`

	// Free-text competency tags (matched against workplace requirements)
	EmployeeCompetencyTags pq.StringArray `json:"employee_competency_tags" gorm:"type:text[];column:employee_competency_tags"`

	EmployeeIsActive bool `json:"employee_is_active" gorm:"type:boolean;not null;default:true;column:employee_is_active"`

	// Legacy deactivation window; a date inside it makes the employee
	// unavailable even while the active flag is still set.
	EmployeeInactiveFrom  *time.Time `json:"employee_inactive_from,omitempty" gorm:"type:date;column:employee_inactive_from"`
	EmployeeInactiveUntil *time.Time `json:"employee_inactive_until,omitempty" gorm:"type:date;column:employee_inactive_until"`

	EmployeeCreatedAt time.Time      `json:"employee_created_at" gorm:"column:employee_created_at;not null;autoCreateTime"`
	EmployeeUpdatedAt time.Time      `json:"employee_updated_at" gorm:"column:employee_updated_at;not null;autoUpdateTime"`
	EmployeeDeletedAt gorm.DeletedAt `json:"employee_deleted_at" gorm:"column:employee_deleted_at;index"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

// InactiveOn reports whether the legacy deactivation window covers the date.
func (e *EmployeeModel) InactiveOn(date time.Time) bool {
	if e.EmployeeInactiveFrom == nil {
		return false
	}
	if date.Before(*e.EmployeeInactiveFrom) {
		return false
	}
	if e.EmployeeInactiveUntil != nil && date.After(*e.EmployeeInactiveUntil) {
		return false
	}
	return true
}

// file: internals/features/planning/weekly_plans/model/weekly_plan_assignment_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Assignment kind: manual edits vs engine output
   ======================================================= */

type AssignmentKind string

const (
	AssignmentManual AssignmentKind = "manual"
	AssignmentPlan   AssignmentKind = "plan"
)

/* =======================================================
   WeeklyPlanAssignmentModel: one (workplace, weekday)
   fact inside a plan: an employee, a free-text note, or a
   hard block. Several rows may coexist on one slot.
   ======================================================= */

type WeeklyPlanAssignmentModel struct {
	WeeklyPlanAssignmentID uuid.UUID `json:"weekly_plan_assignment_id" gorm:"type:uuid;primaryKey;column:weekly_plan_assignment_id;default:gen_random_uuid()"`

	WeeklyPlanAssignmentPlanID uuid.UUID `json:"weekly_plan_assignment_plan_id" gorm:"type:uuid;not null;column:weekly_plan_assignment_plan_id;index"`

	WeeklyPlanAssignmentWeekday int       `json:"weekly_plan_assignment_weekday" gorm:"type:int;not null;column:weekly_plan_assignment_weekday"` // 1..7
	WeeklyPlanAssignmentDate    time.Time `json:"weekly_plan_assignment_date" gorm:"type:date;not null;column:weekly_plan_assignment_date"`

	WeeklyPlanAssignmentWorkplaceID uuid.UUID `json:"weekly_plan_assignment_workplace_id" gorm:"type:uuid;not null;column:weekly_plan_assignment_workplace_id;index"`

	WeeklyPlanAssignmentEmployeeID *uuid.UUID `json:"weekly_plan_assignment_employee_id,omitempty" gorm:"type:uuid;column:weekly_plan_assignment_employee_id;index"`

	WeeklyPlanAssignmentNote    *string        `json:"weekly_plan_assignment_note,omitempty" gorm:"type:text;column:weekly_plan_assignment_note"`
	WeeklyPlanAssignmentBlocked bool           `json:"weekly_plan_assignment_blocked" gorm:"type:boolean;not null;default:false;column:weekly_plan_assignment_blocked"`
	WeeklyPlanAssignmentKind    AssignmentKind `json:"weekly_plan_assignment_kind" gorm:"type:text;not null;default:'manual';column:weekly_plan_assignment_kind"`

	// Engine score at generation time, for traceability.
	WeeklyPlanAssignmentScore *int `json:"weekly_plan_assignment_score,omitempty" gorm:"type:int;column:weekly_plan_assignment_score"`

	WeeklyPlanAssignmentCreatedAt time.Time      `json:"weekly_plan_assignment_created_at" gorm:"column:weekly_plan_assignment_created_at;not null;autoCreateTime"`
	WeeklyPlanAssignmentUpdatedAt time.Time      `json:"weekly_plan_assignment_updated_at" gorm:"column:weekly_plan_assignment_updated_at;not null;autoUpdateTime"`
	WeeklyPlanAssignmentDeletedAt gorm.DeletedAt `json:"weekly_plan_assignment_deleted_at" gorm:"column:weekly_plan_assignment_deleted_at;index"`
}

func (WeeklyPlanAssignmentModel) TableName() string {
	return "weekly_plan_assignments"
}

// SlotKey identifies the (weekday, workplace) slot within one plan.
func (a *WeeklyPlanAssignmentModel) SlotKey() string {
	return SlotKey(a.WeeklyPlanAssignmentWeekday, a.WeeklyPlanAssignmentWorkplaceID)
}

func SlotKey(weekday int, workplaceID uuid.UUID) string {
	return fmt.Sprintf("%d|%s", weekday, workplaceID)
}

// HoldsEmployee reports whether this row already binds a person to the slot.
func (a *WeeklyPlanAssignmentModel) HoldsEmployee() bool {
	return a.WeeklyPlanAssignmentEmployeeID != nil
}

// IsEmptyBlock reports a hard block with no employee attached.
func (a *WeeklyPlanAssignmentModel) IsEmptyBlock() bool {
	return a.WeeklyPlanAssignmentBlocked && a.WeeklyPlanAssignmentEmployeeID == nil
}

// file: internals/features/planning/weekly_plans/dto/planning_result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Reason & violation codes
   ======================================================= */

type ReasonCode string

const (
	// Slot-level
	ReasonLockedEmpty         ReasonCode = "LOCKED_EMPTY"
	ReasonNoEligibleCandidate ReasonCode = "NO_ELIGIBLE_CANDIDATE"

	// Candidate exclusions
	ReasonForbiddenArea          ReasonCode = "FORBIDDEN_AREA"
	ReasonAlreadyAssignedSameDay ReasonCode = "ALREADY_ASSIGNED_SAME_TIME"
	ReasonAbsenceBlocked         ReasonCode = "ABSENCE_BLOCKED"
	ReasonLongTermAbsence        ReasonCode = "LONG_TERM_ABSENCE_BLOCKED"
	ReasonAfterDutyBlocked       ReasonCode = "AFTER_DUTY_BLOCKED"
	ReasonMissingRequiredRole    ReasonCode = "MISSING_REQUIRED_ROLE"
	ReasonMissingRequiredSkill   ReasonCode = "MISSING_REQUIRED_SKILL"
	ReasonEmployeeInactive       ReasonCode = "EMPLOYEE_INACTIVE"

	// Violations
	ViolationLowPriorityMatch ReasonCode = "LOW_PRIORITY_AREA_MATCH"
	ViolationNoDutyPlan       ReasonCode = "NO_DUTY_PLAN_IN_PERIOD"
)

/* =======================================================
   PlanningResult: the full diagnostic report of one run
   ======================================================= */

type PlanningResult struct {
	Meta           PlanningMeta          `json:"meta"`
	Profile        RuleProfile           `json:"profile"`
	Stats          PlanningStats         `json:"stats"`
	Generated      []GeneratedAssignment `json:"generated_assignments"`
	UnfilledSlots  []UnfilledSlot        `json:"unfilled_slots"`
	Violations     []RuleViolation       `json:"violations"`
	PublishAllowed bool                  `json:"publish_allowed"`
}

type PlanningMeta struct {
	Year int    `json:"year"`
	Week int    `json:"week"`
	From string `json:"from"` // YYYY-MM-DD, Monday
	To   string `json:"to"`   // YYYY-MM-DD, Sunday
}

type PlanningStats struct {
	GeneratedAssignments int `json:"generated_assignments"`
	ExistingAssignments  int `json:"existing_assignments"`
	UnfilledSlots        int `json:"unfilled_slots"`
	HardConflicts        int `json:"hard_conflicts"`
	SoftConflicts        int `json:"soft_conflicts"`
}

type GeneratedAssignment struct {
	Date          string    `json:"date"`
	Weekday       int       `json:"weekday"`
	WorkplaceID   uuid.UUID `json:"workplace_id"`
	WorkplaceName string    `json:"workplace_name"`
	EmployeeID    uuid.UUID `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	Score         int       `json:"score"`
	PriorityScore int       `json:"priority_score"`
}

type UnfilledSlot struct {
	SlotKey       string       `json:"slot_key"`
	Date          string       `json:"date"`
	Weekday       int          `json:"weekday"`
	WorkplaceID   uuid.UUID    `json:"workplace_id"`
	WorkplaceName string       `json:"workplace_name"`
	Reasons       []ReasonCode `json:"reasons"`

	// Union of the exclusion codes collected over every evaluated
	// candidate; explains what would have to change to fill the slot.
	CandidatesBlockedBy []ReasonCode `json:"candidates_blocked_by,omitempty"`

	BlocksPublish bool `json:"blocks_publish"`
}

type RuleViolation struct {
	Code        ReasonCode `json:"code"`
	Hard        bool       `json:"hard"`
	Message     string     `json:"message"`
	Date        *string    `json:"date,omitempty"`
	WorkplaceID *uuid.UUID `json:"workplace_id,omitempty"`
	EmployeeID  *uuid.UUID `json:"employee_id,omitempty"`
}

// DateString renders plan dates the way every result field expects them.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// file: internals/features/planning/weekly_plans/dto/rule_profile_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =======================================================
   Raw rule-profile input
   Loosely filled by the planner UI or read back from the
   stored default; every field optional. Normalization into
   the canonical RuleProfile happens in the service layer
   and never fails.
   ======================================================= */

type RuleProfileInput struct {
	BlockAfterDuty       *bool `json:"block_after_duty,omitempty"`
	BlockAbsence         *bool `json:"block_absence,omitempty"`
	BlockLongTermAbsence *bool `json:"block_long_term_absence,omitempty"`
	SkipClosedRooms      *bool `json:"skip_closed_rooms,omitempty"`
	RequireDutyCoverage  *bool `json:"require_duty_coverage,omitempty"`

	EmployeeRules []EmployeeRuleInput `json:"employee_rules,omitempty"`
}

type EmployeeRuleInput struct {
	EmployeeID       string   `json:"employee_id"`
	PriorityAreaIDs  []string `json:"priority_area_ids,omitempty"`
	ForbiddenAreaIDs []string `json:"forbidden_area_ids,omitempty"`
}

/* =======================================================
   Canonical rule profile
   All toggles resolved, employee lists deduplicated,
   priority lists capped. Part of the PlanningResult so the
   caller can see what the run actually enforced.
   ======================================================= */

const MaxPriorityAreas = 3

type RuleProfile struct {
	BlockAfterDuty       bool `json:"block_after_duty"`
	BlockAbsence         bool `json:"block_absence"`
	BlockLongTermAbsence bool `json:"block_long_term_absence"`
	SkipClosedRooms      bool `json:"skip_closed_rooms"`
	RequireDutyCoverage  bool `json:"require_duty_coverage"`

	EmployeeRules []EmployeeRule `json:"employee_rules"`
}

type EmployeeRule struct {
	EmployeeID uuid.UUID `json:"employee_id"`

	// Order encodes preference strength: index 0 is the strongest match.
	PriorityAreaIDs  []uuid.UUID `json:"priority_area_ids"`
	ForbiddenAreaIDs []uuid.UUID `json:"forbidden_area_ids"`
}

// RuleFor returns the employee's rule entry, or nil.
func (p *RuleProfile) RuleFor(employeeID uuid.UUID) *EmployeeRule {
	for i := range p.EmployeeRules {
		if p.EmployeeRules[i].EmployeeID == employeeID {
			return &p.EmployeeRules[i]
		}
	}
	return nil
}

// file: internals/features/planning/weekly_plans/service/rule_profile_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
)

func TestResolveRuleProfile_Defaults(t *testing.T) {
	p := ResolveRuleProfile(nil, nil)

	if !p.BlockAfterDuty || !p.BlockAbsence || !p.BlockLongTermAbsence ||
		!p.SkipClosedRooms || !p.RequireDutyCoverage {
		t.Errorf("expected every blocking rule on by default, got %+v", p)
	}
	if len(p.EmployeeRules) != 0 {
		t.Errorf("expected no employee rules, got %d", len(p.EmployeeRules))
	}
}

func TestResolveRuleProfile_InputOverridesToggles(t *testing.T) {
	in := &d.RuleProfileInput{
		BlockAfterDuty:  boolPtr(false),
		SkipClosedRooms: boolPtr(false),
	}

	p := ResolveRuleProfile(in, nil)

	if p.BlockAfterDuty {
		t.Error("block_after_duty=false should survive normalization")
	}
	if p.SkipClosedRooms {
		t.Error("skip_closed_rooms=false should survive normalization")
	}
	if !p.BlockAbsence || !p.RequireDutyCoverage {
		t.Error("untouched toggles must keep their defaults")
	}
}

func TestResolveRuleProfile_StoredDefaultUsedWhenNoInput(t *testing.T) {
	stored := []byte(`{"block_absence":false,"require_duty_coverage":false}`)

	p := ResolveRuleProfile(nil, stored)

	if p.BlockAbsence {
		t.Error("stored default should turn block_absence off")
	}
	if p.RequireDutyCoverage {
		t.Error("stored default should turn require_duty_coverage off")
	}
	if !p.BlockAfterDuty {
		t.Error("fields absent from the stored document keep their defaults")
	}
}

func TestResolveRuleProfile_InputWinsOverStored(t *testing.T) {
	stored := []byte(`{"block_absence":false}`)
	in := &d.RuleProfileInput{}

	p := ResolveRuleProfile(in, stored)

	if !p.BlockAbsence {
		t.Error("an explicit input document replaces the stored default entirely")
	}
}

func TestResolveRuleProfile_MalformedStoredFallsBack(t *testing.T) {
	p := ResolveRuleProfile(nil, []byte(`{not json`))

	if !p.BlockAbsence || !p.BlockAfterDuty {
		t.Error("malformed stored default must degrade to the safe defaults")
	}
}

func TestResolveRuleProfile_EmployeeRuleNormalization(t *testing.T) {
	empID := uuid.New()
	area1 := uuid.New()
	area2 := uuid.New()
	area3 := uuid.New()
	area4 := uuid.New()
	forbidden := uuid.New()

	in := &d.RuleProfileInput{
		EmployeeRules: []d.EmployeeRuleInput{
			{
				EmployeeID: empID.String(),
				PriorityAreaIDs: []string{
					area1.String(),
					"not-a-uuid",
					area1.String(), // duplicate
					area2.String(),
					uuid.Nil.String(),
					area3.String(),
					area4.String(), // beyond the cap
				},
				ForbiddenAreaIDs: []string{forbidden.String(), "  " + forbidden.String() + "  "},
			},
		},
	}

	p := ResolveRuleProfile(in, nil)

	if len(p.EmployeeRules) != 1 {
		t.Fatalf("expected 1 employee rule, got %d", len(p.EmployeeRules))
	}
	rule := p.EmployeeRules[0]
	if rule.EmployeeID != empID {
		t.Errorf("employee id mismatch: %s", rule.EmployeeID)
	}
	if len(rule.PriorityAreaIDs) != d.MaxPriorityAreas {
		t.Fatalf("priority list must be capped at %d, got %d", d.MaxPriorityAreas, len(rule.PriorityAreaIDs))
	}
	if rule.PriorityAreaIDs[0] != area1 || rule.PriorityAreaIDs[1] != area2 || rule.PriorityAreaIDs[2] != area3 {
		t.Errorf("priority order must be preserved after dedupe: %v", rule.PriorityAreaIDs)
	}
	if len(rule.ForbiddenAreaIDs) != 1 || rule.ForbiddenAreaIDs[0] != forbidden {
		t.Errorf("forbidden list should trim and dedupe, got %v", rule.ForbiddenAreaIDs)
	}
}

func TestResolveRuleProfile_DropsInvalidEmployees(t *testing.T) {
	empID := uuid.New()

	in := &d.RuleProfileInput{
		EmployeeRules: []d.EmployeeRuleInput{
			{EmployeeID: "garbage"},
			{EmployeeID: uuid.Nil.String()},
			{EmployeeID: empID.String(), ForbiddenAreaIDs: []string{uuid.New().String()}},
			{EmployeeID: empID.String()}, // duplicate; first entry wins
		},
	}

	p := ResolveRuleProfile(in, nil)

	if len(p.EmployeeRules) != 1 {
		t.Fatalf("expected 1 surviving rule, got %d", len(p.EmployeeRules))
	}
	if len(p.EmployeeRules[0].ForbiddenAreaIDs) != 1 {
		t.Error("the first entry for an employee wins, duplicates are ignored")
	}
}

func TestRuleProfile_RuleFor(t *testing.T) {
	empID := uuid.New()
	p := d.RuleProfile{
		EmployeeRules: []d.EmployeeRule{{EmployeeID: empID}},
	}

	if p.RuleFor(empID) == nil {
		t.Error("expected rule for known employee")
	}
	if p.RuleFor(uuid.New()) != nil {
		t.Error("expected nil for unknown employee")
	}
}

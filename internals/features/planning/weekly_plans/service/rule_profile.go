// file: internals/features/planning/weekly_plans/service/rule_profile.go
package service

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
)

/* =======================================================
   Rule Profile Resolver

   Normalizes a caller-supplied profile, falling back to
   the stored default document. Generation is best-effort,
   so malformed input degrades to the safe defaults (all
   blocking rules on) instead of erroring.
   ======================================================= */

// ResolveRuleProfile returns the canonical profile for one engine run.
// input wins over storedDefault; both may be nil/empty.
func ResolveRuleProfile(input *d.RuleProfileInput, storedDefault []byte) d.RuleProfile {
	src := input
	if src == nil && len(storedDefault) > 0 {
		var stored d.RuleProfileInput
		if err := sonic.Unmarshal(storedDefault, &stored); err == nil {
			src = &stored
		}
	}

	out := d.RuleProfile{
		BlockAfterDuty:       true,
		BlockAbsence:         true,
		BlockLongTermAbsence: true,
		SkipClosedRooms:      true,
		RequireDutyCoverage:  true,
		EmployeeRules:        []d.EmployeeRule{},
	}
	if src == nil {
		return out
	}

	if src.BlockAfterDuty != nil {
		out.BlockAfterDuty = *src.BlockAfterDuty
	}
	if src.BlockAbsence != nil {
		out.BlockAbsence = *src.BlockAbsence
	}
	if src.BlockLongTermAbsence != nil {
		out.BlockLongTermAbsence = *src.BlockLongTermAbsence
	}
	if src.SkipClosedRooms != nil {
		out.SkipClosedRooms = *src.SkipClosedRooms
	}
	if src.RequireDutyCoverage != nil {
		out.RequireDutyCoverage = *src.RequireDutyCoverage
	}

	seenEmployees := map[uuid.UUID]bool{}
	for _, raw := range src.EmployeeRules {
		employeeID, ok := parseID(raw.EmployeeID)
		if !ok || seenEmployees[employeeID] {
			continue
		}
		seenEmployees[employeeID] = true

		rule := d.EmployeeRule{
			EmployeeID:       employeeID,
			PriorityAreaIDs:  normalizeIDList(raw.PriorityAreaIDs, d.MaxPriorityAreas),
			ForbiddenAreaIDs: normalizeIDList(raw.ForbiddenAreaIDs, 0),
		}
		out.EmployeeRules = append(out.EmployeeRules, rule)
	}

	return out
}

// normalizeIDList drops malformed and duplicate ids, keeps order, and caps
// the list when cap > 0.
func normalizeIDList(raw []string, capAt int) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(raw))
	seen := map[uuid.UUID]bool{}
	for _, s := range raw {
		id, ok := parseID(s)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if capAt > 0 && len(out) == capAt {
			break
		}
	}
	return out
}

func parseID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// file: internals/features/planning/weekly_plans/service/engine.go
package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
)

/* =======================================================
   PlanningEngine

   Preview is a pure function over the loaded snapshot.
   Apply additionally persists the non-conflicting part of
   the generated list, after re-checking slot coverage.
   ======================================================= */

type PlanningEngine struct {
	store PlanStore
}

func NewPlanningEngine(store PlanStore) *PlanningEngine {
	return &PlanningEngine{store: store}
}

func (e *PlanningEngine) Preview(ctx context.Context, year, week int, input *d.RuleProfileInput) (*d.PlanningResult, error) {
	if err := helper.ValidateISOWeek(year, week); err != nil {
		return nil, err
	}
	snap, err := e.store.LoadSnapshot(ctx, year, week)
	if err != nil {
		return nil, err
	}
	profile := ResolveRuleProfile(input, snap.DefaultProfile)
	return run(snap, profile), nil
}

func (e *PlanningEngine) Apply(ctx context.Context, year, week int, input *d.RuleProfileInput) (*d.ApplyResponse, error) {
	if err := helper.ValidateISOWeek(year, week); err != nil {
		return nil, err
	}
	snap, err := e.store.LoadSnapshot(ctx, year, week)
	if err != nil {
		return nil, err
	}
	if snap.Plan != nil && snap.Plan.WeeklyPlanStatus == m.PlanReleased {
		return nil, ErrPlanReleased
	}

	profile := ResolveRuleProfile(input, snap.DefaultProfile)
	result := run(snap, profile)

	plan, err := e.store.GetOrCreatePlan(ctx, year, week)
	if err != nil {
		return nil, err
	}

	// Recompute covered slot keys from the snapshot; only generated
	// assignments for still-uncovered slots get written. Defense against
	// concurrent edits between load and apply.
	covered := map[string]bool{}
	for i := range snap.ExistingAssignments {
		a := &snap.ExistingAssignments[i]
		if a.HoldsEmployee() || a.WeeklyPlanAssignmentBlocked {
			covered[a.SlotKey()] = true
		}
	}

	rows := make([]m.WeeklyPlanAssignmentModel, 0, len(result.Generated))
	for _, g := range result.Generated {
		key := m.SlotKey(g.Weekday, g.WorkplaceID)
		if covered[key] {
			continue
		}
		covered[key] = true

		date, err := parseResultDate(g.Date)
		if err != nil {
			return nil, err
		}
		employeeID := g.EmployeeID
		score := g.Score
		rows = append(rows, m.WeeklyPlanAssignmentModel{
			WeeklyPlanAssignmentPlanID:      plan.WeeklyPlanID,
			WeeklyPlanAssignmentWeekday:     g.Weekday,
			WeeklyPlanAssignmentDate:        date,
			WeeklyPlanAssignmentWorkplaceID: g.WorkplaceID,
			WeeklyPlanAssignmentEmployeeID:  &employeeID,
			WeeklyPlanAssignmentBlocked:     false,
			WeeklyPlanAssignmentKind:        m.AssignmentPlan,
			WeeklyPlanAssignmentScore:       &score,
		})
	}

	if err := e.store.InsertAssignments(ctx, rows); err != nil {
		return nil, err
	}

	return &d.ApplyResponse{
		Plan:         d.NewWeeklyPlanResponse(plan),
		Result:       result,
		AppliedCount: len(rows),
	}, nil
}

/* =======================================================
   Core run: fill open slots and collect diagnostics
   ======================================================= */

func run(snap *PlanningSnapshot, profile d.RuleProfile) *d.PlanningResult {
	result := &d.PlanningResult{
		Meta: d.PlanningMeta{
			Year: snap.Year,
			Week: snap.Week,
			From: d.DateString(snap.From),
			To:   d.DateString(snap.To),
		},
		Profile:       profile,
		Generated:     []d.GeneratedAssignment{},
		UnfilledSlots: []d.UnfilledSlot{},
		Violations:    []d.RuleViolation{},
	}

	existingCount := 0
	for i := range snap.ExistingAssignments {
		if snap.ExistingAssignments[i].HoldsEmployee() {
			existingCount++
		}
	}

	// Standing check: a weekly plan without an underlying duty plan for
	// the period cannot be considered staffed.
	if profile.RequireDutyCoverage && !weekHasDutyShift(snap) {
		result.Violations = append(result.Violations, d.RuleViolation{
			Code:    d.ViolationNoDutyPlan,
			Hard:    true,
			Message: "no duty plan covers the target week",
		})
	}

	rc := newRunContext(snap, profile)
	open, unfilled := enumerateSlots(snap, profile)
	result.UnfilledSlots = append(result.UnfilledSlots, unfilled...)

	// CompareString on a collator is stateful, so one per run.
	coll := collate.New(language.German)

	for _, slot := range open {
		candidates := rc.evaluateCandidates(slot)

		eligible := candidates[:0:0]
		blockedBy := map[d.ReasonCode]bool{}
		for _, c := range candidates {
			if c.eligible() {
				eligible = append(eligible, c)
				continue
			}
			for _, r := range c.Reasons {
				blockedBy[r] = true
			}
		}

		if len(eligible) == 0 {
			result.UnfilledSlots = append(result.UnfilledSlots, d.UnfilledSlot{
				SlotKey:             m.SlotKey(slot.Weekday, slot.Workplace.WorkplaceID),
				Date:                d.DateString(slot.Date),
				Weekday:             slot.Weekday,
				WorkplaceID:         slot.Workplace.WorkplaceID,
				WorkplaceName:       slot.Workplace.WorkplaceName,
				Reasons:             []d.ReasonCode{d.ReasonNoEligibleCandidate},
				CandidatesBlockedBy: sortedCodes(blockedBy),
				BlocksPublish:       true,
			})
			continue
		}

		sort.SliceStable(eligible, func(i, j int) bool {
			if eligible[i].Score != eligible[j].Score {
				return eligible[i].Score > eligible[j].Score
			}
			a, b := eligible[i].Employee, eligible[j].Employee
			if cmp := coll.CompareString(a.EmployeeLastName, b.EmployeeLastName); cmp != 0 {
				return cmp < 0
			}
			if cmp := coll.CompareString(a.EmployeeFirstName, b.EmployeeFirstName); cmp != 0 {
				return cmp < 0
			}
			return a.EmployeeID.String() < b.EmployeeID.String()
		})

		winner := eligible[0]

		if winner.PriorityScore <= priorityFloor {
			date := d.DateString(slot.Date)
			empID := winner.Employee.EmployeeID
			wpID := slot.Workplace.WorkplaceID
			result.Violations = append(result.Violations, d.RuleViolation{
				Code: d.ViolationLowPriorityMatch,
				Hard: false,
				Message: winner.Employee.EmployeeLastName + ", " + winner.Employee.EmployeeFirstName +
					" covers " + slot.Workplace.WorkplaceName + " without an area preference",
				Date:        &date,
				WorkplaceID: &wpID,
				EmployeeID:  &empID,
			})
		}

		result.Generated = append(result.Generated, d.GeneratedAssignment{
			Date:          d.DateString(slot.Date),
			Weekday:       slot.Weekday,
			WorkplaceID:   slot.Workplace.WorkplaceID,
			WorkplaceName: slot.Workplace.WorkplaceName,
			EmployeeID:    winner.Employee.EmployeeID,
			EmployeeName:  winner.Employee.EmployeeFirstName + " " + winner.Employee.EmployeeLastName,
			Score:         winner.Score,
			PriorityScore: winner.PriorityScore,
		})
		rc.recordWin(winner.Employee.EmployeeID, slot.Weekday)
	}

	hard := 0
	soft := 0
	for _, u := range result.UnfilledSlots {
		if u.BlocksPublish {
			hard++
		}
	}
	for _, v := range result.Violations {
		if v.Hard {
			hard++
		} else {
			soft++
		}
	}

	result.Stats = d.PlanningStats{
		GeneratedAssignments: len(result.Generated),
		ExistingAssignments:  existingCount,
		UnfilledSlots:        len(result.UnfilledSlots),
		HardConflicts:        hard,
		SoftConflicts:        soft,
	}
	result.PublishAllowed = hard == 0

	return result
}

// weekHasDutyShift reports a non-overduty roster shift anywhere between
// Monday and Sunday; the preceding day does not count.
func weekHasDutyShift(snap *PlanningSnapshot) bool {
	for i := range snap.RosterShifts {
		sh := &snap.RosterShifts[i]
		if sh.RosterShiftIsOverduty {
			continue
		}
		if sh.RosterShiftDate.Before(snap.From) || sh.RosterShiftDate.After(snap.To) {
			continue
		}
		return true
	}
	return false
}

func parseResultDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func sortedCodes(set map[d.ReasonCode]bool) []d.ReasonCode {
	out := make([]d.ReasonCode, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

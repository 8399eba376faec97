// file: internals/features/planning/weekly_plans/service/engine_test.go
package service

import (
	"context"
	"errors"
	"testing"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
)

/* =======================================================
   Shared assertion helpers
   ======================================================= */

func previewResult(t *testing.T, snap *PlanningSnapshot, input *d.RuleProfileInput) *d.PlanningResult {
	t.Helper()
	engine, _ := setupTestEngine(snap)
	res, err := engine.Preview(context.Background(), snap.Year, snap.Week, input)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	return res
}

func singleUnfilled(t *testing.T, res *d.PlanningResult) d.UnfilledSlot {
	t.Helper()
	if len(res.UnfilledSlots) != 1 {
		t.Fatalf("expected exactly 1 unfilled slot, got %d: %+v", len(res.UnfilledSlots), res.UnfilledSlots)
	}
	return res.UnfilledSlots[0]
}

func hasReason(codes []d.ReasonCode, want d.ReasonCode) bool {
	for _, c := range codes {
		if c == want {
			return true
		}
	}
	return false
}

func hasViolation(res *d.PlanningResult, code d.ReasonCode) bool {
	for _, v := range res.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

/* =======================================================
   Week validation
   ======================================================= */

func TestPreview_RejectsInvalidWeeks(t *testing.T) {
	engine, _ := setupTestEngine(newTestSnapshot())

	cases := []struct{ year, week int }{
		{2026, 0},
		{2026, 54},
		{0, 1},
		{2023, 53}, // 2023 is not a long ISO year
	}
	for _, tc := range cases {
		if _, err := engine.Preview(context.Background(), tc.year, tc.week, nil); err == nil {
			t.Errorf("expected error for %d/%d", tc.year, tc.week)
		}
	}

	// 2026 starts on a Thursday and does have a week 53.
	if _, err := engine.Preview(context.Background(), 2026, 53, relaxedInput()); err != nil {
		t.Errorf("2026/53 is a valid ISO week: %v", err)
	}
}

/* =======================================================
   Scoring & selection
   ======================================================= */

func TestPreview_PriorityAreaOutranksAlphabet(t *testing.T) {
	snap := newTestSnapshot()
	wpID := addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Anna", "Adler")
	empB := addEmployee(snap, "Bernd", "Zimmer")

	input := relaxedInput()
	input.EmployeeRules = []d.EmployeeRuleInput{
		{EmployeeID: empB.String(), PriorityAreaIDs: []string{wpID.String()}},
	}

	res := previewResult(t, snap, input)

	if len(res.Generated) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(res.Generated))
	}
	g := res.Generated[0]
	if g.EmployeeID != empB {
		t.Errorf("the preferred employee must win regardless of name order")
	}
	if g.PriorityScore != 300 || g.Score != 300 {
		t.Errorf("first priority area scores 300, got priority=%d score=%d", g.PriorityScore, g.Score)
	}
}

func TestPreview_PriorityLadder(t *testing.T) {
	snap := newTestSnapshot()
	wp1 := addWorkplace(snap, "Sono 1", 1)
	wp2 := addWorkplace(snap, "Sono 2", 2)
	wp3 := addWorkplace(snap, "Sono 3", 3)
	empID := addEmployee(snap, "Anna", "Adler")

	input := relaxedInput()
	input.EmployeeRules = []d.EmployeeRuleInput{
		{EmployeeID: empID.String(), PriorityAreaIDs: []string{wp1.String(), wp2.String(), wp3.String()}},
	}

	res := previewResult(t, snap, input)

	if len(res.Generated) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(res.Generated))
	}
	wantPriority := map[int]int{1: 300, 2: 200, 3: 100}
	for _, g := range res.Generated {
		if g.PriorityScore != wantPriority[g.Weekday] {
			t.Errorf("weekday %d: priority score %d, want %d", g.Weekday, g.PriorityScore, wantPriority[g.Weekday])
		}
	}
	// Each earlier win costs 15 points on the next day.
	if res.Generated[1].Score != 200-15 || res.Generated[2].Score != 100-30 {
		t.Errorf("load penalty not applied: %d, %d", res.Generated[1].Score, res.Generated[2].Score)
	}
}

func TestPreview_TieBreakByCollatedName(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Bernd", "Baker")
	empA := addEmployee(snap, "Anna", "Anderson")

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 || res.Generated[0].EmployeeID != empA {
		t.Errorf("equal scores resolve by last name: %+v", res.Generated)
	}
}

func TestPreview_TieBreakHandlesUmlauts(t *testing.T) {
	// Byte order would put "Özdemir" after "Peters"; German collation
	// must not.
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Petra", "Peters")
	empO := addEmployee(snap, "Orhan", "Özdemir")

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 || res.Generated[0].EmployeeID != empO {
		t.Errorf("Özdemir sorts before Peters under German collation: %+v", res.Generated)
	}
}

func TestPreview_LoadPenaltySpreadsWork(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1, 2)
	empA := addEmployee(snap, "Anna", "Anderson")
	empB := addEmployee(snap, "Bernd", "Baker")

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(res.Generated))
	}
	if res.Generated[0].EmployeeID != empA {
		t.Error("Monday goes to Anderson on the name tie-break")
	}
	if res.Generated[1].EmployeeID != empB {
		t.Error("Tuesday goes to Baker once Anderson carries the load penalty")
	}
}

/* =======================================================
   Violations & publish gating
   ======================================================= */

func TestPreview_DutyCoverageViolation(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")

	res := previewResult(t, snap, nil)

	if !hasViolation(res, d.ViolationNoDutyPlan) {
		t.Fatal("a week without duty shifts must raise NO_DUTY_PLAN_IN_PERIOD")
	}
	if res.PublishAllowed {
		t.Error("a hard violation must gate publishing")
	}
	if res.Stats.HardConflicts == 0 {
		t.Error("hard conflict count must include the duty violation")
	}

	// A shift on the preceding Sunday belongs to the previous period.
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, -1), false)
	res = previewResult(t, snap, nil)
	if !hasViolation(res, d.ViolationNoDutyPlan) {
		t.Error("the day before Monday does not count as coverage")
	}

	// An overduty shift inside the week does not count either.
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, 3), true)
	res = previewResult(t, snap, nil)
	if !hasViolation(res, d.ViolationNoDutyPlan) {
		t.Error("standby shifts do not count as coverage")
	}

	// A real duty shift inside the week satisfies the check. Thursday
	// also keeps the Monday slot clear of the after-duty rule.
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, 3), false)
	res = previewResult(t, snap, nil)
	if hasViolation(res, d.ViolationNoDutyPlan) {
		t.Error("coverage satisfied, violation must disappear")
	}
	if !res.PublishAllowed {
		t.Errorf("expected a publishable plan: %+v", res)
	}
}

func TestPreview_LowPriorityMatchIsSoft(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Anna", "Adler")

	res := previewResult(t, snap, relaxedInput())

	if !hasViolation(res, d.ViolationLowPriorityMatch) {
		t.Fatal("a floor-score winner must raise LOW_PRIORITY_AREA_MATCH")
	}
	if !res.PublishAllowed {
		t.Error("soft violations must not gate publishing")
	}
	if res.Stats.SoftConflicts != 1 || res.Stats.HardConflicts != 0 {
		t.Errorf("conflict stats off: %+v", res.Stats)
	}
}

func TestPreview_UnfilledSlotGatesPublishing(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	// No employees at all.

	res := previewResult(t, snap, relaxedInput())

	u := singleUnfilled(t, res)
	if !u.BlocksPublish {
		t.Error("an involuntarily unfilled slot blocks publishing")
	}
	if res.PublishAllowed {
		t.Error("publish must be gated")
	}
}

func TestPreview_Idempotent(t *testing.T) {
	snap := newTestSnapshot()
	wp1 := addWorkplace(snap, "Sono 1", 1, 2, 3)
	addWorkplace(snap, "Endoskopie", 2)
	empA := addEmployee(snap, "Anna", "Anderson")
	addEmployee(snap, "Bernd", "Baker")

	input := relaxedInput()
	input.EmployeeRules = []d.EmployeeRuleInput{
		{EmployeeID: empA.String(), PriorityAreaIDs: []string{wp1.String()}},
	}

	engine, store := setupTestEngine(snap)

	first, err := engine.Preview(context.Background(), testYear, testWeek, input)
	if err != nil {
		t.Fatalf("first preview: %v", err)
	}
	second, err := engine.Preview(context.Background(), testYear, testWeek, input)
	if err != nil {
		t.Fatalf("second preview: %v", err)
	}

	if len(store.inserted) != 0 {
		t.Fatal("preview must never persist anything")
	}
	if len(first.Generated) != len(second.Generated) {
		t.Fatalf("preview is not deterministic: %d vs %d", len(first.Generated), len(second.Generated))
	}
	for i := range first.Generated {
		a, b := first.Generated[i], second.Generated[i]
		if a.EmployeeID != b.EmployeeID || a.WorkplaceID != b.WorkplaceID || a.Weekday != b.Weekday || a.Score != b.Score {
			t.Errorf("run %d diverged: %+v vs %+v", i, a, b)
		}
	}
}

/* =======================================================
   Apply
   ======================================================= */

func TestApply_PersistsGeneratedAssignments(t *testing.T) {
	snap := newTestSnapshot()
	wpID := addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")

	engine, store := setupTestEngine(snap)

	resp, err := engine.Apply(context.Background(), testYear, testWeek, relaxedInput())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if resp.AppliedCount != 1 {
		t.Fatalf("expected 1 applied row, got %d", resp.AppliedCount)
	}
	if resp.Plan.Status != m.PlanDraft {
		t.Errorf("a lazily created plan starts in draft, got %s", resp.Plan.Status)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("store should hold 1 row, got %d", len(store.inserted))
	}
	row := store.inserted[0]
	if row.WeeklyPlanAssignmentPlanID != store.plan.WeeklyPlanID {
		t.Error("row must belong to the created plan")
	}
	if row.WeeklyPlanAssignmentKind != m.AssignmentPlan {
		t.Errorf("engine rows carry kind plan, got %s", row.WeeklyPlanAssignmentKind)
	}
	if row.WeeklyPlanAssignmentWorkplaceID != wpID ||
		row.WeeklyPlanAssignmentEmployeeID == nil ||
		*row.WeeklyPlanAssignmentEmployeeID != empID {
		t.Errorf("unexpected row content: %+v", row)
	}
	if row.WeeklyPlanAssignmentScore == nil {
		t.Error("generation score must be persisted")
	}
}

func TestApply_SecondRunInsertsNothing(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1, 2)
	addEmployee(snap, "Anna", "Adler")

	engine, store := setupTestEngine(snap)

	first, err := engine.Apply(context.Background(), testYear, testWeek, relaxedInput())
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if first.AppliedCount != 2 {
		t.Fatalf("expected 2 rows on first apply, got %d", first.AppliedCount)
	}

	second, err := engine.Apply(context.Background(), testYear, testWeek, relaxedInput())
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if second.AppliedCount != 0 {
		t.Errorf("covered slots must not be rewritten, got %d new rows", second.AppliedCount)
	}
	if len(store.inserted) != 2 {
		t.Errorf("store must still hold 2 rows, got %d", len(store.inserted))
	}
}

func TestApply_SkipsManuallyCoveredSlots(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	wp2 := addWorkplace(snap, "Sono 2", 1)
	addEmployee(snap, "Anna", "Adler")
	empB := addEmployee(snap, "Bernd", "Baker")

	wp1 := snap.Workplaces[0].WorkplaceID
	snap.ExistingAssignments = append(snap.ExistingAssignments, assignmentRow(wp1, 1, &empB, false))

	engine, store := setupTestEngine(snap)

	resp, err := engine.Apply(context.Background(), testYear, testWeek, relaxedInput())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if resp.AppliedCount != 1 {
		t.Fatalf("only the free room gets a row, got %d", resp.AppliedCount)
	}
	if store.inserted[0].WeeklyPlanAssignmentWorkplaceID != wp2 {
		t.Error("the manually covered slot must stay untouched")
	}
}

func TestApply_RefusesReleasedPlan(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Anna", "Adler")
	snap.Plan = &m.WeeklyPlanModel{
		WeeklyPlanYear:   testYear,
		WeeklyPlanWeek:   testWeek,
		WeeklyPlanStatus: m.PlanReleased,
	}

	engine, store := setupTestEngine(snap)

	_, err := engine.Apply(context.Background(), testYear, testWeek, relaxedInput())
	if !errors.Is(err, ErrPlanReleased) {
		t.Fatalf("expected ErrPlanReleased, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Error("nothing may be written to a released plan")
	}
}

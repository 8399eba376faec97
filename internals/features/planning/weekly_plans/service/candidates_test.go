// file: internals/features/planning/weekly_plans/service/candidates_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
	absencemodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
	staffmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
	wpmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

func TestPreview_PlannedAbsenceBlocks(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addPlannedAbsence(snap, empID, snap.From, snap.From.AddDate(0, 0, 2), absencemodel.AbsenceApproved)

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 0 {
		t.Fatalf("absent employee must not be assigned, got %+v", res.Generated)
	}
	u := singleUnfilled(t, res)
	if !hasReason(u.CandidatesBlockedBy, d.ReasonAbsenceBlocked) {
		t.Errorf("expected ABSENCE_BLOCKED among %v", u.CandidatesBlockedBy)
	}
}

func TestPreview_RejectedAbsenceDoesNotBlock(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addPlannedAbsence(snap, empID, snap.From, snap.From.AddDate(0, 0, 6), absencemodel.AbsenceRejected)

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 {
		t.Fatalf("rejected absences never block, got %d assignments", len(res.Generated))
	}
}

func TestPreview_RequestedAbsenceStillBlocks(t *testing.T) {
	// A requested, undecided absence already blocks planning.
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addPlannedAbsence(snap, empID, snap.From, snap.From, absencemodel.AbsenceRequested)

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 0 {
		t.Fatal("requested absence must block")
	}
}

func TestPreview_LongTermAbsenceOnlyWhenApproved(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addLongTermAbsence(snap, empID, snap.From.AddDate(0, 0, -30), snap.To.AddDate(0, 0, 30), absencemodel.AbsenceRequested)

	res := previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 1 {
		t.Fatal("an unapproved long-term absence must not block")
	}

	snap.LongTermAbsences[0].LongTermAbsenceStatus = absencemodel.AbsenceApproved

	res = previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 0 {
		t.Fatal("an approved long-term absence must block")
	}
	u := singleUnfilled(t, res)
	if !hasReason(u.CandidatesBlockedBy, d.ReasonLongTermAbsence) {
		t.Errorf("expected LONG_TERM_ABSENCE_BLOCKED among %v", u.CandidatesBlockedBy)
	}
}

func TestPreview_AfterDutyBlocksNextDay(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1, 2)
	empID := addEmployee(snap, "Anna", "Adler")
	// Duty on the Sunday before the plan week blocks Monday only.
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, -1), false)

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 || res.Generated[0].Weekday != 2 {
		t.Fatalf("expected only the Tuesday slot filled, got %+v", res.Generated)
	}
	u := singleUnfilled(t, res)
	if u.Weekday != 1 || !hasReason(u.CandidatesBlockedBy, d.ReasonAfterDutyBlocked) {
		t.Errorf("Monday should be blocked by AFTER_DUTY_BLOCKED: %+v", u)
	}
}

func TestPreview_OverdutyDoesNotBlockNextDay(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, -1), true)

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 {
		t.Fatal("standby duty must not trigger the after-duty rule")
	}
}

func TestPreview_TogglesDisableBlockers(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addPlannedAbsence(snap, empID, snap.From, snap.To, absencemodel.AbsenceApproved)
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, -1), false)

	input := relaxedInput()
	input.BlockAbsence = boolPtr(false)
	input.BlockAfterDuty = boolPtr(false)

	res := previewResult(t, snap, input)

	if len(res.Generated) != 1 {
		t.Fatalf("with both rules off the slot must be filled, got %+v", res.UnfilledSlots)
	}
}

func TestPreview_ForbiddenArea(t *testing.T) {
	snap := newTestSnapshot()
	wpID := addWorkplace(snap, "Endoskopie", 1)
	empID := addEmployee(snap, "Anna", "Adler")

	input := relaxedInput()
	input.EmployeeRules = []d.EmployeeRuleInput{
		{EmployeeID: empID.String(), ForbiddenAreaIDs: []string{wpID.String()}},
	}

	res := previewResult(t, snap, input)

	if len(res.Generated) != 0 {
		t.Fatal("forbidden area must exclude the employee")
	}
	u := singleUnfilled(t, res)
	if !hasReason(u.CandidatesBlockedBy, d.ReasonForbiddenArea) {
		t.Errorf("expected FORBIDDEN_AREA among %v", u.CandidatesBlockedBy)
	}
}

func TestPreview_RoleRestriction(t *testing.T) {
	snap := newTestSnapshot()
	wp := newTestWorkplace("OP Saal")
	wp.WorkplaceRequiredRoles = pq.StringArray{"Facharzt"}
	wp.WorkplaceAlternativeRoles = pq.StringArray{"Assistenzarzt"}
	snap.Workplaces = append(snap.Workplaces, wp)
	addWeekdaySetting(snap, wp.WorkplaceID, 1, wpmodel.RecurWeekly)

	addEmployee(snap, "Nora", "Nolte")
	snap.Employees[0].EmployeeRoleLabel = "MTA"

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 0 {
		t.Fatal("role mismatch must exclude the employee")
	}
	u := singleUnfilled(t, res)
	if !hasReason(u.CandidatesBlockedBy, d.ReasonMissingRequiredRole) {
		t.Errorf("expected MISSING_REQUIRED_ROLE among %v", u.CandidatesBlockedBy)
	}

	// The alternative list counts, and matching ignores case and spacing.
	snap.Employees[0].EmployeeRoleLabel = "  assistenzarzt "

	res = previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 1 {
		t.Fatalf("alternative role should qualify, got %+v", res.UnfilledSlots)
	}
}

func TestPreview_CompetencyAndOr(t *testing.T) {
	snap := newTestSnapshot()
	wpID := addWorkplace(snap, "Sono 1", 1)
	addCompetency(snap, wpID, "Sono Abdomen", wpmodel.RelationAnd)
	addCompetency(snap, wpID, "Notfall", wpmodel.RelationOr)
	addCompetency(snap, wpID, "Intensiv", wpmodel.RelationOr)

	addEmployee(snap, "Anna", "Adler")
	snap.Employees[0].EmployeeCompetencyTags = pq.StringArray{"sono abdomen", "Intensiv"}

	res := previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 1 {
		t.Fatalf("AND held plus one OR held should qualify, got %+v", res.UnfilledSlots)
	}

	// Missing the OR group entirely disqualifies.
	snap.Employees[0].EmployeeCompetencyTags = pq.StringArray{"Sono Abdomen"}

	res = previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 0 {
		t.Fatal("no OR competency held must disqualify")
	}
	u := singleUnfilled(t, res)
	if !hasReason(u.CandidatesBlockedBy, d.ReasonMissingRequiredSkill) {
		t.Errorf("expected MISSING_REQUIRED_SKILL among %v", u.CandidatesBlockedBy)
	}

	// Missing an AND competency disqualifies even with the OR group held.
	snap.Employees[0].EmployeeCompetencyTags = pq.StringArray{"Notfall", "Intensiv"}

	res = previewResult(t, snap, relaxedInput())
	if len(res.Generated) != 0 {
		t.Fatal("missing AND competency must disqualify")
	}
}

func TestPreview_InactivityWindow(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1, 3)
	addEmployee(snap, "Anna", "Adler")
	from := snap.From
	until := snap.From.AddDate(0, 0, 1)
	snap.Employees[0].EmployeeInactiveFrom = &from
	snap.Employees[0].EmployeeInactiveUntil = &until

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 || res.Generated[0].Weekday != 3 {
		t.Fatalf("only the Wednesday slot lies outside the window, got %+v", res.Generated)
	}
	u := singleUnfilled(t, res)
	if u.Weekday != 1 || !hasReason(u.CandidatesBlockedBy, d.ReasonEmployeeInactive) {
		t.Errorf("Monday should be blocked by EMPLOYEE_INACTIVE: %+v", u)
	}
}

func TestPreview_ClericalStaffNeverCandidates(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addEmployee(snap, "Sabine", "Schreiber")
	snap.Employees[0].EmployeeRoleCategory = staffmodel.RoleClerical

	res := previewResult(t, snap, relaxedInput())

	u := singleUnfilled(t, res)
	if len(u.CandidatesBlockedBy) != 0 {
		t.Errorf("clerical staff are not evaluated, blocked-by must be empty: %v", u.CandidatesBlockedBy)
	}
	if !hasReason(u.Reasons, d.ReasonNoEligibleCandidate) {
		t.Errorf("expected NO_ELIGIBLE_CANDIDATE, got %v", u.Reasons)
	}
}

func TestPreview_ExclusionReasonsAccumulate(t *testing.T) {
	snap := newTestSnapshot()
	wpID := addWorkplace(snap, "Endoskopie", 1)
	empID := addEmployee(snap, "Anna", "Adler")
	addPlannedAbsence(snap, empID, snap.From, snap.From, absencemodel.AbsenceApproved)
	addDutyShift(snap, empID, snap.From.AddDate(0, 0, -1), false)

	input := relaxedInput()
	input.EmployeeRules = []d.EmployeeRuleInput{
		{EmployeeID: empID.String(), ForbiddenAreaIDs: []string{wpID.String()}},
	}

	res := previewResult(t, snap, input)

	u := singleUnfilled(t, res)
	for _, want := range []d.ReasonCode{d.ReasonForbiddenArea, d.ReasonAbsenceBlocked, d.ReasonAfterDutyBlocked} {
		if !hasReason(u.CandidatesBlockedBy, want) {
			t.Errorf("expected %s among %v", want, u.CandidatesBlockedBy)
		}
	}
}

func TestPreview_NoDoubleBookingPerDay(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	addWorkplace(snap, "Sono 2", 1)
	addEmployee(snap, "Anna", "Adler")

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 1 {
		t.Fatalf("one employee cannot cover two rooms on one day, got %d", len(res.Generated))
	}
	if res.Generated[0].WorkplaceName != "Sono 1" {
		t.Errorf("first slot in order should win: %s", res.Generated[0].WorkplaceName)
	}
	u := singleUnfilled(t, res)
	if u.WorkplaceName != "Sono 2" || !hasReason(u.CandidatesBlockedBy, d.ReasonAlreadyAssignedSameDay) {
		t.Errorf("second room should report ALREADY_ASSIGNED_SAME_TIME: %+v", u)
	}
}

func TestPreview_ExistingAssignmentOccupiesDay(t *testing.T) {
	snap := newTestSnapshot()
	addWorkplace(snap, "Sono 1", 1)
	wp2 := addWorkplace(snap, "Sono 2", 1)
	empID := addEmployee(snap, "Anna", "Adler")

	// A manual assignment placed earlier keeps the employee busy.
	wp1 := snap.Workplaces[0].WorkplaceID
	snap.ExistingAssignments = append(snap.ExistingAssignments, assignmentRow(wp1, 1, &empID, false))

	res := previewResult(t, snap, relaxedInput())

	if len(res.Generated) != 0 {
		t.Fatalf("the day is already taken, got %+v", res.Generated)
	}
	u := singleUnfilled(t, res)
	if u.WorkplaceID != wp2 || !hasReason(u.CandidatesBlockedBy, d.ReasonAlreadyAssignedSameDay) {
		t.Errorf("expected ALREADY_ASSIGNED_SAME_TIME on the free room: %+v", u)
	}
	if res.Stats.ExistingAssignments != 1 {
		t.Errorf("existing assignment count: got %d", res.Stats.ExistingAssignments)
	}
}

func assignmentRow(workplaceID uuid.UUID, weekday int, employeeID *uuid.UUID, blocked bool) m.WeeklyPlanAssignmentModel {
	return m.WeeklyPlanAssignmentModel{
		WeeklyPlanAssignmentID:          uuid.New(),
		WeeklyPlanAssignmentWeekday:     weekday,
		WeeklyPlanAssignmentWorkplaceID: workplaceID,
		WeeklyPlanAssignmentEmployeeID:  employeeID,
		WeeklyPlanAssignmentBlocked:     blocked,
	}
}

// file: internals/features/planning/weekly_plans/service/candidates.go
package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	absencemodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
	staffmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
	wpmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

/* =======================================================
   Candidate Evaluator

   Every active non-clerical employee is evaluated against
   every open slot. Exclusion reasons accumulate; the
   diagnostics must name every blocker, not just the first.
   ======================================================= */

const (
	priorityFirst  = 300
	prioritySecond = 200
	priorityThird  = 100
	priorityFloor  = 10

	// Load-balancing penalty per assignment already held this week.
	loadPenalty = 15
)

type candidate struct {
	Employee      *staffmodel.EmployeeModel
	Reasons       []d.ReasonCode
	PriorityScore int
	Score         int
}

func (c *candidate) eligible() bool {
	return len(c.Reasons) == 0
}

// runContext carries the per-run lookup tables and the cumulative
// assignment state that makes the same-day rule transitive across the run.
type runContext struct {
	snap    *PlanningSnapshot
	profile d.RuleProfile

	plannedByEmployee  map[uuid.UUID][]absencemodel.PlannedAbsenceModel
	longTermByEmployee map[uuid.UUID][]absencemodel.LongTermAbsenceModel

	// date (YYYY-MM-DD) -> employees with a non-overduty duty shift
	dutyByDate map[string]map[uuid.UUID]bool

	assignedCount map[uuid.UUID]int
	dayOccupied   map[string]bool // employeeID|weekday
}

func newRunContext(snap *PlanningSnapshot, profile d.RuleProfile) *runContext {
	rc := &runContext{
		snap:               snap,
		profile:            profile,
		plannedByEmployee:  map[uuid.UUID][]absencemodel.PlannedAbsenceModel{},
		longTermByEmployee: map[uuid.UUID][]absencemodel.LongTermAbsenceModel{},
		dutyByDate:         map[string]map[uuid.UUID]bool{},
		assignedCount:      map[uuid.UUID]int{},
		dayOccupied:        map[string]bool{},
	}

	for _, a := range snap.PlannedAbsences {
		rc.plannedByEmployee[a.PlannedAbsenceEmployeeID] = append(rc.plannedByEmployee[a.PlannedAbsenceEmployeeID], a)
	}
	for _, a := range snap.LongTermAbsences {
		rc.longTermByEmployee[a.LongTermAbsenceEmployeeID] = append(rc.longTermByEmployee[a.LongTermAbsenceEmployeeID], a)
	}
	for _, sh := range snap.RosterShifts {
		if sh.RosterShiftIsOverduty {
			continue
		}
		key := d.DateString(sh.RosterShiftDate)
		if rc.dutyByDate[key] == nil {
			rc.dutyByDate[key] = map[uuid.UUID]bool{}
		}
		rc.dutyByDate[key][sh.RosterShiftEmployeeID] = true
	}

	// Pre-existing assignments count toward the load penalty and occupy
	// their weekday.
	for i := range snap.ExistingAssignments {
		a := &snap.ExistingAssignments[i]
		if !a.HoldsEmployee() {
			continue
		}
		empID := *a.WeeklyPlanAssignmentEmployeeID
		rc.assignedCount[empID]++
		rc.dayOccupied[dayKey(empID, a.WeeklyPlanAssignmentWeekday)] = true
	}

	return rc
}

func dayKey(employeeID uuid.UUID, weekday int) string {
	return employeeID.String() + "|" + strconv.Itoa(weekday)
}

// recordWin books a generated assignment into the run state.
func (rc *runContext) recordWin(employeeID uuid.UUID, weekday int) {
	rc.assignedCount[employeeID]++
	rc.dayOccupied[dayKey(employeeID, weekday)] = true
}

// evaluateCandidates returns the slot's candidate list. Clerical and
// deactivated staff are not candidates at all; everyone else comes back
// with either an empty reason list and a score, or the full set of
// exclusion reasons.
func (rc *runContext) evaluateCandidates(slot openSlot) []candidate {
	out := make([]candidate, 0, len(rc.snap.Employees))

	for i := range rc.snap.Employees {
		emp := &rc.snap.Employees[i]
		if !emp.EmployeeIsActive || emp.EmployeeRoleCategory == staffmodel.RoleClerical {
			continue
		}

		c := candidate{Employee: emp}

		rule := rc.profile.RuleFor(emp.EmployeeID)
		if rule != nil && containsID(rule.ForbiddenAreaIDs, slot.Workplace.WorkplaceID) {
			c.Reasons = append(c.Reasons, d.ReasonForbiddenArea)
		}
		if rc.dayOccupied[dayKey(emp.EmployeeID, slot.Weekday)] {
			c.Reasons = append(c.Reasons, d.ReasonAlreadyAssignedSameDay)
		}
		if rc.profile.BlockAbsence && rc.plannedAbsent(emp.EmployeeID, slot.Date) {
			c.Reasons = append(c.Reasons, d.ReasonAbsenceBlocked)
		}
		if rc.profile.BlockLongTermAbsence && rc.longTermAbsent(emp.EmployeeID, slot.Date) {
			c.Reasons = append(c.Reasons, d.ReasonLongTermAbsence)
		}
		if rc.profile.BlockAfterDuty && rc.workedDutyOn(emp.EmployeeID, slot.Date.AddDate(0, 0, -1)) {
			c.Reasons = append(c.Reasons, d.ReasonAfterDutyBlocked)
		}
		if !roleSatisfies(emp, slot.Workplace) {
			c.Reasons = append(c.Reasons, d.ReasonMissingRequiredRole)
		}
		if !skillsSatisfy(emp, rc.snap.Competencies[slot.Workplace.WorkplaceID]) {
			c.Reasons = append(c.Reasons, d.ReasonMissingRequiredSkill)
		}
		if emp.InactiveOn(slot.Date) {
			c.Reasons = append(c.Reasons, d.ReasonEmployeeInactive)
		}

		if c.eligible() {
			c.PriorityScore = priorityScoreFor(rule, slot.Workplace.WorkplaceID)
			c.Score = c.PriorityScore - rc.assignedCount[emp.EmployeeID]*loadPenalty
		}

		out = append(out, c)
	}

	return out
}

func (rc *runContext) plannedAbsent(employeeID uuid.UUID, date time.Time) bool {
	for i := range rc.plannedByEmployee[employeeID] {
		if rc.plannedByEmployee[employeeID][i].Blocks(date) {
			return true
		}
	}
	return false
}

func (rc *runContext) longTermAbsent(employeeID uuid.UUID, date time.Time) bool {
	for i := range rc.longTermByEmployee[employeeID] {
		if rc.longTermByEmployee[employeeID][i].Blocks(date) {
			return true
		}
	}
	return false
}

func (rc *runContext) workedDutyOn(employeeID uuid.UUID, date time.Time) bool {
	return rc.dutyByDate[d.DateString(date)][employeeID]
}

func priorityScoreFor(rule *d.EmployeeRule, workplaceID uuid.UUID) int {
	if rule == nil {
		return priorityFloor
	}
	for idx, id := range rule.PriorityAreaIDs {
		if id != workplaceID {
			continue
		}
		switch idx {
		case 0:
			return priorityFirst
		case 1:
			return prioritySecond
		case 2:
			return priorityThird
		}
	}
	return priorityFloor
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// roleSatisfies checks the coarse role-label rule: the employee's
// normalized label must appear among the workplace's required or
// alternative labels. No labels configured means no restriction.
func roleSatisfies(emp *staffmodel.EmployeeModel, wp *wpmodel.WorkplaceModel) bool {
	if len(wp.WorkplaceRequiredRoles) == 0 && len(wp.WorkplaceAlternativeRoles) == 0 {
		return true
	}
	label := normalizeLabel(emp.EmployeeRoleLabel)
	for _, r := range wp.WorkplaceRequiredRoles {
		if normalizeLabel(r) == label {
			return true
		}
	}
	for _, r := range wp.WorkplaceAlternativeRoles {
		if normalizeLabel(r) == label {
			return true
		}
	}
	return false
}

// skillsSatisfy enforces the competency rule: every AND entry must be held
// and, if an OR group exists, at least one of it.
func skillsSatisfy(emp *staffmodel.EmployeeModel, comps []wpmodel.RequiredCompetencyModel) bool {
	if len(comps) == 0 {
		return true
	}

	held := map[string]bool{}
	for _, tag := range emp.EmployeeCompetencyTags {
		held[normalizeLabel(tag)] = true
	}

	orSeen := false
	orMatched := false
	for i := range comps {
		name := normalizeLabel(comps[i].RequiredCompetencyName)
		switch comps[i].RequiredCompetencyRelation {
		case wpmodel.RelationAnd:
			if !held[name] {
				return false
			}
		case wpmodel.RelationOr:
			orSeen = true
			if held[name] {
				orMatched = true
			}
		}
	}
	if orSeen && !orMatched {
		return false
	}
	return true
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

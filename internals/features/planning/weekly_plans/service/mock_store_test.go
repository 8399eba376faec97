// file: internals/features/planning/weekly_plans/service/mock_store_test.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
	absencemodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
	staffmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
	rostermodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/model"
	wpmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

/* =======================================================
   mockPlanStore: in-memory PlanStore for engine tests
   ======================================================= */

type mockPlanStore struct {
	snap     *PlanningSnapshot
	plan     *m.WeeklyPlanModel
	inserted []m.WeeklyPlanAssignmentModel
}

func newMockPlanStore(snap *PlanningSnapshot) *mockPlanStore {
	return &mockPlanStore{snap: snap, plan: snap.Plan}
}

func (s *mockPlanStore) LoadSnapshot(_ context.Context, _, _ int) (*PlanningSnapshot, error) {
	return s.snap, nil
}

func (s *mockPlanStore) GetOrCreatePlan(_ context.Context, year, week int) (*m.WeeklyPlanModel, error) {
	if s.plan == nil {
		s.plan = &m.WeeklyPlanModel{
			WeeklyPlanID:     uuid.New(),
			WeeklyPlanYear:   year,
			WeeklyPlanWeek:   week,
			WeeklyPlanStatus: m.PlanDraft,
		}
		s.snap.Plan = s.plan
	}
	return s.plan, nil
}

func (s *mockPlanStore) InsertAssignments(_ context.Context, rows []m.WeeklyPlanAssignmentModel) error {
	for i := range rows {
		if rows[i].WeeklyPlanAssignmentID == uuid.Nil {
			rows[i].WeeklyPlanAssignmentID = uuid.New()
		}
	}
	s.inserted = append(s.inserted, rows...)
	s.snap.ExistingAssignments = append(s.snap.ExistingAssignments, rows...)
	return nil
}

/* =======================================================
   Snapshot fixtures

   Test week is 2026/10: Monday 2026-03-02, the first
   Monday of March, so first_of_month recurrences match.
   ======================================================= */

const (
	testYear = 2026
	testWeek = 10
)

func newTestSnapshot() *PlanningSnapshot {
	from := helper.ISOWeekStart(testYear, testWeek)
	return &PlanningSnapshot{
		Year:            testYear,
		Week:            testWeek,
		From:            from,
		To:              from.AddDate(0, 0, 6),
		WeekdaySettings: map[uuid.UUID][]wpmodel.WeekdaySettingModel{},
		Competencies:    map[uuid.UUID][]wpmodel.RequiredCompetencyModel{},
	}
}

func newTestWorkplace(name string) wpmodel.WorkplaceModel {
	return wpmodel.WorkplaceModel{
		WorkplaceID:           uuid.New(),
		WorkplaceName:         name,
		WorkplaceInWeeklyPlan: true,
		WorkplaceIsActive:     true,
	}
}

// addWorkplace registers the workplace with weekly settings on the given
// weekdays and returns its id.
func addWorkplace(snap *PlanningSnapshot, name string, weekdays ...int) uuid.UUID {
	wp := newTestWorkplace(name)
	snap.Workplaces = append(snap.Workplaces, wp)
	for _, wd := range weekdays {
		addWeekdaySetting(snap, wp.WorkplaceID, wd, wpmodel.RecurWeekly)
	}
	return wp.WorkplaceID
}

func addWeekdaySetting(snap *PlanningSnapshot, workplaceID uuid.UUID, weekday int, recur wpmodel.Recurrence) *wpmodel.WeekdaySettingModel {
	st := wpmodel.WeekdaySettingModel{
		WeekdaySettingID:          uuid.New(),
		WeekdaySettingWorkplaceID: workplaceID,
		WeekdaySettingWeekday:     weekday,
		WeekdaySettingRecurrence:  recur,
	}
	snap.WeekdaySettings[workplaceID] = append(snap.WeekdaySettings[workplaceID], st)
	settings := snap.WeekdaySettings[workplaceID]
	return &settings[len(settings)-1]
}

func newTestEmployee(first, last string) staffmodel.EmployeeModel {
	return staffmodel.EmployeeModel{
		EmployeeID:           uuid.New(),
		EmployeeFirstName:    first,
		EmployeeLastName:     last,
		EmployeeRoleLabel:    "Assistenzarzt",
		EmployeeRoleCategory: staffmodel.RoleMedical,
		EmployeeIsActive:     true,
	}
}

func addEmployee(snap *PlanningSnapshot, first, last string) uuid.UUID {
	emp := newTestEmployee(first, last)
	snap.Employees = append(snap.Employees, emp)
	return emp.EmployeeID
}

func addDutyShift(snap *PlanningSnapshot, employeeID uuid.UUID, date time.Time, overduty bool) {
	snap.RosterShifts = append(snap.RosterShifts, rostermodel.RosterShiftModel{
		RosterShiftID:         uuid.New(),
		RosterShiftEmployeeID: employeeID,
		RosterShiftDate:       date,
		RosterShiftLabel:      "D1",
		RosterShiftIsOverduty: overduty,
	})
}

func addPlannedAbsence(snap *PlanningSnapshot, employeeID uuid.UUID, from, until time.Time, status absencemodel.AbsenceStatus) {
	snap.PlannedAbsences = append(snap.PlannedAbsences, absencemodel.PlannedAbsenceModel{
		PlannedAbsenceID:         uuid.New(),
		PlannedAbsenceEmployeeID: employeeID,
		PlannedAbsenceFrom:       from,
		PlannedAbsenceUntil:      until,
		PlannedAbsenceStatus:     status,
	})
}

func addLongTermAbsence(snap *PlanningSnapshot, employeeID uuid.UUID, from, until time.Time, status absencemodel.AbsenceStatus) {
	snap.LongTermAbsences = append(snap.LongTermAbsences, absencemodel.LongTermAbsenceModel{
		LongTermAbsenceID:         uuid.New(),
		LongTermAbsenceEmployeeID: employeeID,
		LongTermAbsenceFrom:       from,
		LongTermAbsenceUntil:      until,
		LongTermAbsenceStatus:     status,
	})
}

func addCompetency(snap *PlanningSnapshot, workplaceID uuid.UUID, name string, relation wpmodel.CompetencyRelation) {
	snap.Competencies[workplaceID] = append(snap.Competencies[workplaceID], wpmodel.RequiredCompetencyModel{
		RequiredCompetencyID:          uuid.New(),
		RequiredCompetencyWorkplaceID: workplaceID,
		RequiredCompetencyName:        name,
		RequiredCompetencyRelation:    relation,
	})
}

/* =======================================================
   Profile input shortcuts
   ======================================================= */

func boolPtr(v bool) *bool { return &v }

// relaxedInput keeps every blocking rule on but drops the duty-coverage
// requirement, so fixtures without roster data stay publishable.
func relaxedInput() *d.RuleProfileInput {
	return &d.RuleProfileInput{RequireDutyCoverage: boolPtr(false)}
}

func setupTestEngine(snap *PlanningSnapshot) (*PlanningEngine, *mockPlanStore) {
	store := newMockPlanStore(snap)
	return NewPlanningEngine(store), store
}

// file: internals/features/planning/weekly_plans/service/snapshot.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	profilemodel "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/model"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
	absencemodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/absences/model"
	staffmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/employees/model"
	rostermodel "github.com/hinterbergers/mycliniq-sub002/internals/features/staff/roster/model"
	wpmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

/* =======================================================
   PlanningSnapshot: the full read-only input of one run.
   Loaded in one batch; the engine computes over it purely
   in memory.
   ======================================================= */

type PlanningSnapshot struct {
	Year int
	Week int
	From time.Time // Monday
	To   time.Time // Sunday

	Plan *m.WeeklyPlanModel // nil until the week is first persisted

	Workplaces      []wpmodel.WorkplaceModel
	WeekdaySettings map[uuid.UUID][]wpmodel.WeekdaySettingModel
	Competencies    map[uuid.UUID][]wpmodel.RequiredCompetencyModel

	Employees        []staffmodel.EmployeeModel
	PlannedAbsences  []absencemodel.PlannedAbsenceModel
	LongTermAbsences []absencemodel.LongTermAbsenceModel

	// Shifts for the week plus the day before Monday (after-duty rule).
	RosterShifts []rostermodel.RosterShiftModel

	ExistingAssignments []m.WeeklyPlanAssignmentModel

	// Raw stored default profile document, may be empty.
	DefaultProfile []byte
}

/* =======================================================
   PlanStore: persistence boundary of the engine
   ======================================================= */

var ErrPlanReleased = errors.New("weekly plan is released; revert it to draft before generating")

type PlanStore interface {
	LoadSnapshot(ctx context.Context, year, week int) (*PlanningSnapshot, error)
	GetOrCreatePlan(ctx context.Context, year, week int) (*m.WeeklyPlanModel, error)

	// InsertAssignments writes the batch in one transaction; either every
	// row lands or none does.
	InsertAssignments(ctx context.Context, rows []m.WeeklyPlanAssignmentModel) error
}

/* =======================================================
   GORM implementation
   ======================================================= */

type GormPlanStore struct {
	DB *gorm.DB
}

func NewGormPlanStore(db *gorm.DB) *GormPlanStore {
	return &GormPlanStore{DB: db}
}

func (s *GormPlanStore) LoadSnapshot(ctx context.Context, year, week int) (*PlanningSnapshot, error) {
	from := helper.ISOWeekStart(year, week)
	to := from.AddDate(0, 0, 6)

	snap := &PlanningSnapshot{
		Year:            year,
		Week:            week,
		From:            from,
		To:              to,
		WeekdaySettings: map[uuid.UUID][]wpmodel.WeekdaySettingModel{},
		Competencies:    map[uuid.UUID][]wpmodel.RequiredCompetencyModel{},
	}

	db := s.DB.WithContext(ctx)

	var plan m.WeeklyPlanModel
	err := db.Where("weekly_plan_year = ? AND weekly_plan_week = ?", year, week).First(&plan).Error
	switch {
	case err == nil:
		snap.Plan = &plan
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first access; plan is created lazily on apply
	default:
		return nil, err
	}

	if err := db.
		Where("workplace_is_active = TRUE AND workplace_in_weekly_plan = TRUE").
		Order("workplace_name ASC").
		Find(&snap.Workplaces).Error; err != nil {
		return nil, err
	}

	workplaceIDs := make([]uuid.UUID, 0, len(snap.Workplaces))
	for _, w := range snap.Workplaces {
		workplaceIDs = append(workplaceIDs, w.WorkplaceID)
	}

	if len(workplaceIDs) > 0 {
		var settings []wpmodel.WeekdaySettingModel
		if err := db.Where("weekday_setting_workplace_id IN ?", workplaceIDs).Find(&settings).Error; err != nil {
			return nil, err
		}
		for _, st := range settings {
			snap.WeekdaySettings[st.WeekdaySettingWorkplaceID] = append(snap.WeekdaySettings[st.WeekdaySettingWorkplaceID], st)
		}

		var comps []wpmodel.RequiredCompetencyModel
		if err := db.Where("required_competency_workplace_id IN ?", workplaceIDs).Find(&comps).Error; err != nil {
			return nil, err
		}
		for _, cp := range comps {
			snap.Competencies[cp.RequiredCompetencyWorkplaceID] = append(snap.Competencies[cp.RequiredCompetencyWorkplaceID], cp)
		}
	}

	if err := db.
		Where("employee_is_active = TRUE").
		Order("employee_last_name ASC, employee_first_name ASC").
		Find(&snap.Employees).Error; err != nil {
		return nil, err
	}

	if err := db.
		Where("planned_absence_until >= ? AND planned_absence_from <= ?", from, to).
		Find(&snap.PlannedAbsences).Error; err != nil {
		return nil, err
	}
	if err := db.
		Where("long_term_absence_until >= ? AND long_term_absence_from <= ?", from, to).
		Find(&snap.LongTermAbsences).Error; err != nil {
		return nil, err
	}

	// Day before Monday included for the after-duty rule.
	if err := db.
		Where("roster_shift_date >= ? AND roster_shift_date <= ?", from.AddDate(0, 0, -1), to).
		Find(&snap.RosterShifts).Error; err != nil {
		return nil, err
	}

	if snap.Plan != nil {
		if err := db.
			Where("weekly_plan_assignment_plan_id = ?", snap.Plan.WeeklyPlanID).
			Find(&snap.ExistingAssignments).Error; err != nil {
			return nil, err
		}
	}

	var stored profilemodel.PlannerProfileModel
	err = db.Where("planner_profile_name = ?", profilemodel.DefaultProfileName).First(&stored).Error
	switch {
	case err == nil:
		snap.DefaultProfile = stored.PlannerProfileRules
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}

	return snap, nil
}

func (s *GormPlanStore) GetOrCreatePlan(ctx context.Context, year, week int) (*m.WeeklyPlanModel, error) {
	db := s.DB.WithContext(ctx)

	var plan m.WeeklyPlanModel
	err := db.Where("weekly_plan_year = ? AND weekly_plan_week = ?", year, week).First(&plan).Error
	if err == nil {
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan = m.WeeklyPlanModel{
		WeeklyPlanYear:   year,
		WeeklyPlanWeek:   week,
		WeeklyPlanStatus: m.PlanDraft,
	}
	if err := db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *GormPlanStore) InsertAssignments(ctx context.Context, rows []m.WeeklyPlanAssignmentModel) error {
	if len(rows) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

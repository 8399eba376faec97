// file: internals/features/planning/weekly_plans/model/weekly_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   Plan lifecycle status
   ======================================================= */

type WeeklyPlanStatus string

const (
	PlanDraft    WeeklyPlanStatus = "draft"
	PlanPreview  WeeklyPlanStatus = "preview"
	PlanReleased WeeklyPlanStatus = "released"
)

func (s WeeklyPlanStatus) Valid() bool {
	switch s {
	case PlanDraft, PlanPreview, PlanReleased:
		return true
	}
	return false
}

/* =======================================================
   WeeklyPlanModel: one plan per (year, ISO week).
   Created on first access, never implicitly deleted.
   ======================================================= */

type WeeklyPlanModel struct {
	WeeklyPlanID uuid.UUID `json:"weekly_plan_id" gorm:"type:uuid;primaryKey;column:weekly_plan_id;default:gen_random_uuid()"`

	WeeklyPlanYear int `json:"weekly_plan_year" gorm:"type:int;not null;column:weekly_plan_year;uniqueIndex:uq_weekly_plans_year_week"`
	WeeklyPlanWeek int `json:"weekly_plan_week" gorm:"type:int;not null;column:weekly_plan_week;uniqueIndex:uq_weekly_plans_year_week"`

	WeeklyPlanStatus WeeklyPlanStatus `json:"weekly_plan_status" gorm:"type:text;not null;default:'draft';column:weekly_plan_status"`

	// Weekday numbers (1..7) the owner has locked against automatic
	// generation. The engine skips these days wholesale.
	WeeklyPlanLockedWeekdays pq.Int64Array `json:"weekly_plan_locked_weekdays" gorm:"type:int8[];column:weekly_plan_locked_weekdays"`

	WeeklyPlanCreatedAt time.Time      `json:"weekly_plan_created_at" gorm:"column:weekly_plan_created_at;not null;autoCreateTime"`
	WeeklyPlanUpdatedAt time.Time      `json:"weekly_plan_updated_at" gorm:"column:weekly_plan_updated_at;not null;autoUpdateTime"`
	WeeklyPlanDeletedAt gorm.DeletedAt `json:"weekly_plan_deleted_at" gorm:"column:weekly_plan_deleted_at;index"`
}

func (WeeklyPlanModel) TableName() string {
	return "weekly_plans"
}

func (p *WeeklyPlanModel) WeekdayLocked(weekday int) bool {
	for _, d := range p.WeeklyPlanLockedWeekdays {
		if int(d) == weekday {
			return true
		}
	}
	return false
}

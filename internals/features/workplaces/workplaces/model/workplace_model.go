// file: internals/features/workplaces/workplaces/model/workplace_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   WorkplaceModel: a bookable unit of work (room, desk,
   duty line). Maps to table workplaces.
   ======================================================= */

type WorkplaceModel struct {
	WorkplaceID uuid.UUID `json:"workplace_id" gorm:"type:uuid;primaryKey;column:workplace_id;default:gen_random_uuid()"`

	WorkplaceName string `json:"workplace_name" gorm:"type:text;not null;column:workplace_name"`

	// Only active workplaces flagged for the weekly plan get slots.
	WorkplaceInWeeklyPlan bool `json:"workplace_in_weekly_plan" gorm:"type:boolean;not null;default:true;column:workplace_in_weekly_plan"`
	WorkplaceIsActive     bool `json:"workplace_is_active" gorm:"type:boolean;not null;default:true;column:workplace_is_active"`

	// Coarse role eligibility: the candidate's role label must appear in
	// the required list, or failing that in the alternative list. Both
	// lists empty means no role restriction.
	WorkplaceRequiredRoles    pq.StringArray `json:"workplace_required_roles" gorm:"type:text[];column:workplace_required_roles"`
	WorkplaceAlternativeRoles pq.StringArray `json:"workplace_alternative_roles" gorm:"type:text[];column:workplace_alternative_roles"`

	WorkplaceCreatedAt time.Time      `json:"workplace_created_at" gorm:"column:workplace_created_at;not null;autoCreateTime"`
	WorkplaceUpdatedAt time.Time      `json:"workplace_updated_at" gorm:"column:workplace_updated_at;not null;autoUpdateTime"`
	WorkplaceDeletedAt gorm.DeletedAt `json:"workplace_deleted_at" gorm:"column:workplace_deleted_at;index"`
}

func (WorkplaceModel) TableName() string {
	return "workplaces"
}

/* =======================================================
   Weekday settings: per-workplace, per-weekday operating
   rules with a recurrence pattern.
   ======================================================= */

type Recurrence string

const (
	RecurWeekly        Recurrence = "weekly"
	RecurFirstAndThird Recurrence = "first_and_third"
	RecurFirstOfMonth  Recurrence = "first_of_month"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurWeekly, RecurFirstAndThird, RecurFirstOfMonth:
		return true
	}
	return false
}

// MatchesOccurrence reports whether the recurrence covers the Nth
// occurrence of the weekday within its month.
func (r Recurrence) MatchesOccurrence(n int) bool {
	switch r {
	case RecurWeekly:
		return true
	case RecurFirstAndThird:
		return n == 1 || n == 3
	case RecurFirstOfMonth:
		return n == 1
	}
	return false
}

type WeekdaySettingModel struct {
	WeekdaySettingID uuid.UUID `json:"weekday_setting_id" gorm:"type:uuid;primaryKey;column:weekday_setting_id;default:gen_random_uuid()"`

	WeekdaySettingWorkplaceID uuid.UUID `json:"weekday_setting_workplace_id" gorm:"type:uuid;not null;column:weekday_setting_workplace_id;index"`

	WeekdaySettingWeekday    int        `json:"weekday_setting_weekday" gorm:"type:int;not null;column:weekday_setting_weekday"` // 1..7, Monday first
	WeekdaySettingRecurrence Recurrence `json:"weekday_setting_recurrence" gorm:"type:text;not null;default:'weekly';column:weekday_setting_recurrence"`

	WeekdaySettingIsClosed     bool    `json:"weekday_setting_is_closed" gorm:"type:boolean;not null;default:false;column:weekday_setting_is_closed"`
	WeekdaySettingClosedReason *string `json:"weekday_setting_closed_reason,omitempty" gorm:"type:text;column:weekday_setting_closed_reason"`

	WeekdaySettingUsageLabel *string `json:"weekday_setting_usage_label,omitempty" gorm:"type:text;column:weekday_setting_usage_label"`

	WeekdaySettingStartTime *time.Time `json:"weekday_setting_start_time,omitempty" gorm:"type:time;column:weekday_setting_start_time"`
	WeekdaySettingEndTime   *time.Time `json:"weekday_setting_end_time,omitempty" gorm:"type:time;column:weekday_setting_end_time"`

	WeekdaySettingCreatedAt time.Time      `json:"weekday_setting_created_at" gorm:"column:weekday_setting_created_at;not null;autoCreateTime"`
	WeekdaySettingUpdatedAt time.Time      `json:"weekday_setting_updated_at" gorm:"column:weekday_setting_updated_at;not null;autoUpdateTime"`
	WeekdaySettingDeletedAt gorm.DeletedAt `json:"weekday_setting_deleted_at" gorm:"column:weekday_setting_deleted_at;index"`
}

func (WeekdaySettingModel) TableName() string {
	return "workplace_weekday_settings"
}

/* =======================================================
   Required competencies: (competency, relation) pairs.
   AND entries must all be held; of the OR group at least
   one must be held.
   ======================================================= */

type CompetencyRelation string

const (
	RelationAnd CompetencyRelation = "AND"
	RelationOr  CompetencyRelation = "OR"
)

type RequiredCompetencyModel struct {
	RequiredCompetencyID uuid.UUID `json:"required_competency_id" gorm:"type:uuid;primaryKey;column:required_competency_id;default:gen_random_uuid()"`

	RequiredCompetencyWorkplaceID uuid.UUID `json:"required_competency_workplace_id" gorm:"type:uuid;not null;column:required_competency_workplace_id;index"`

	RequiredCompetencyName     string             `json:"required_competency_name" gorm:"type:text;not null;column:required_competency_name"`
	RequiredCompetencyRelation CompetencyRelation `json:"required_competency_relation" gorm:"type:text;not null;default:'AND';column:required_competency_relation"`

	RequiredCompetencyCreatedAt time.Time      `json:"required_competency_created_at" gorm:"column:required_competency_created_at;not null;autoCreateTime"`
	RequiredCompetencyUpdatedAt time.Time      `json:"required_competency_updated_at" gorm:"column:required_competency_updated_at;not null;autoUpdateTime"`
	RequiredCompetencyDeletedAt gorm.DeletedAt `json:"required_competency_deleted_at" gorm:"column:required_competency_deleted_at;index"`
}

func (RequiredCompetencyModel) TableName() string {
	return "workplace_required_competencies"
}

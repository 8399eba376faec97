// file: internals/features/planning/profiles/model/planner_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlannerProfileModel stores a named planner rule profile as a JSONB
// document: the global hard-rule toggles plus the per-employee priority and
// forbidden area lists. The profile named "default" is what the engine falls
// back to when a run supplies no profile of its own.
type PlannerProfileModel struct {
	PlannerProfileID uuid.UUID `json:"planner_profile_id" gorm:"type:uuid;primaryKey;column:planner_profile_id;default:gen_random_uuid()"`

	PlannerProfileName string `json:"planner_profile_name" gorm:"type:text;not null;uniqueIndex;column:planner_profile_name"`

	PlannerProfileRules datatypes.JSON `json:"planner_profile_rules" gorm:"type:jsonb;column:planner_profile_rules"`

	PlannerProfileCreatedAt time.Time      `json:"planner_profile_created_at" gorm:"column:planner_profile_created_at;not null;autoCreateTime"`
	PlannerProfileUpdatedAt time.Time      `json:"planner_profile_updated_at" gorm:"column:planner_profile_updated_at;not null;autoUpdateTime"`
	PlannerProfileDeletedAt gorm.DeletedAt `json:"planner_profile_deleted_at" gorm:"column:planner_profile_deleted_at;index"`
}

func (PlannerProfileModel) TableName() string {
	return "planner_profiles"
}

const DefaultProfileName = "default"

// file: internals/features/planning/profiles/dto/planner_profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/profiles/model"
	plandto "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
)

// UpsertProfileRequest replaces the rules document of a named profile.
// The document itself is the loose RuleProfileInput shape; normalization
// happens inside the engine at run time, so storage stays permissive.
type UpsertProfileRequest struct {
	Rules plandto.RuleProfileInput `json:"rules"`
}

type PlannerProfileResponse struct {
	PlannerProfileID uuid.UUID      `json:"planner_profile_id"`
	Name             string         `json:"name"`
	Rules            datatypes.JSON `json:"rules"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func NewPlannerProfileResponse(src *m.PlannerProfileModel) PlannerProfileResponse {
	return PlannerProfileResponse{
		PlannerProfileID: src.PlannerProfileID,
		Name:             src.PlannerProfileName,
		Rules:            src.PlannerProfileRules,
		UpdatedAt:        src.PlannerProfileUpdatedAt,
	}
}

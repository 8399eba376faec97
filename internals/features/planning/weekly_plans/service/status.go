// file: internals/features/planning/weekly_plans/service/status.go
package service

import (
	"fmt"
	"strings"

	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
)

/* =======================================================
   Plan State Machine

     draft    -> preview, released
     preview  -> released, draft
     released -> draft
   ======================================================= */

var allowedTransitions = map[m.WeeklyPlanStatus][]m.WeeklyPlanStatus{
	m.PlanDraft:    {m.PlanPreview, m.PlanReleased},
	m.PlanPreview:  {m.PlanReleased, m.PlanDraft},
	m.PlanReleased: {m.PlanDraft},
}

// TransitionError names the allowed targets so the caller can render a
// useful validation message.
type TransitionError struct {
	From    m.WeeklyPlanStatus
	To      m.WeeklyPlanStatus
	Allowed []m.WeeklyPlanStatus
}

func (e *TransitionError) Error() string {
	targets := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		targets = append(targets, string(s))
	}
	return fmt.Sprintf("cannot change plan status from %q to %q (allowed: %s)",
		e.From, e.To, strings.Join(targets, ", "))
}

// ValidateTransition checks the lifecycle table. A no-op transition to the
// current state is rejected like any other unlisted target.
func ValidateTransition(from, to m.WeeklyPlanStatus) error {
	allowed := allowedTransitions[from]
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to, Allowed: allowed}
}

// file: internals/features/planning/weekly_plans/service/slots.go
package service

import (
	"time"

	helper "github.com/hinterbergers/mycliniq-sub002/internals/helpers"

	d "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/dto"
	m "github.com/hinterbergers/mycliniq-sub002/internals/features/planning/weekly_plans/model"
	wpmodel "github.com/hinterbergers/mycliniq-sub002/internals/features/workplaces/workplaces/model"
)

/* =======================================================
   Slot Enumerator

   Derives the open (day, workplace) slots of the target
   week. Locked weekdays are skipped wholesale, a closed
   room under the closed-room rule is authoritative (not a
   failure), and slots already holding an employee are
   never touched again.
   ======================================================= */

type openSlot struct {
	Date      time.Time
	Weekday   int
	Workplace *wpmodel.WorkplaceModel
	Setting   *wpmodel.WeekdaySettingModel
}

type slotOccupancy struct {
	hasEmployee  bool
	hasHardBlock bool
}

func enumerateSlots(snap *PlanningSnapshot, profile d.RuleProfile) (open []openSlot, unfilled []d.UnfilledSlot) {
	occupancy := map[string]slotOccupancy{}
	for i := range snap.ExistingAssignments {
		a := &snap.ExistingAssignments[i]
		occ := occupancy[a.SlotKey()]
		if a.HoldsEmployee() {
			occ.hasEmployee = true
		}
		if a.IsEmptyBlock() {
			occ.hasHardBlock = true
		}
		occupancy[a.SlotKey()] = occ
	}

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		date := snap.From.AddDate(0, 0, dayOffset)
		weekday := dayOffset + 1

		if snap.Plan != nil && snap.Plan.WeekdayLocked(weekday) {
			continue
		}

		occurrence := helper.WeekdayOccurrenceInMonth(date)

		for i := range snap.Workplaces {
			wp := &snap.Workplaces[i]
			setting := resolveWeekdaySetting(snap.WeekdaySettings[wp.WorkplaceID], weekday, occurrence)
			if setting == nil {
				continue
			}

			// A closed room is no vacancy; the slot disappears entirely.
			if setting.WeekdaySettingIsClosed && profile.SkipClosedRooms {
				continue
			}

			key := m.SlotKey(weekday, wp.WorkplaceID)
			occ := occupancy[key]
			if occ.hasEmployee {
				continue
			}
			if occ.hasHardBlock {
				unfilled = append(unfilled, d.UnfilledSlot{
					SlotKey:       key,
					Date:          d.DateString(date),
					Weekday:       weekday,
					WorkplaceID:   wp.WorkplaceID,
					WorkplaceName: wp.WorkplaceName,
					Reasons:       []d.ReasonCode{d.ReasonLockedEmpty},
					BlocksPublish: false,
				})
				continue
			}

			open = append(open, openSlot{
				Date:      date,
				Weekday:   weekday,
				Workplace: wp,
				Setting:   setting,
			})
		}
	}

	return open, unfilled
}

// resolveWeekdaySetting picks the setting for the weekday whose recurrence
// covers the day's month-occurrence. When several match, the most specific
// recurrence wins (first_of_month over first_and_third over weekly); the
// workplace controller rejects true duplicates at write time, this order
// only keeps legacy data deterministic.
func resolveWeekdaySetting(settings []wpmodel.WeekdaySettingModel, weekday, occurrence int) *wpmodel.WeekdaySettingModel {
	var best *wpmodel.WeekdaySettingModel
	for i := range settings {
		st := &settings[i]
		if st.WeekdaySettingWeekday != weekday {
			continue
		}
		if !st.WeekdaySettingRecurrence.MatchesOccurrence(occurrence) {
			continue
		}
		if best == nil || recurrenceRank(st.WeekdaySettingRecurrence) > recurrenceRank(best.WeekdaySettingRecurrence) {
			best = st
		}
	}
	return best
}

func recurrenceRank(r wpmodel.Recurrence) int {
	switch r {
	case wpmodel.RecurFirstOfMonth:
		return 3
	case wpmodel.RecurFirstAndThird:
		return 2
	case wpmodel.RecurWeekly:
		return 1
	}
	return 0
}

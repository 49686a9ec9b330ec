package services

import (
	"fmt"

	"boystrip/internal/models/db_models"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
)

// MaxItineraryManagers is a hard cap, not a setting.
const MaxItineraryManagers = 2

// CanEditActivity: managers edit anything, the recorded creator edits their
// own user suggestion, nobody else edits. A nil actor is anonymous.
func CanEditActivity(actor *db_models.Profile, activity *db_models.Activity) error {
	if actor == nil {
		return fmt.Errorf("%w: an editor profile is required", utils.ErrForbidden)
	}
	if actor.IsItineraryManager {
		return nil
	}
	if activity.Source == db_models.ActivitySourceAI {
		return fmt.Errorf("%w: only managers can edit AI-generated activities", utils.ErrForbidden)
	}
	if activity.CreatorProfileID != nil && *activity.CreatorProfileID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: you can only edit activities you created or you must be a manager", utils.ErrForbidden)
}

func CanDeleteActivity(actor *db_models.Profile, _ *db_models.Activity) error {
	if actor == nil || !actor.IsItineraryManager {
		return fmt.Errorf("%w: only itinerary managers can delete activities", utils.ErrForbidden)
	}
	return nil
}

// CheckManagerCap counts managers other than the target, so re-affirming an
// existing manager never trips the cap. Clearing the flag always passes.
func CheckManagerCap(profiles []db_models.Profile, targetID uuid.UUID, isManager bool) error {
	if !isManager {
		return nil
	}
	others := 0
	for _, p := range profiles {
		if p.IsItineraryManager && p.ID != targetID {
			others++
		}
	}
	if others >= MaxItineraryManagers {
		return utils.ErrManagerCapReached
	}
	return nil
}

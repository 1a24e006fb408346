package services

import "hotel-frontdesk/models"

// Forward lifecycle chain. Each status may advance only to its successor;
// Cancelled is handled separately.
var forwardTransitions = map[string]string{
	models.StatusInquiry:   models.StatusTentative,
	models.StatusTentative: models.StatusHold,
	models.StatusHold:      models.StatusConfirmed,
	models.StatusConfirmed: models.StatusCheckedIn,
	models.StatusCheckedIn: models.StatusCheckedOut,
}

// CanTransition reports whether a reservation may move from one status to
// another. Cancelled is reachable from any state except the terminal ones
// (cancelling a completed stay is not offered).
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	if to == models.StatusCancelled {
		return from != models.StatusCheckedOut && from != models.StatusCancelled
	}
	return forwardTransitions[from] == to
}

package services

import (
	"testing"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardChain(t *testing.T) {
	chain := []string{
		models.StatusInquiry,
		models.StatusTentative,
		models.StatusHold,
		models.StatusConfirmed,
		models.StatusCheckedIn,
		models.StatusCheckedOut,
	}

	for i, from := range chain[:len(chain)-1] {
		assert.True(t, CanTransition(from, chain[i+1]), "%s -> %s", from, chain[i+1])
	}

	// No skipping, no going backwards.
	assert.False(t, CanTransition(models.StatusInquiry, models.StatusConfirmed))
	assert.False(t, CanTransition(models.StatusTentative, models.StatusCheckedIn))
	assert.False(t, CanTransition(models.StatusConfirmed, models.StatusHold))
	assert.False(t, CanTransition(models.StatusCheckedOut, models.StatusCheckedIn))
}

func TestCanTransitionCancellation(t *testing.T) {
	for _, from := range []string{
		models.StatusInquiry,
		models.StatusTentative,
		models.StatusHold,
		models.StatusConfirmed,
		models.StatusCheckedIn,
	} {
		assert.True(t, CanTransition(from, models.StatusCancelled), "%s must be cancellable", from)
	}

	assert.False(t, CanTransition(models.StatusCheckedOut, models.StatusCancelled), "completed stays cannot be cancelled")
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusCancelled))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, to := range []string{
		models.StatusInquiry,
		models.StatusTentative,
		models.StatusHold,
		models.StatusConfirmed,
		models.StatusCheckedIn,
		models.StatusCheckedOut,
	} {
		assert.False(t, CanTransition(models.StatusCancelled, to), "Cancelled -> %s", to)
		assert.False(t, CanTransition(models.StatusCheckedOut, to), "Checked-out -> %s", to)
	}
}

func TestCanTransitionNoSelfLoop(t *testing.T) {
	for from := range forwardTransitions {
		assert.False(t, CanTransition(from, from))
	}
}

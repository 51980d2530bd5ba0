package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visourastudio-blip/pizza-do-ze/models"
)

func TestSequencePerFulfillment(t *testing.T) {
	assert.Equal(t, []models.OrderStatus{
		models.StatusReceived,
		models.StatusInPreparation,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}, Sequence(models.FulfillmentDelivery))

	assert.Equal(t, []models.OrderStatus{
		models.StatusReceived,
		models.StatusInPreparation,
		models.StatusReadyForPickup,
	}, Sequence(models.FulfillmentPickup))
}

func TestCanTransitionForwardOnly(t *testing.T) {
	// Single forward steps are valid.
	assert.NoError(t, CanTransition(models.FulfillmentDelivery, models.StatusReceived, models.StatusInPreparation))
	assert.NoError(t, CanTransition(models.FulfillmentDelivery, models.StatusInPreparation, models.StatusOutForDelivery))
	assert.NoError(t, CanTransition(models.FulfillmentDelivery, models.StatusOutForDelivery, models.StatusDelivered))
	assert.NoError(t, CanTransition(models.FulfillmentPickup, models.StatusInPreparation, models.StatusReadyForPickup))

	// Skips are rejected.
	assert.Error(t, CanTransition(models.FulfillmentDelivery, models.StatusReceived, models.StatusDelivered))
	// Backward moves are rejected.
	assert.Error(t, CanTransition(models.FulfillmentDelivery, models.StatusOutForDelivery, models.StatusInPreparation))
	// Terminal statuses have no exit.
	assert.Error(t, CanTransition(models.FulfillmentDelivery, models.StatusDelivered, models.StatusReceived))
	assert.Error(t, CanTransition(models.FulfillmentPickup, models.StatusReadyForPickup, models.StatusReceived))
	// A pickup order never goes out for delivery.
	assert.Error(t, CanTransition(models.FulfillmentPickup, models.StatusInPreparation, models.StatusOutForDelivery))
	// Statuses outside the sequence are rejected.
	assert.Error(t, CanTransition(models.FulfillmentDelivery, models.StatusReceived, "paused"))
}

func TestNextStatus(t *testing.T) {
	next, ok := NextStatus(models.FulfillmentDelivery, models.StatusReceived)
	assert.True(t, ok)
	assert.Equal(t, models.StatusInPreparation, next)

	_, ok = NextStatus(models.FulfillmentDelivery, models.StatusDelivered)
	assert.False(t, ok)

	next, ok = NextStatus(models.FulfillmentPickup, models.StatusInPreparation)
	assert.True(t, ok)
	assert.Equal(t, models.StatusReadyForPickup, next)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.FulfillmentDelivery, models.StatusDelivered))
	assert.True(t, IsTerminal(models.FulfillmentPickup, models.StatusReadyForPickup))
	assert.False(t, IsTerminal(models.FulfillmentDelivery, models.StatusOutForDelivery))
	assert.False(t, IsTerminal(models.FulfillmentPickup, models.StatusInPreparation))
}

func TestProgress(t *testing.T) {
	// Pickup sequence has 3 steps; in_preparation is the second.
	assert.InDelta(t, 66.67, Progress(models.FulfillmentPickup, models.StatusInPreparation), 0.01)

	assert.InDelta(t, 25, Progress(models.FulfillmentDelivery, models.StatusReceived), 0.001)
	assert.InDelta(t, 50, Progress(models.FulfillmentDelivery, models.StatusInPreparation), 0.001)
	assert.InDelta(t, 75, Progress(models.FulfillmentDelivery, models.StatusOutForDelivery), 0.001)

	// Terminal statuses always report 100.
	assert.Equal(t, 100.0, Progress(models.FulfillmentDelivery, models.StatusDelivered))
	assert.Equal(t, 100.0, Progress(models.FulfillmentPickup, models.StatusReadyForPickup))

	// Unknown status contributes nothing.
	assert.Equal(t, 0.0, Progress(models.FulfillmentDelivery, "paused"))
}

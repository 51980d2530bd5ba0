package statemachine

import (
	"errors"

	"github.com/visourastudio-blip/pizza-do-ze/models"
)

// deliverySequence and pickupSequence are the authoritative status
// sequences. An order only ever moves forward through the sequence
// selected by its fulfillment type; there are no cycles or skips.
var deliverySequence = []models.OrderStatus{
	models.StatusReceived,
	models.StatusInPreparation,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var pickupSequence = []models.OrderStatus{
	models.StatusReceived,
	models.StatusInPreparation,
	models.StatusReadyForPickup,
}

// Sequence returns the status sequence for a fulfillment type.
func Sequence(fulfillment models.FulfillmentType) []models.OrderStatus {
	if fulfillment == models.FulfillmentPickup {
		return pickupSequence
	}
	return deliverySequence
}

// indexOf returns the position of status in the sequence, or -1.
func indexOf(seq []models.OrderStatus, status models.OrderStatus) int {
	for i, s := range seq {
		if s == status {
			return i
		}
	}
	return -1
}

// NextStatus returns the status following the current one, or false if
// the current status is terminal for the given fulfillment type.
func NextStatus(fulfillment models.FulfillmentType, current models.OrderStatus) (models.OrderStatus, bool) {
	seq := Sequence(fulfillment)
	i := indexOf(seq, current)
	if i < 0 || i+1 >= len(seq) {
		return "", false
	}
	return seq[i+1], true
}

// IsTerminal reports whether status ends the sequence for the given
// fulfillment type.
func IsTerminal(fulfillment models.FulfillmentType, status models.OrderStatus) bool {
	seq := Sequence(fulfillment)
	i := indexOf(seq, status)
	return i == len(seq)-1
}

// CanTransition checks that moving from one status to the next is a
// single forward step in the applicable sequence.
func CanTransition(fulfillment models.FulfillmentType, from, to models.OrderStatus) error {
	seq := Sequence(fulfillment)
	fromIdx := indexOf(seq, from)
	toIdx := indexOf(seq, to)
	if toIdx < 0 {
		return errors.New("status '" + string(to) + "' does not exist for " + string(fulfillment) + " orders")
	}
	if fromIdx < 0 {
		return errors.New("order is in unknown status '" + string(from) + "'")
	}
	if toIdx != fromIdx+1 {
		next, ok := NextStatus(fulfillment, from)
		if !ok {
			return errors.New("invalid transition: " + string(from) + " is a terminal status")
		}
		return errors.New(
			"invalid transition: " + string(from) + " -> " + string(to) +
				". The only valid next status is " + string(next))
	}
	return nil
}

// Progress computes the customer-facing completion percentage of an
// order: 100 at the terminal status, otherwise the position of the
// current status within the sequence.
func Progress(fulfillment models.FulfillmentType, status models.OrderStatus) float64 {
	seq := Sequence(fulfillment)
	if IsTerminal(fulfillment, status) {
		return 100
	}
	i := indexOf(seq, status)
	if i < 0 {
		return 0
	}
	return float64(i+1) / float64(len(seq)) * 100
}

// AllSequences returns the full state machine for documentation.
func AllSequences() map[models.FulfillmentType][]models.OrderStatus {
	return map[models.FulfillmentType][]models.OrderStatus{
		models.FulfillmentDelivery: deliverySequence,
		models.FulfillmentPickup:   pickupSequence,
	}
}

package statemachine

import (
	"errors"
	"strings"

	"restaurant-ops-api/models"
)

// orderStatuses are the kitchen states an owner can set. Any state may
// follow any other; the owner corrects mistakes by moving back.
var orderStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusCompleted,
}

// Transition defines a valid reservation state change
type Transition struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

// reservationTransitions is the authoritative reservation lifecycle.
// Accepted and Rejected are terminal.
var reservationTransitions = []Transition{
	{From: models.ReservationPending, To: models.ReservationAccepted},
	{From: models.ReservationPending, To: models.ReservationRejected},
}

// reservationMap indexes reservationTransitions by pair
var reservationMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range reservationTransitions {
		m[t] = true
	}
	return m
}()

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid transition")
)

// OrderStatuses returns every status an order can hold
func OrderStatuses() []models.OrderStatus {
	return orderStatuses
}

// CanTransitionOrder only checks that the target is a known status
func CanTransitionOrder(to models.OrderStatus) error {
	for _, s := range orderStatuses {
		if s == to {
			return nil
		}
	}
	return ErrInvalidStatus
}

// IsReservationDecision reports whether status is one an owner may choose
func IsReservationDecision(status models.ReservationStatus) bool {
	return status == models.ReservationAccepted || status == models.ReservationRejected
}

// ValidReservationTransitionsFrom returns all valid next states from a given state
func ValidReservationTransitionsFrom(status models.ReservationStatus) []models.ReservationStatus {
	var nexts []models.ReservationStatus
	for _, t := range reservationTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransitionReservation checks a reservation status change
func CanTransitionReservation(from, to models.ReservationStatus) error {
	if !IsReservationDecision(to) {
		return ErrInvalidStatus
	}
	if reservationMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.Join(ErrInvalidTransition, errors.New(
		string(from)+" → "+string(to)+" is not allowed. "+
			"Valid transitions from "+string(from)+" are: "+describeValidFrom(from),
	))
}

func describeValidFrom(status models.ReservationStatus) string {
	nexts := ValidReservationTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

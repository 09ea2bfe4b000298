package models

import (
	"errors"
	"fmt"
	"strings"
)

// OrderType says how a submitted order reaches the guest.
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

// OrderStatus is the kitchen's progress on a submitted order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

var (
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrOrderClosed is returned when a completed or cancelled order is changed.
	ErrOrderClosed = errors.New("order is closed")

	// ErrInvalidTransition is returned for a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// normalizeName turns display names like "Dine-in" or "Ready for Pickup" into wire names.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// ParseOrderType accepts wire names and their display forms ("Dine-in", "Takeaway").
func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(normalizeName(s)); t {
	case OrderDineIn, OrderTakeaway, OrderDelivery:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrderType, s)
}

// ParseOrderStatus accepts wire names and their display forms ("Ready for Pickup").
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(normalizeName(s))
	if _, ok := statusRank[st]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, s)
}

// statusRank orders the forward path. Cancelled is reachable from any open status.
var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusReadyForPickup: 3,
	StatusOutForDelivery: 3,
	StatusCompleted:      4,
	StatusCancelled:      4,
}

// Closed reports whether no further changes are allowed.
func (s OrderStatus) Closed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CheckTransition reports whether an order of type t may move from s to next.
// Orders only move forward, may skip steps and may be cancelled while open.
// "ready_for_pickup" is for takeaway orders and "out_for_delivery" for deliveries.
func (s OrderStatus) CheckTransition(next OrderStatus, t OrderType) error {
	if s.Closed() {
		return fmt.Errorf("%w: already %s", ErrOrderClosed, s)
	}
	if _, ok := statusRank[next]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrderStatus, next)
	}
	if next == StatusReadyForPickup && t != OrderTakeaway {
		return fmt.Errorf("%w: %s orders are not picked up", ErrInvalidTransition, t)
	}
	if next == StatusOutForDelivery && t != OrderDelivery {
		return fmt.Errorf("%w: %s orders are not delivered", ErrInvalidTransition, t)
	}
	if next != StatusCancelled && statusRank[next] <= statusRank[s] {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s, next)
	}
	return nil
}

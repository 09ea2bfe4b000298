package models

import (
	"errors"
	"testing"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
	}{
		{"pending", StatusPending},
		{"Ready for Pickup", StatusReadyForPickup},
		{" Out-for-Delivery ", StatusOutForDelivery},
		{"CANCELLED", StatusCancelled},
	}
	for _, tt := range tests {
		got, err := ParseOrderStatus(tt.in)
		if err != nil {
			t.Errorf("ParseOrderStatus(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrderStatus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseOrderStatus("eaten"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Errorf("ParseOrderStatus(eaten) error = %v, want ErrInvalidOrderStatus", err)
	}
}

func TestParseOrderType(t *testing.T) {
	got, err := ParseOrderType("Dine-in")
	if err != nil || got != OrderDineIn {
		t.Errorf("ParseOrderType(Dine-in) = %s, %v", got, err)
	}
	if _, err := ParseOrderType("drone"); !errors.Is(err, ErrInvalidOrderType) {
		t.Errorf("ParseOrderType(drone) error = %v, want ErrInvalidOrderType", err)
	}
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		typ     OrderType
		wantErr error
	}{
		{"confirm", StatusPending, StatusConfirmed, OrderDineIn, nil},
		{"skip to preparing", StatusPending, StatusPreparing, OrderDineIn, nil},
		{"dine-in completes from preparing", StatusPreparing, StatusCompleted, OrderDineIn, nil},
		{"takeaway ready", StatusPreparing, StatusReadyForPickup, OrderTakeaway, nil},
		{"delivery out", StatusPreparing, StatusOutForDelivery, OrderDelivery, nil},
		{"cancel while open", StatusPreparing, StatusCancelled, OrderTakeaway, nil},
		{"backwards", StatusPreparing, StatusConfirmed, OrderDineIn, ErrInvalidTransition},
		{"same status", StatusConfirmed, StatusConfirmed, OrderDineIn, ErrInvalidTransition},
		{"dine-in is not picked up", StatusPreparing, StatusReadyForPickup, OrderDineIn, ErrInvalidTransition},
		{"takeaway is not delivered", StatusPreparing, StatusOutForDelivery, OrderTakeaway, ErrInvalidTransition},
		{"completed is closed", StatusCompleted, StatusCancelled, OrderDineIn, ErrOrderClosed},
		{"cancelled is closed", StatusCancelled, StatusPending, OrderDineIn, ErrOrderClosed},
		{"unknown target", StatusPending, OrderStatus("eaten"), OrderDineIn, ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CheckTransition(tt.to, tt.typ)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckTransition failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckTransition error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

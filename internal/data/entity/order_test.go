package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusForwardSteps(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"cart to placed", OrderStatusCart, OrderStatusPlaced, true},
		{"placed to confirmed", OrderStatusPlaced, OrderStatusConfirmed, true},
		{"confirmed to preparing", OrderStatusConfirmed, OrderStatusPreparing, true},
		{"preparing to ready", OrderStatusPreparing, OrderStatusReady, true},
		{"ready to delivered", OrderStatusReady, OrderStatusDelivered, true},
		{"no skipping steps", OrderStatusPlaced, OrderStatusReady, false},
		{"no going backwards", OrderStatusPreparing, OrderStatusConfirmed, false},
		{"no jump to delivered", OrderStatusPlaced, OrderStatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusCancellation(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderStatusCart, OrderStatusPlaced, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusReady,
	} {
		assert.True(t, from.CanTransitionTo(OrderStatusCancelled),
			"cancellation from %s should be allowed", from)
	}
}

func TestOrderStatusTerminalFrozen(t *testing.T) {
	terminal := []OrderStatus{OrderStatusDelivered, OrderStatusCancelled}
	all := []OrderStatus{
		OrderStatusCart, OrderStatusPlaced, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered,
		OrderStatusCancelled,
	}

	for _, from := range terminal {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, from.CanTransitionTo(to),
				"%s is terminal, transition to %s must be rejected", from, to)
		}
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(OrderStatusPlaced))
	assert.True(t, ValidStatus(OrderStatusCancelled))
	assert.False(t, ValidStatus(OrderStatus("SHIPPED")))
	assert.False(t, ValidStatus(OrderStatus("")))
}

func TestVendorAcceptsOrders(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		online  bool
		accepts bool
	}{
		{"active and online", true, true, true},
		{"active but offline", true, false, false},
		{"delisted but online", false, true, false},
		{"delisted and offline", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Vendor{IsActive: tt.active, IsOnline: tt.online}
			assert.Equal(t, tt.accepts, v.AcceptsOrders())
		})
	}
}

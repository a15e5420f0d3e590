package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusCart      OrderStatus = "CART"
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// nextStatus is the single allowed forward step for each state.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusCart:      OrderStatusPlaced,
	OrderStatusPlaced:    OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo checks the regular (non-admin) state machine: exactly one
// step forward, or cancellation from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// ValidStatus reports whether the value is one of the known states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusCart, OrderStatusPlaced, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of one purchased line. Name and price
// are copied at order time so later menu edits do not rewrite history.
type OrderItem struct {
	BaseSimple
	OrderID    uuid.UUID `db:"order_id"`
	MenuItemID uuid.UUID `db:"menu_item_id"`
	Name       string    `db:"name"`
	Price      float64   `db:"price"`
	Quantity   int       `db:"quantity"`
	Total      float64   `db:"total"`
}

type Order struct {
	BaseNoDelete
	OrderNumber       string        `db:"order_number"`
	UserID            uuid.UUID     `db:"user_id"`
	VendorID          uuid.UUID     `db:"vendor_id"`
	Items             []OrderItem   `db:"-"`
	Status            OrderStatus   `db:"status"`
	DeliveryAddress   string        `db:"delivery_address"`
	Phone             string        `db:"phone"`
	Subtotal          float64       `db:"subtotal"`
	DeliveryFee       float64       `db:"delivery_fee"`
	Tax               float64       `db:"tax"`
	Total             float64       `db:"total"`
	PaymentMethod     PaymentMethod `db:"payment_method"`
	EstimatedDelivery string        `db:"estimated_delivery"`
	Notes             string        `db:"notes"`
}

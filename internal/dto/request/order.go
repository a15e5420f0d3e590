package request

// PlaceOrderRequest is the checkout submission. CartData is the client-held
// cart serialized as JSON; address/phone fall back to the buyer's profile
// when omitted.
type PlaceOrderRequest struct {
	CartData        string `json:"cart_data" validate:"required"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty" validate:"omitempty,oneof=COD ONLINE"`
	Notes           string `json:"notes,omitempty"`
}

// CartPayload is the decoded shape of PlaceOrderRequest.CartData.
// The client's own subtotal/total are carried but never trusted; the server
// re-derives every monetary figure from price and quantity.
type CartPayload struct {
	VendorID    string     `json:"vendorId" validate:"required,uuid4"`
	Items       []CartLine `json:"items" validate:"required,min=1,dive"`
	Subtotal    float64    `json:"subtotal"`
	DeliveryFee *float64   `json:"deliveryFee,omitempty"`
	Total       float64    `json:"total"`
}

type CartLine struct {
	ID       string  `json:"id" validate:"required,uuid4"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Total    float64 `json:"total" validate:"gte=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PLACED CONFIRMED PREPARING READY DELIVERED CANCELLED"`
}

package response

import (
	"time"

	"campus-delivery/internal/data/entity"
)

type OrderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

type OrderResponse struct {
	ID                string               `json:"id"`
	OrderNumber       string               `json:"order_number"`
	UserID            string               `json:"user_id"`
	VendorID          string               `json:"vendor_id"`
	VendorName        string               `json:"vendor_name,omitempty"`
	Items             []OrderItemResponse  `json:"items"`
	Status            entity.OrderStatus   `json:"status"`
	DeliveryAddress   string               `json:"delivery_address"`
	Phone             string               `json:"phone"`
	Subtotal          float64              `json:"subtotal"`
	DeliveryFee       float64              `json:"delivery_fee"`
	Tax               float64              `json:"tax"`
	Total             float64              `json:"total"`
	PaymentMethod     entity.PaymentMethod `json:"payment_method"`
	EstimatedDelivery string               `json:"estimated_delivery"`
	Notes             string               `json:"notes,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func OrderToResponse(order *entity.Order, vendorName string) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Total:      item.Total,
		}
	}

	return OrderResponse{
		ID:                order.ID.String(),
		OrderNumber:       order.OrderNumber,
		UserID:            order.UserID.String(),
		VendorID:          order.VendorID.String(),
		VendorName:        vendorName,
		Items:             items,
		Status:            order.Status,
		DeliveryAddress:   order.DeliveryAddress,
		Phone:             order.Phone,
		Subtotal:          order.Subtotal,
		DeliveryFee:       order.DeliveryFee,
		Tax:               order.Tax,
		Total:             order.Total,
		PaymentMethod:     order.PaymentMethod,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

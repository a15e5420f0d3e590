package request

type MenuItemRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Category        string  `json:"category" validate:"required,oneof=Pizza Coffee Sandwiches Indian Chinese 'Fast Food' Desserts Healthy Stationary 'Main Course' Breakfast Beverages"`
	PreparationTime string  `json:"preparation_time,omitempty"`
	IsVeg           bool    `json:"is_veg"`
	IsAvailable     bool    `json:"is_available"`
}

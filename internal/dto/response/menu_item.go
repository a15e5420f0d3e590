package response

import (
	"time"

	"campus-delivery/internal/data/entity"
)

type MenuItemResponse struct {
	ID              string              `json:"id"`
	VendorID        string              `json:"vendor_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Price           float64             `json:"price"`
	Category        entity.MenuCategory `json:"category"`
	IsVeg           bool                `json:"is_veg"`
	IsAvailable     bool                `json:"is_available"`
	PreparationTime string              `json:"preparation_time"`
	Rating          float64             `json:"rating"`
	CreatedAt       time.Time           `json:"created_at"`
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              item.ID.String(),
		VendorID:        item.VendorID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		Category:        item.Category,
		IsVeg:           item.IsVeg,
		IsAvailable:     item.IsAvailable,
		PreparationTime: item.PreparationTime,
		Rating:          item.Rating,
		CreatedAt:       item.CreatedAt,
	}
}

package response

import (
	"time"

	"campus-delivery/internal/data/entity"
)

type VendorResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Cuisine      entity.Cuisine `json:"cuisine"`
	Rating       float64        `json:"rating"`
	DeliveryTime string         `json:"delivery_time"`
	IsActive     bool           `json:"is_active"`
	IsOnline     bool           `json:"is_online"`
	CreatedAt    time.Time      `json:"created_at"`
}

// VendorMenuResponse is the storefront view: one vendor plus its
// orderable items.
type VendorMenuResponse struct {
	Vendor VendorResponse     `json:"vendor"`
	Items  []MenuItemResponse `json:"items"`
}

func VendorToResponse(vendor *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:           vendor.ID.String(),
		Name:         vendor.Name,
		Description:  vendor.Description,
		Cuisine:      vendor.Cuisine,
		Rating:       vendor.Rating,
		DeliveryTime: vendor.DeliveryTime,
		IsActive:     vendor.IsActive,
		IsOnline:     vendor.IsOnline,
		CreatedAt:    vendor.CreatedAt,
	}
}

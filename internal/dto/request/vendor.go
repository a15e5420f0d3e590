package request

// CreateVendorRequest provisions the owner account and the vendor listing in
// one call (admin only).
type CreateVendorRequest struct {
	OwnerName     string `json:"owner_name" validate:"required,min=2,max=100"`
	OwnerEmail    string `json:"owner_email" validate:"required,email"`
	OwnerPassword string `json:"owner_password" validate:"required,min=6"`
	OwnerMobile   string `json:"owner_mobile" validate:"required,len=10,numeric"`
	VendorName    string `json:"vendor_name" validate:"required,min=2,max=100"`
	Description   string `json:"description" validate:"required"`
	Cuisine       string `json:"cuisine" validate:"required,oneof=Pizza Coffee Sandwiches Indian Chinese 'Fast Food' Desserts Healthy Stationary"`
	DeliveryTime  string `json:"delivery_time,omitempty"`
}

type UpdateVendorProfileRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description" validate:"required"`
	Cuisine      string `json:"cuisine" validate:"required,oneof=Pizza Coffee Sandwiches Indian Chinese 'Fast Food' Desserts Healthy Stationary"`
	DeliveryTime string `json:"delivery_time,omitempty"`
	IsOnline     bool   `json:"is_online"`
}

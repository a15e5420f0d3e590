package entity

import "github.com/google/uuid"

type Cuisine string

const (
	CuisinePizza      Cuisine = "Pizza"
	CuisineCoffee     Cuisine = "Coffee"
	CuisineSandwiches Cuisine = "Sandwiches"
	CuisineIndian     Cuisine = "Indian"
	CuisineChinese    Cuisine = "Chinese"
	CuisineFastFood   Cuisine = "Fast Food"
	CuisineDesserts   Cuisine = "Desserts"
	CuisineHealthy    Cuisine = "Healthy"
	CuisineStationary Cuisine = "Stationary"
)

// Vendor is a campus shop run by exactly one vendor-role user.
// OwnerUserID carries a unique constraint, so the association is 1:1.
type Vendor struct {
	Base
	OwnerUserID  uuid.UUID `db:"owner_user_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Cuisine      Cuisine   `db:"cuisine"`
	Rating       float64   `db:"rating"`
	DeliveryTime string    `db:"delivery_time"`
	IsActive     bool      `db:"is_active"`  // admin listing switch
	IsOnline     bool      `db:"is_online"`  // vendor order-acceptance switch
}

// AcceptsOrders reports whether new orders may target this vendor.
func (v *Vendor) AcceptsOrders() bool {
	return v.IsActive && v.IsOnline
}

package entity

import "github.com/google/uuid"

type MenuCategory string

const (
	CategoryPizza      MenuCategory = "Pizza"
	CategoryCoffee     MenuCategory = "Coffee"
	CategorySandwiches MenuCategory = "Sandwiches"
	CategoryIndian     MenuCategory = "Indian"
	CategoryChinese    MenuCategory = "Chinese"
	CategoryFastFood   MenuCategory = "Fast Food"
	CategoryDesserts   MenuCategory = "Desserts"
	CategoryHealthy    MenuCategory = "Healthy"
	CategoryStationary MenuCategory = "Stationary"
	CategoryMainCourse MenuCategory = "Main Course"
	CategoryBreakfast  MenuCategory = "Breakfast"
	CategoryBeverages  MenuCategory = "Beverages"
)

type MenuItem struct {
	BaseNoDelete
	VendorID        uuid.UUID    `db:"vendor_id"`
	Name            string       `db:"name"`
	Description     string       `db:"description"`
	Price           float64      `db:"price"`
	Category        MenuCategory `db:"category"`
	IsVeg           bool         `db:"is_veg"`
	IsAvailable     bool         `db:"is_available"`
	PreparationTime string       `db:"preparation_time"`
	Rating          float64      `db:"rating"`
}

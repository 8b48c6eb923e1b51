package models

// Category groups menu items on the menu page.
type Category string

const (
	CategoryFood  Category = "food"
	CategoryDrink Category = "drink"
)

type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// MenuItemDraft is a menu item before the backend assigns it an id.
type MenuItemDraft struct {
	Name        string   `json:"name" binding:"required"`
	Category    Category `json:"category" binding:"required,oneof=food drink"`
	Price       float64  `json:"price" binding:"min=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

package models

// MenuType is the dietary category of a catalog item
type MenuType string

const (
	MenuVeg    MenuType = "veg"
	MenuNonVeg MenuType = "nonveg"
)

func (t MenuType) Valid() bool {
	return t == MenuVeg || t == MenuNonVeg
}

// MenuItem is a catalog entry. Orders keep their own snapshot of name and
// price, so editing or deleting an item never touches past orders.
type MenuItem struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"not null"`
	Price       int      `json:"price" gorm:"not null"`
	Type        MenuType `json:"type" gorm:"not null;default:'veg'"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl" gorm:"column:image_url"`
}

func (MenuItem) TableName() string { return "menu" }

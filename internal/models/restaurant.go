package models

// Restaurant owns the RestaurantPizza rows that make up its menu.
// Deleting a restaurant removes its menu entries.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

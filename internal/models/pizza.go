package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

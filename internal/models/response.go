package models

// RestaurantResponse is the summary representation of a restaurant
type RestaurantResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailResponse is a restaurant together with its menu
type RestaurantDetailResponse struct {
	RestaurantResponse
	RestaurantPizzas []RestaurantPizzaResponse `json:"restaurant_pizzas"`
}

// PizzaResponse is the representation of a pizza
type PizzaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaResponse is a menu entry. Restaurant is only set when the
// entry is rendered on its own rather than nested under its restaurant.
type RestaurantPizzaResponse struct {
	ID           uint                `json:"id"`
	Price        float64             `json:"price"`
	PizzaID      uint                `json:"pizza_id"`
	RestaurantID uint                `json:"restaurant_id"`
	Pizza        PizzaResponse       `json:"pizza"`
	Restaurant   *RestaurantResponse `json:"restaurant,omitempty"`
}

func NewRestaurantResponse(r Restaurant) RestaurantResponse {
	return RestaurantResponse{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewRestaurantDetailResponse(r Restaurant) RestaurantDetailResponse {
	items := make([]RestaurantPizzaResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, RestaurantPizzaResponse{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        NewPizzaResponse(rp.Pizza),
		})
	}
	return RestaurantDetailResponse{
		RestaurantResponse: NewRestaurantResponse(r),
		RestaurantPizzas:   items,
	}
}

func NewPizzaResponse(p Pizza) PizzaResponse {
	return PizzaResponse{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewCreatedRestaurantPizzaResponse renders a new menu entry with both of its parents
func NewCreatedRestaurantPizzaResponse(rp RestaurantPizza) RestaurantPizzaResponse {
	restaurant := NewRestaurantResponse(rp.Restaurant)
	return RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaResponse(rp.Pizza),
		Restaurant:   &restaurant,
	}
}

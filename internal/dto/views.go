package dto

import "github.com/franciscosanchezn/restaurant-pizza-api/internal/models"

// RestaurantSummary is a restaurant without its associations
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetail is a restaurant with every association and the pizza each one points at
type RestaurantDetail struct {
	ID               uint                       `json:"id"`
	Name             string                     `json:"name"`
	Address          string                     `json:"address"`
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas"`
}

// PizzaSummary is a pizza without its associations
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RestaurantPizzaSummary carries only the association's own columns
type RestaurantPizzaSummary struct {
	ID           uint    `json:"id"`
	Price        float64 `json:"price"`
	PizzaID      uint    `json:"pizza_id"`
	RestaurantID uint    `json:"restaurant_id"`
}

// RestaurantPizzaWithPizza is an association nested under its restaurant
type RestaurantPizzaWithPizza struct {
	RestaurantPizzaSummary
	Pizza PizzaSummary `json:"pizza"`
}

// RestaurantPizzaDetail is an association with both ends expanded
type RestaurantPizzaDetail struct {
	RestaurantPizzaSummary
	Pizza      PizzaSummary      `json:"pizza"`
	Restaurant RestaurantSummary `json:"restaurant"`
}

func NewRestaurantSummary(r models.Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurantSummaries never returns nil so an empty table encodes as []
func NewRestaurantSummaries(restaurants []models.Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantSummary(r))
	}
	return out
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be preloaded
func NewRestaurantDetail(r models.Restaurant) RestaurantDetail {
	associations := make([]RestaurantPizzaWithPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		associations = append(associations, RestaurantPizzaWithPizza{
			RestaurantPizzaSummary: NewRestaurantPizzaSummary(rp),
			Pizza:                  NewPizzaSummary(rp.Pizza),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: associations,
	}
}

func NewPizzaSummary(p models.Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Description: p.Description}
}

func NewPizzaSummaries(pizzas []models.Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaSummary(p))
	}
	return out
}

func NewRestaurantPizzaSummary(rp models.RestaurantPizza) RestaurantPizzaSummary {
	return RestaurantPizzaSummary{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
}

func NewRestaurantPizzaSummaries(rps []models.RestaurantPizza) []RestaurantPizzaSummary {
	out := make([]RestaurantPizzaSummary, 0, len(rps))
	for _, rp := range rps {
		out = append(out, NewRestaurantPizzaSummary(rp))
	}
	return out
}

// NewRestaurantPizzaDetail expects Restaurant and Pizza to be loaded
func NewRestaurantPizzaDetail(rp models.RestaurantPizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		RestaurantPizzaSummary: NewRestaurantPizzaSummary(rp),
		Pizza:                  NewPizzaSummary(rp.Pizza),
		Restaurant:             NewRestaurantSummary(rp.Restaurant),
	}
}

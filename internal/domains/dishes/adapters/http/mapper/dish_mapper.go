package mapper

import dishdomain "github.com/melvan27/GrubDash/internal/domains/dishes/domain"

// Dish is the wire representation of a dish.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// FromDomainDish converts a domain dish to its wire shape.
func FromDomainDish(dish *dishdomain.Dish) Dish {
	if dish == nil {
		return Dish{}
	}
	return Dish{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		ImageURL:    dish.ImageURL,
	}
}

// FromDomainDishes converts a list, always returning a non-nil slice.
func FromDomainDishes(dishes []*dishdomain.Dish) []Dish {
	result := make([]Dish, 0, len(dishes))
	for _, dish := range dishes {
		result = append(result, FromDomainDish(dish))
	}
	return result
}

package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingID          = errors.New("dish id is required")
	ErrMissingName        = errors.New("dish name is required")
	ErrMissingDescription = errors.New("dish description is required")
	ErrInvalidPrice       = errors.New("dish price must be an integer greater than zero")
	ErrMissingImageURL    = errors.New("dish image_url is required")
)

// Dish is a menu entry.
type Dish struct {
	ID          string
	Name        string
	Description string
	Price       int
	ImageURL    string
}

// NewDish validates and constructs a Dish.
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	dish := &Dish{ID: id}
	if err := dish.Apply(name, description, price, imageURL); err != nil {
		return nil, err
	}
	return dish, nil
}

// Apply overwrites every mutable field. The id is never touched; on error the
// dish is left unchanged.
func (d *Dish) Apply(name, description string, price int, imageURL string) error {
	next := Dish{ID: d.ID, Name: name, Description: description, Price: price, ImageURL: imageURL}
	if err := next.Validate(); err != nil {
		return err
	}
	*d = next
	return nil
}

// Validate enforces the dish invariants.
func (d *Dish) Validate() error {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return ErrMissingID
	case d.Name == "":
		return ErrMissingName
	case d.Description == "":
		return ErrMissingDescription
	case d.Price <= 0:
		return ErrInvalidPrice
	case d.ImageURL == "":
		return ErrMissingImageURL
	}
	return nil
}

// Clone returns an independent copy.
func (d *Dish) Clone() *Dish {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

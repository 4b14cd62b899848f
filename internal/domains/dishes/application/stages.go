package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
	"github.com/melvan27/GrubDash/internal/shared/payload"
	"github.com/melvan27/GrubDash/internal/shared/pipeline"
)

// Request is the state threaded through a dish pipeline.
type Request struct {
	// RouteID is the :dishId path parameter, empty for collection routes.
	RouteID string
	Data    payload.Payload
	// Dish is set by DishExists for the stages after it.
	Dish *domain.Dish
}

// Stage is a single dish precondition.
type Stage = pipeline.Stage[Request]

// Schema declares the fields a dish payload must carry, in check order.
var Schema = payload.Schema{
	Entity: "Dish",
	Fields: []payload.Field{
		{Name: "name", Required: true},
		{Name: "description", Required: true},
		{Name: "price", Required: true, Rule: payload.PositiveInteger, Message: "Dish must have a price that is an integer greater than 0"},
		{Name: "image_url", Required: true},
	},
}

// BodyHas fails unless field is present and truthy.
func BodyHas(field string) Stage {
	return func(_ context.Context, req *Request) error {
		if err := Schema.CheckPresent(req.Data, field); err != nil {
			return apierrors.Validation("%s", err.Error()).WithCause(err)
		}
		return nil
	}
}

// RequiredFields expands to one BodyHas stage per required field.
func RequiredFields() []Stage {
	names := Schema.Required()
	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		stages = append(stages, BodyHas(name))
	}
	return stages
}

// PriceIsValid fails unless price is an integer greater than zero.
func PriceIsValid(_ context.Context, req *Request) error {
	if err := Schema.CheckRule(req.Data, "price"); err != nil {
		return apierrors.Validation("%s", err.Error()).WithCause(domain.ErrInvalidPrice)
	}
	return nil
}

// DishExists resolves RouteID against repo and attaches the dish to the request.
func DishExists(repo ports.Repository) Stage {
	return func(ctx context.Context, req *Request) error {
		dish, err := repo.GetByID(ctx, req.RouteID)
		if errors.Is(err, ports.ErrNotFound) {
			return apierrors.NotFound("Dish does not exist: %s.", req.RouteID).WithCause(err)
		}
		if err != nil {
			return fmt.Errorf("load dish %q: %w", req.RouteID, err)
		}
		req.Dish = dish
		return nil
	}
}

// IDMatchesRoute fails when the body carries an id different from RouteID.
func IDMatchesRoute(_ context.Context, req *Request) error {
	id, _ := req.Data.Get("id")
	if payload.Truthy(id) && id != any(req.RouteID) {
		return apierrors.Validation("Dish id does not match route id. Dish: %v, Route: %s", id, req.RouteID)
	}
	return nil
}

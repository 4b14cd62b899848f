package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/domains/orders/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
	"github.com/melvan27/GrubDash/internal/shared/payload"
	"github.com/melvan27/GrubDash/internal/shared/pipeline"
)

// Request is the state threaded through an order pipeline.
type Request struct {
	// RouteID is the :orderId path parameter, empty for collection routes.
	RouteID string
	Data    payload.Payload
	// Order and Position are set by OrderExists.
	Order    *domain.Order
	Position int
}

// Stage is a single order precondition.
type Stage = pipeline.Stage[Request]

// Schema declares the scalar fields an order payload carries, in check order.
// Status is only required on update.
var Schema = payload.Schema{
	Entity: "Order",
	Fields: []payload.Field{
		{Name: "deliverTo", Required: true},
		{Name: "mobileNumber", Required: true},
		{Name: "status", Rule: isStatus, Message: "Order must have a status of " + domain.StatusList()},
	},
}

func isStatus(v any) bool {
	s, ok := v.(string)
	return ok && domain.Status(s).IsValid()
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

// RequiredFields expands to one BodyHas stage per field in names, or per
// required schema field when names is empty.
func RequiredFields(names ...string) []Stage {
	if len(names) == 0 {
		names = Schema.Required()
	}
	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		stages = append(stages, BodyHas(name))
	}
	return stages
}

// DishesPresent fails unless dishes is a non-empty array.
func DishesPresent(_ context.Context, req *Request) error {
	items, ok := req.Data.Items("dishes")
	if !ok || len(items) == 0 {
		return apierrors.Validation("Order must include at least one dish").WithCause(domain.ErrNoDishes)
	}
	return nil
}

// QuantitiesValid fails at the first dish entry whose quantity is not an
// integer greater than zero. Entries that are not objects fail as well.
func QuantitiesValid(_ context.Context, req *Request) error {
	items, _ := req.Data.Items("dishes")
	for i, item := range items {
		entry, ok := payload.Object(item)
		if ok {
			v, _ := entry.Get("quantity")
			ok = payload.PositiveInteger(v)
		}
		if !ok {
			return apierrors.Validation("Dish %d must have a quantity that is an integer greater than 0", i).
				WithCause(domain.ErrInvalidQuantity)
		}
	}
	return nil
}

// StatusValid fails unless status is one of the lifecycle states.
func StatusValid(_ context.Context, req *Request) error {
	if err := Schema.CheckRule(req.Data, "status"); err != nil {
		return apierrors.Validation("%s", err.Error()).WithCause(err)
	}
	return nil
}

// StatusNotDelivered refuses requests that set the status to delivered.
func StatusNotDelivered(_ context.Context, req *Request) error {
	if domain.Status(req.Data.String("status")).IsFinal() {
		return apierrors.Validation("A delivered order cannot be changed")
	}
	return nil
}

// OrderExists resolves RouteID against repo and attaches the order and its
// position to the request.
func OrderExists(repo ports.Repository) Stage {
	return func(ctx context.Context, req *Request) error {
		order, position, err := repo.Find(ctx, req.RouteID)
		if errors.Is(err, ports.ErrNotFound) {
			return apierrors.NotFound("Order does not exist: %s.", req.RouteID).WithCause(err)
		}
		if err != nil {
			return fmt.Errorf("load order %q: %w", req.RouteID, err)
		}
		req.Order = order
		req.Position = position
		return nil
	}
}

// IDMatchesRoute fails when the body carries an id different from RouteID.
func IDMatchesRoute(_ context.Context, req *Request) error {
	id, _ := req.Data.Get("id")
	if payload.Truthy(id) && id != any(req.RouteID) {
		return apierrors.Validation("Order id does not match route id. Order: %v, Route: %s", id, req.RouteID)
	}
	return nil
}

// StatusPending fails unless the stored order is still pending.
func StatusPending(_ context.Context, req *Request) error {
	if req.Order == nil || !req.Order.Status.CanDelete() {
		return apierrors.Validation("An order cannot be deleted unless it is pending")
	}
	return nil
}

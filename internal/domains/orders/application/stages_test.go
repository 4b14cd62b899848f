package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/shared/payload"
)

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"deliverTo", "mobileNumber"}, Schema.Required())
	assert.Len(t, RequiredFields(), 2)
	assert.Len(t, RequiredFields("deliverTo", "mobileNumber", "status"), 3)
}

func TestStatusNotDelivered_ChecksRequestStatus(t *testing.T) {
	delivered := &Request{
		Data:  payload.Payload{"status": "delivered"},
		Order: &domain.Order{Status: domain.StatusPending},
	}
	requireProblem(t, StatusNotDelivered(context.Background(), delivered), http.StatusBadRequest, "A delivered order cannot be changed")

	stored := &Request{
		Data:  payload.Payload{"status": "pending"},
		Order: &domain.Order{Status: domain.StatusDelivered},
	}
	require.NoError(t, StatusNotDelivered(context.Background(), stored))
}

func TestQuantitiesValid_AcceptsWholeFloats(t *testing.T) {
	req := &Request{Data: payload.Payload{"dishes": []any{
		map[string]any{"quantity": float64(3)},
		map[string]any{"quantity": 1},
		map[string]any{"quantity": float64(3000000000)},
	}}}
	require.NoError(t, QuantitiesValid(context.Background(), req))
}

func TestStatusPending(t *testing.T) {
	require.NoError(t, StatusPending(context.Background(), &Request{Order: &domain.Order{Status: domain.StatusPending}}))

	for _, s := range []domain.Status{domain.StatusPreparing, domain.StatusOutForDelivery, domain.StatusDelivered, ""} {
		err := StatusPending(context.Background(), &Request{Order: &domain.Order{Status: s}})
		requireProblem(t, err, http.StatusBadRequest, "An order cannot be deleted unless it is pending")
	}
}

func TestOrderExists_AttachesOrderAndPosition(t *testing.T) {
	svc, repo := seeded(t)
	_, err := svc.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)

	req := &Request{RouteID: repo.orders[1].ID}
	require.NoError(t, OrderExists(repo)(context.Background(), req))
	assert.Equal(t, 1, req.Position)
	assert.Equal(t, repo.orders[1].ID, req.Order.ID)
}

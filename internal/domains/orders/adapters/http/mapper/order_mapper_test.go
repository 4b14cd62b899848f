package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/melvan27/GrubDash/internal/domains/orders/domain"
)

func TestFromDomainOrder_EchoesDishEntries(t *testing.T) {
	order := &orderdomain.Order{
		ID:           "o1",
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Status:       orderdomain.StatusPending,
		Dishes: []orderdomain.LineItem{
			{Quantity: 2, Attributes: map[string]any{"id": "d1", "name": "Soup"}},
		},
	}

	body, err := json.Marshal(FromDomainOrder(order))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "o1",
		"deliverTo": "1 Main St",
		"mobileNumber": "555-0100",
		"status": "pending",
		"dishes": [{"id": "d1", "name": "Soup", "quantity": 2}]
	}`, string(body))
}

func TestFromDomainOrders_NeverNil(t *testing.T) {
	body, err := json.Marshal(FromDomainOrders(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestFromDomainOrder_OmitsEmptyStatus(t *testing.T) {
	order := &orderdomain.Order{
		ID:           "o2",
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Dishes:       []orderdomain.LineItem{{Quantity: 1}},
	}

	body, err := json.Marshal(FromDomainOrder(order))
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"status"`)
}

package mapper

import orderdomain "github.com/melvan27/GrubDash/internal/domains/orders/domain"

// Order is the wire representation of an order.
type Order struct {
	ID           string           `json:"id"`
	DeliverTo    string           `json:"deliverTo"`
	MobileNumber string           `json:"mobileNumber"`
	Status       string           `json:"status,omitempty"`
	Dishes       []map[string]any `json:"dishes"`
}

// FromDomainOrder converts a domain order to its wire shape. Each dish entry
// is echoed with the fields it was created with.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{Dishes: []map[string]any{}}
	}
	dishes := make([]map[string]any, 0, len(order.Dishes))
	for _, item := range order.Dishes {
		entry := make(map[string]any, len(item.Attributes)+1)
		for k, v := range item.Attributes {
			entry[k] = v
		}
		entry["quantity"] = item.Quantity
		dishes = append(dishes, entry)
	}
	return Order{
		ID:           order.ID,
		DeliverTo:    order.DeliverTo,
		MobileNumber: order.MobileNumber,
		Status:       order.Status.String(),
		Dishes:       dishes,
	}
}

// FromDomainOrders converts a list, always returning a non-nil slice.
func FromDomainOrders(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

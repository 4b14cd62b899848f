package application

import (
	"context"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/domains/orders/ports"
	"github.com/melvan27/GrubDash/internal/platform/ids"
	"github.com/melvan27/GrubDash/internal/shared/payload"
	"github.com/melvan27/GrubDash/internal/shared/pipeline"
)

// Service runs the order pipelines and their terminal handlers.
type Service struct {
	repo ports.Repository
	ids  ports.IDGenerator

	create pipeline.Pipeline[Request]
	read   pipeline.Pipeline[Request]
	update pipeline.Pipeline[Request]
	remove pipeline.Pipeline[Request]
}

type Option func(*Service)

// WithIDGenerator overrides the random id generator.
func WithIDGenerator(gen ports.IDGenerator) Option {
	return func(s *Service) {
		if gen != nil {
			s.ids = gen
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, ids: ids.NewRandom()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	exists := OrderExists(repo)
	s.create = pipeline.New(RequiredFields()...).
		Then(DishesPresent, QuantitiesValid)
	s.read = pipeline.New(exists)
	s.update = pipeline.New(exists).
		Then(RequiredFields("deliverTo", "mobileNumber", "status")...).
		Then(StatusValid, StatusNotDelivered, IDMatchesRoute, DishesPresent, QuantitiesValid)
	s.remove = pipeline.New(exists, StatusPending)
	return s
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateOrder(ctx context.Context, data payload.Payload) (*domain.Order, error) {
	if err := s.create.Run(ctx, &Request{Data: data}); err != nil {
		return nil, err
	}
	return s.store(ctx, s.ids.NewID(), data)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	req := &Request{RouteID: id}
	if err := s.read.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Order, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id string, data payload.Payload) (*domain.Order, error) {
	req := &Request{RouteID: id, Data: data}
	if err := s.update.Run(ctx, req); err != nil {
		return nil, err
	}
	err := req.Order.Apply(data.String("deliverTo"), data.String("mobileNumber"),
		domain.Status(data.String("status")), lineItems(data))
	if err != nil {
		return nil, mapError(err)
	}
	updated, err := s.repo.Update(ctx, req.Order)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	req := &Request{RouteID: id}
	if err := s.remove.Run(ctx, req); err != nil {
		return err
	}
	return mapError(s.repo.DeleteAt(ctx, req.Position, req.Order.ID))
}

// Import validates fixture records through the create pipeline and stores
// them, keeping any id they carry.
func (s *Service) Import(ctx context.Context, records []payload.Payload) (int, error) {
	imported := 0
	for i, record := range records {
		if err := s.create.Run(ctx, &Request{Data: record}); err != nil {
			return imported, fmt.Errorf("order fixture %d: %w", i, err)
		}
		id := record.String("id")
		if id == "" {
			id = s.ids.NewID()
		}
		if _, err := s.store(ctx, id, record); err != nil {
			return imported, fmt.Errorf("order fixture %d: %w", i, err)
		}
		imported++
	}
	return imported, nil
}

func (s *Service) store(ctx context.Context, id string, data payload.Payload) (*domain.Order, error) {
	order, err := domain.NewOrder(id, data.String("deliverTo"), data.String("mobileNumber"),
		domain.Status(data.String("status")), lineItems(data))
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// lineItems converts validated dish entries. Every field other than quantity
// is kept verbatim.
func lineItems(data payload.Payload) []domain.LineItem {
	entries, _ := data.Items("dishes")
	items := make([]domain.LineItem, 0, len(entries))
	for _, entry := range entries {
		obj, ok := payload.Object(entry)
		if !ok {
			continue
		}
		quantity, _ := obj.Int("quantity")
		attrs := obj.Clone()
		delete(attrs, "quantity")
		items = append(items, domain.LineItem{Quantity: quantity, Attributes: attrs})
	}
	return items
}

var _ ports.Service = (*Service)(nil)

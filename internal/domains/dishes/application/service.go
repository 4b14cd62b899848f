package application

import (
	"context"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	"github.com/melvan27/GrubDash/internal/platform/ids"
	"github.com/melvan27/GrubDash/internal/shared/payload"
	"github.com/melvan27/GrubDash/internal/shared/pipeline"
)

// Service runs the dish pipelines and their terminal handlers.
type Service struct {
	repo ports.Repository
	ids  ports.IDGenerator

	create pipeline.Pipeline[Request]
	read   pipeline.Pipeline[Request]
	update pipeline.Pipeline[Request]
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
	s.create = pipeline.New(RequiredFields()...).
		Then(PriceIsValid)
	s.read = pipeline.New(DishExists(repo))
	s.update = pipeline.New(DishExists(repo), IDMatchesRoute).
		Then(RequiredFields()...).
		Then(PriceIsValid)
	return s
}

func (s *Service) ListDishes(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateDish(ctx context.Context, data payload.Payload) (*domain.Dish, error) {
	req := &Request{Data: data}
	if err := s.create.Run(ctx, req); err != nil {
		return nil, err
	}
	return s.store(ctx, s.ids.NewID(), data)
}

func (s *Service) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	req := &Request{RouteID: id}
	if err := s.read.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Dish, nil
}

func (s *Service) UpdateDish(ctx context.Context, id string, data payload.Payload) (*domain.Dish, error) {
	req := &Request{RouteID: id, Data: data}
	if err := s.update.Run(ctx, req); err != nil {
		return nil, err
	}
	price, _ := data.Int("price")
	if err := req.Dish.Apply(data.String("name"), data.String("description"), price, data.String("image_url")); err != nil {
		return nil, mapError(err)
	}
	updated, err := s.repo.Update(ctx, req.Dish)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// Import validates fixture records through the create pipeline and stores
// them, keeping any id they carry.
func (s *Service) Import(ctx context.Context, records []payload.Payload) (int, error) {
	imported := 0
	for i, record := range records {
		if err := s.create.Run(ctx, &Request{Data: record}); err != nil {
			return imported, fmt.Errorf("dish fixture %d: %w", i, err)
		}
		id := record.String("id")
		if id == "" {
			id = s.ids.NewID()
		}
		if _, err := s.store(ctx, id, record); err != nil {
			return imported, fmt.Errorf("dish fixture %d: %w", i, err)
		}
		imported++
	}
	return imported, nil
}

func (s *Service) store(ctx context.Context, id string, data payload.Payload) (*domain.Dish, error) {
	price, _ := data.Int("price")
	dish, err := domain.NewDish(id, data.String("name"), data.String("description"), price, data.String("image_url"))
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, dish)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

var _ ports.Service = (*Service)(nil)

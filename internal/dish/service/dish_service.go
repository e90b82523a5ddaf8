package service

import (
	"context"

	"dishpatch/internal/domain"
	"dishpatch/internal/infrastructure/idgen"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) []domain.Dish
	Find(ctx context.Context, id string) (*domain.Dish, error)
	Append(ctx context.Context, dish domain.Dish) error
	Replace(ctx context.Context, dish domain.Dish) error
}

type DishService struct {
	repo   Repository
	ids    idgen.Generator
	logger *zap.Logger
}

func NewService(repo Repository, ids idgen.Generator, logger *zap.Logger) *DishService {
	return &DishService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

func (s *DishService) List(ctx context.Context) []domain.Dish {
	return s.repo.List(ctx)
}

func (s *DishService) Get(ctx context.Context, id string) (*domain.Dish, error) {
	return s.repo.Find(ctx, id)
}

func (s *DishService) Create(ctx context.Context, dish domain.Dish) (*domain.Dish, error) {
	dish.ID = s.ids.NextID()

	if err := s.repo.Append(ctx, dish); err != nil {
		return nil, err
	}

	s.logger.Info("dish created", zap.String("dishId", dish.ID), zap.String("name", dish.Name))
	return &dish, nil
}

func (s *DishService) Update(ctx context.Context, id string, dish domain.Dish) (*domain.Dish, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	dish.ID = current.ID
	if err := s.repo.Replace(ctx, dish); err != nil {
		return nil, err
	}

	s.logger.Info("dish updated", zap.String("dishId", dish.ID))
	return &dish, nil
}

package service

import (
	"context"
	"net/http"

	"dishpatch/internal/domain"
	apperrors "dishpatch/internal/errors"
	"dishpatch/internal/infrastructure/idgen"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) []domain.Order
	Find(ctx context.Context, id string) (*domain.Order, error)
	Append(ctx context.Context, order domain.Order) error
	Replace(ctx context.Context, order domain.Order) error
	Remove(ctx context.Context, id string) error
}

type OrderService struct {
	repo   Repository
	ids    idgen.Generator
	logger *zap.Logger
}

func NewService(repo Repository, ids idgen.Generator, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

func (s *OrderService) List(ctx context.Context) []domain.Order {
	return s.repo.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.Find(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	order.ID = s.ids.NextID()
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	if err := s.repo.Append(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("status", order.Status),
		zap.Int("dishCount", len(order.Dishes)),
	)
	return &order, nil
}

func (s *OrderService) Update(ctx context.Context, id string, order domain.Order) (*domain.Order, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// the stored status decides, not the requested one
	if current.Delivered() {
		return nil, apperrors.NewStateError(http.StatusBadRequest, "A delivered order cannot be changed")
	}

	order.ID = current.ID
	if err := s.repo.Replace(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order updated",
		zap.String("orderId", order.ID),
		zap.String("status", order.Status),
	)
	return &order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return err
	}

	if !current.Pending() {
		return apperrors.NewStateError(http.StatusNotFound, "An order cannot be deleted unless it is pending")
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.String("orderId", id))
	return nil
}

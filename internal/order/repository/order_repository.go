package repository

import (
	"context"
	"fmt"
	"sync"

	"dishpatch/internal/domain"
	"dishpatch/internal/errors"
)

type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) List(ctx context.Context) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (r *MemoryOrderRepository) Find(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := cloneOrder(r.orders[i])
			return &order, nil
		}
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf("Order does not exist: %s.", id))
}

func (r *MemoryOrderRepository) Append(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return fmt.Errorf("appending order: id %q already exists", order.ID)
		}
	}

	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

func (r *MemoryOrderRepository) Replace(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = cloneOrder(order)
			return nil
		}
	}

	return errors.NewNotFoundError(fmt.Sprintf("Order does not exist: %s.", order.ID))
}

func (r *MemoryOrderRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}

	return errors.NewNotFoundError(fmt.Sprintf("Order does not exist: %s.", id))
}

// cloneOrder copies the nested dish slice so callers never alias the store.
func cloneOrder(o domain.Order) domain.Order {
	dishes := make([]domain.OrderDish, len(o.Dishes))
	copy(dishes, o.Dishes)
	o.Dishes = dishes
	return o
}

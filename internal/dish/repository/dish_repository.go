package repository

import (
	"context"
	"fmt"
	"sync"

	"dishpatch/internal/domain"
	"dishpatch/internal/errors"
)

type MemoryDishRepository struct {
	mu     sync.Mutex
	dishes []domain.Dish
}

func NewMemoryDishRepository() *MemoryDishRepository {
	return &MemoryDishRepository{}
}

func (r *MemoryDishRepository) List(ctx context.Context) []domain.Dish {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Dish, len(r.dishes))
	copy(out, r.dishes)
	return out
}

func (r *MemoryDishRepository) Find(ctx context.Context, id string) (*domain.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.dishes {
		if r.dishes[i].ID == id {
			dish := r.dishes[i]
			return &dish, nil
		}
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf("Dish does not exist: %s.", id))
}

func (r *MemoryDishRepository) Append(ctx context.Context, dish domain.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.dishes {
		if r.dishes[i].ID == dish.ID {
			return fmt.Errorf("appending dish: id %q already exists", dish.ID)
		}
	}

	r.dishes = append(r.dishes, dish)
	return nil
}

func (r *MemoryDishRepository) Replace(ctx context.Context, dish domain.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.dishes {
		if r.dishes[i].ID == dish.ID {
			r.dishes[i] = dish
			return nil
		}
	}

	return errors.NewNotFoundError(fmt.Sprintf("Dish does not exist: %s.", dish.ID))
}

package dish

import (
	"dishpatch/internal/dish/controller"
	"dishpatch/internal/dish/repository"
	"dishpatch/internal/dish/service"
	"dishpatch/internal/infrastructure/idgen"

	"go.uber.org/zap"
)

func NewModule(ids idgen.Generator, logger *zap.Logger) *controller.DishController {
	repo := repository.NewMemoryDishRepository()
	svc := service.NewService(repo, ids, logger)
	return controller.NewController(svc, logger)
}

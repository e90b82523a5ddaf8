package order

import (
	"dishpatch/internal/infrastructure/idgen"
	"dishpatch/internal/order/controller"
	"dishpatch/internal/order/repository"
	"dishpatch/internal/order/service"

	"go.uber.org/zap"
)

func NewModule(ids idgen.Generator, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewMemoryOrderRepository()
	svc := service.NewService(repo, ids, logger)
	return controller.NewController(svc, logger)
}

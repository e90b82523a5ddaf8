package server

import (
	"fmt"
	"net/http"

	"dishpatch/internal/commons"
	dishctrl "dishpatch/internal/dish/controller"
	apperrors "dishpatch/internal/errors"
	orderctrl "dishpatch/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(dishes *dishctrl.DishController, orders *orderctrl.OrderController, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		commons.WriteError(logger, w, apperrors.NewNotFoundError(
			fmt.Sprintf("Not found: %s", req.URL.Path)))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		commons.WriteError(logger, w, apperrors.NewMethodNotAllowedError(
			fmt.Sprintf("%s not allowed for %s", req.Method, req.URL.Path)))
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		commons.WriteJSON(logger, w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/dishes", dishes.List)
	r.Post("/dishes", dishes.Create)
	r.Get("/dishes/{dishId}", dishes.Read)
	r.Put("/dishes/{dishId}", dishes.Update)

	r.Get("/orders", orders.List)
	r.Post("/orders", orders.Create)
	r.Get("/orders/{orderId}", orders.Read)
	r.Put("/orders/{orderId}", orders.Update)
	r.Delete("/orders/{orderId}", orders.Delete)

	return r
}

package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"dishpatch/internal/commons"
	"dishpatch/internal/domain"
	"dishpatch/internal/dto"
	apperrors "dishpatch/internal/errors"
	"dishpatch/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) []domain.Order
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id string, order domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderController struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders := c.service.List(r.Context())

	out := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toDTO(o))
	}

	commons.WriteData(c.logger, w, http.StatusOK, out)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteError(c.logger, w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	// no status step on create: an omitted status defaults to pending in the service
	if err := validation.Run(payloadSteps(req.Data)...); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	created, err := c.service.Create(r.Context(), toDomain(req.Data))
	if err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	commons.WriteData(c.logger, w, http.StatusCreated, toDTO(*created))
}

func (c *OrderController) Read(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := c.service.Get(r.Context(), orderID)
	if err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	commons.WriteData(c.logger, w, http.StatusOK, toDTO(*order))
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteError(c.logger, w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	// existence first: a bad id wins over a bad payload
	if _, err := c.service.Get(r.Context(), orderID); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	steps := append(
		[]validation.Step{validation.IDMatchesRoute("Order", req.Data.ID, orderID)},
		payloadSteps(req.Data)...,
	)
	steps = append(steps, statusIsValid(req.Data.Status))
	if err := validation.Run(steps...); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	updated, err := c.service.Update(r.Context(), orderID, toDomain(req.Data))
	if err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	commons.WriteData(c.logger, w, http.StatusOK, toDTO(*updated))
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	if err := c.service.Delete(r.Context(), orderID); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// payloadSteps is the write-payload chain shared by create and update.
func payloadSteps(p dto.OrderPayload) []validation.Step {
	return []validation.Step{
		validation.Require("Order", "deliverTo", p.DeliverTo != ""),
		validation.Require("Order", "mobileNumber", p.MobileNumber != ""),
		// a missing or null dishes field decodes to nil; [] stays non-nil
		validation.Require("Order", "dish", p.Dishes != nil),
		atLeastOneDish(p.Dishes),
		quantitiesAreValid(p.Dishes),
	}
}

func atLeastOneDish(dishes []dto.OrderDishPayload) validation.Step {
	return func() error {
		if len(dishes) == 0 {
			return apperrors.NewValidationError("Order must include at least one dish")
		}
		return nil
	}
}

func quantitiesAreValid(dishes []dto.OrderDishPayload) validation.Step {
	return func() error {
		for i, d := range dishes {
			if !validation.PositiveInteger(d.Quantity) {
				return apperrors.NewValidationError(fmt.Sprintf(
					"dish %d must have a quantity that is an integer greater than 0", i,
				))
			}
		}
		return nil
	}
}

func statusIsValid(status string) validation.Step {
	return func() error {
		if !domain.ValidOrderStatus(status) {
			return apperrors.NewValidationError(fmt.Sprintf(
				"Order must have a status of %s", strings.Join(domain.OrderStatuses, ", "),
			))
		}
		return nil
	}
}

func toDomain(p dto.OrderPayload) domain.Order {
	dishes := make([]domain.OrderDish, 0, len(p.Dishes))
	for _, d := range p.Dishes {
		dishes = append(dishes, domain.OrderDish{
			DishID:   d.DishID,
			Quantity: int(d.Quantity),
		})
	}

	return domain.Order{
		DeliverTo:    p.DeliverTo,
		MobileNumber: p.MobileNumber,
		Status:       p.Status,
		Dishes:       dishes,
	}
}

func toDTO(o domain.Order) dto.Order {
	dishes := make([]dto.OrderDish, 0, len(o.Dishes))
	for _, d := range o.Dishes {
		dishes = append(dishes, dto.OrderDish{
			DishID:   d.DishID,
			Quantity: d.Quantity,
		})
	}

	return dto.Order{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       o.Status,
		Dishes:       dishes,
	}
}

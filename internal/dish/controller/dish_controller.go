package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"dishpatch/internal/commons"
	"dishpatch/internal/domain"
	"dishpatch/internal/dto"
	apperrors "dishpatch/internal/errors"
	"dishpatch/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) []domain.Dish
	Get(ctx context.Context, id string) (*domain.Dish, error)
	Create(ctx context.Context, dish domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, id string, dish domain.Dish) (*domain.Dish, error)
}

type DishController struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *DishController {
	return &DishController{
		service: service,
		logger:  logger,
	}
}

func (c *DishController) List(w http.ResponseWriter, r *http.Request) {
	dishes := c.service.List(r.Context())

	out := make([]dto.Dish, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, toDTO(d))
	}

	commons.WriteData(c.logger, w, http.StatusOK, out)
}

func (c *DishController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteError(c.logger, w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

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

func (c *DishController) Read(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	dish, err := c.service.Get(r.Context(), dishID)
	if err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	commons.WriteData(c.logger, w, http.StatusOK, toDTO(*dish))
}

func (c *DishController) Update(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	var req dto.DishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteError(c.logger, w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	// existence first: a bad id wins over a bad payload
	if _, err := c.service.Get(r.Context(), dishID); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	steps := append(
		[]validation.Step{validation.IDMatchesRoute("Dish", req.Data.ID, dishID)},
		payloadSteps(req.Data)...,
	)
	if err := validation.Run(steps...); err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	updated, err := c.service.Update(r.Context(), dishID, toDomain(req.Data))
	if err != nil {
		commons.WriteError(c.logger, w, err)
		return
	}

	commons.WriteData(c.logger, w, http.StatusOK, toDTO(*updated))
}

// payloadSteps is the write-payload chain shared by create and update.
func payloadSteps(p dto.DishPayload) []validation.Step {
	return []validation.Step{
		validation.Require("Dish", "name", p.Name != ""),
		validation.Require("Dish", "description", p.Description != ""),
		validation.Require("Dish", "price", p.Price != 0),
		validation.Require("Dish", "image_url", p.ImageURL != ""),
		priceIsValid(p.Price),
		imageURLIsValid(p.ImageURL),
	}
}

func priceIsValid(price float64) validation.Step {
	return func() error {
		if !validation.PositiveInteger(price) {
			return apperrors.NewValidationError("Dish must have a price that is an integer greater than 0")
		}
		return nil
	}
}

func imageURLIsValid(raw string) validation.Step {
	return func() error {
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Scheme == "" {
			return apperrors.NewValidationError("Malformed URL in property 'image_url'.")
		}
		return nil
	}
}

func toDomain(p dto.DishPayload) domain.Dish {
	return domain.Dish{
		Name:        p.Name,
		Description: p.Description,
		Price:       int(p.Price),
		ImageURL:    p.ImageURL,
	}
}

func toDTO(d domain.Dish) dto.Dish {
	return dto.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

// Package handler exposes the order intake pipeline over HTTP.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenking/order-intake/internal/domain/order"
)

// Handler holds the HTTP endpoints, delegating all business logic to the
// order service.
type Handler struct {
	orders *order.Service
}

// NewHandler constructs a Handler around the given order service.
func NewHandler(orders *order.Service) *Handler {
	return &Handler{orders: orders}
}

// Routes returns the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/order", h.SubmitOrder)
	r.Get("/orders", h.ListOrders)
	return r
}

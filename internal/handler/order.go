package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/order-intake/internal/domain/order"
	"github.com/xenking/order-intake/internal/domain/pricing"
)

// submissionJSON mirrors the order form field names for JSON submissions.
// Quantities are JSON numbers; they are re-validated as non-negative
// integers by the domain layer.
type submissionJSON struct {
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Province     string      `json:"province"`
	PostalCode   string      `json:"postalCode"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Product1     json.Number `json:"product1"`
	Product2     json.Number `json:"product2"`
	Product3     json.Number `json:"product3"`
	DeliveryTime string      `json:"deliveryTime"`
}

// SubmitOrder accepts an order submission as a classic form post or as
// JSON, runs it through the intake pipeline, and responds with a receipt
// or an itemized error list.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	receipt, err := h.orders.Submit(r.Context(), sub)
	if err != nil {
		h.submitError(w, r, err)
		return
	}

	writeReceipt(w, receipt)
}

// ListOrders returns the full order history, oldest first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.History(r.Context())
	if err != nil {
		zctx.From(r.Context()).Error("List orders", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load order history")
		return
	}

	writeOrders(w, orders)
}

// submitError maps pipeline failures onto HTTP responses: field violations
// as a 400 with the full message list, business-rule rejections as a 422,
// everything else as a 500.
func (h *Handler) submitError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *order.ValidationError
	if errors.As(err, &verr) {
		writeErrorList(w, http.StatusBadRequest, verr.Messages)
		return
	}

	if errors.Is(err, pricing.ErrBelowMinimum) {
		writeError(w, http.StatusUnprocessableEntity, "Minimum purchase should be $10 or more.")
		return
	}

	var utErr *pricing.UnknownTierError
	if errors.As(err, &utErr) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid delivery time selected.")
		return
	}

	zctx.From(r.Context()).Error("Submit order", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "failed to save order")
}

// decodeSubmission reads the submission from a JSON body or an HTML form
// post, depending on Content-Type.
func decodeSubmission(r *http.Request) (order.Submission, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body submissionJSON
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return order.Submission{}, errors.Wrap(err, "decode json")
		}
		return order.Submission{
			Name:       body.Name,
			Address:    body.Address,
			City:       body.City,
			Province:   body.Province,
			PostalCode: body.PostalCode,
			Phone:      body.Phone,
			Email:      body.Email,
			Quantities: [order.NumProducts]string{
				body.Product1.String(),
				body.Product2.String(),
				body.Product3.String(),
			},
			DeliveryTier: body.DeliveryTime,
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return order.Submission{}, errors.Wrap(err, "parse form")
	}
	return order.Submission{
		Name:       r.PostFormValue("name"),
		Address:    r.PostFormValue("address"),
		City:       r.PostFormValue("city"),
		Province:   r.PostFormValue("province"),
		PostalCode: r.PostFormValue("postalCode"),
		Phone:      r.PostFormValue("phone"),
		Email:      r.PostFormValue("email"),
		Quantities: [order.NumProducts]string{
			r.PostFormValue("product1"),
			r.PostFormValue("product2"),
			r.PostFormValue("product3"),
		},
		DeliveryTier: r.PostFormValue("deliveryTime"),
	}, nil
}

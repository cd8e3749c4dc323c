package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-intake/internal/domain/order"
)

// writeJSON sends the encoded body with the given status. Encoding happens
// fully in memory first, so a failed handler never emits a torn response.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError responds with a single-message error body.
func writeError(w http.ResponseWriter, status int, message string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	writeJSON(w, status, &e)
}

// writeErrorList responds with the itemized validation error list, in
// field order.
func writeErrorList(w http.ResponseWriter, status int, messages []string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("errors")
	e.ArrStart()
	for _, msg := range messages {
		e.Str(msg)
	}
	e.ArrEnd()
	e.ObjEnd()
	writeJSON(w, status, &e)
}

// writeReceipt responds with the order receipt.
func writeReceipt(w http.ResponseWriter, rec *order.Receipt) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(rec.OrderID)
	e.FieldStart("items")
	e.ArrStart()
	for i := range rec.Quantities {
		e.ObjStart()
		e.FieldStart("product")
		e.Str(rec.ProductNames[i])
		e.FieldStart("quantity")
		e.Int(rec.Quantities[i])
		e.FieldStart("unitPrice")
		encodeMoney(&e, rec.UnitPrices[i])
		e.FieldStart("lineTotal")
		encodeMoney(&e, rec.LineTotals[i])
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("subtotal")
	encodeMoney(&e, rec.Subtotal)
	e.FieldStart("shipping")
	encodeMoney(&e, rec.Shipping)
	e.FieldStart("tax")
	encodeMoney(&e, rec.Tax)
	e.FieldStart("total")
	encodeMoney(&e, rec.Total)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// writeOrders responds with the order history array.
func writeOrders(w http.ResponseWriter, orders []order.Order) {
	var e jx.Encoder
	e.ArrStart()
	for i := range orders {
		encodeOrder(&e, &orders[i])
	}
	e.ArrEnd()
	writeJSON(w, http.StatusOK, &e)
}

func encodeOrder(e *jx.Encoder, o *order.Order) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(o.ID)
	e.FieldStart("name")
	e.Str(o.Name)
	e.FieldStart("address")
	e.Str(o.Address)
	e.FieldStart("city")
	e.Str(o.City)
	e.FieldStart("province")
	e.Str(o.Province)
	e.FieldStart("postalCode")
	e.Str(o.PostalCode)
	e.FieldStart("phone")
	e.Str(o.Phone)
	e.FieldStart("email")
	e.Str(o.Email)
	e.FieldStart("quantities")
	e.ArrStart()
	for _, q := range o.Quantities {
		e.Int(q)
	}
	e.ArrEnd()
	e.FieldStart("lineTotals")
	e.ArrStart()
	for _, lt := range o.LineTotals {
		encodeMoney(e, lt)
	}
	e.ArrEnd()
	e.FieldStart("taxAmount")
	encodeMoney(e, o.TaxAmount)
	e.FieldStart("shippingCharge")
	encodeMoney(e, o.ShippingCharge)
	e.FieldStart("totalAmount")
	encodeMoney(e, o.Total)
	e.FieldStart("createdAt")
	e.Str(o.CreatedAt.Format(time.RFC3339Nano))
	e.ObjEnd()
}

// encodeMoney emits a monetary value rounded to two places.
func encodeMoney(e *jx.Encoder, d decimal.Decimal) {
	e.Float64(d.Round(2).InexactFloat64())
}

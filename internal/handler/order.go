package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

// OrderHandler handles HTTP requests for the order queue.
type OrderHandler struct {
	svc *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{id}", h.GetOrder)
	r.Patch("/orders/{id}/status", h.UpdateStatus)
	r.Patch("/orders/{id}/items/{itemID}", h.UpdateItemQuantity)
	r.Delete("/orders/{id}/items/{itemID}", h.RemoveItem)
}

// orderView decorates an order snapshot with its display-only queue age.
type orderView struct {
	order.Order
	ElapsedMinutes int `json:"elapsed_minutes"`
}

func toView(o order.Order, now time.Time) orderView {
	return orderView{Order: o, ElapsedMinutes: order.ElapsedMinutes(&o, now)}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ProcessOrders }); !ok {
		return
	}

	q := r.URL.Query()
	f := order.Filter{Search: q.Get("search")}

	if s := q.Get("status"); s != "" && s != "all" {
		status, err := order.ParseStatus(s)
		if err != nil {
			respondError(w, err)
			return
		}
		f.Status = status
	}
	if t := q.Get("type"); t != "" && t != "all" {
		f.OrderType = order.OrderType(t)
	}
	if from := q.Get("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		f.From = parsed
	}
	if to := q.Get("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		f.To = parsed
	}

	now := time.Now()
	orders := h.svc.Filter(f)
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toView(o, now))
	}
	respondWithJSON(w, http.StatusOK, views)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ProcessOrders }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.svc.Select(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toView(*o, time.Now()))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ProcessOrders })
	if !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), id, status, claims.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toView(*updated, time.Now()))
}

func (h *OrderHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ProcessOrders }); !ok {
		return
	}

	orderID, itemID, ok := orderItemIDs(w, r)
	if !ok {
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateItemQuantity(r.Context(), orderID, itemID, body.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toView(*updated, time.Now()))
}

func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ProcessOrders }); !ok {
		return
	}

	orderID, itemID, ok := orderItemIDs(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.RemoveItem(r.Context(), orderID, itemID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toView(*updated, time.Now()))
}

func orderItemIDs(w http.ResponseWriter, r *http.Request) (orderID, itemID uuid.UUID, ok bool) {
	orderID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, uuid.Nil, false
	}
	itemID, err = uuid.FromString(chi.URLParam(r, "itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, uuid.Nil, false
	}
	return orderID, itemID, true
}

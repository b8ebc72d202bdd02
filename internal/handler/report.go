package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/branch"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/report"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

// ReportHandler serves sales aggregations over the order store's snapshot.
type ReportHandler struct {
	orders   *order.Store
	branches *branch.Store
}

func NewReportHandler(orders *order.Store, branches *branch.Store) *ReportHandler {
	return &ReportHandler{orders: orders, branches: branches}
}

func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/summary", h.Summary)
	r.Get("/reports/revenue", h.Revenue)
	r.Get("/reports/top-items", h.TopItems)
	r.Get("/reports/branches", h.Branches)
	r.Get("/branches", h.ListBranches)
}

func reportFilter(w http.ResponseWriter, r *http.Request) (report.Filter, bool) {
	q := r.URL.Query()
	var f report.Filter

	if v := q.Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
			return f, false
		}
		f.From = parsed
	}
	if v := q.Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid to date, want YYYY-MM-DD")
			return f, false
		}
		// Inclusive upper bound: the whole day counts.
		f.To = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if v := q.Get("type"); v != "" && v != "all" {
		f.OrderType = order.OrderType(v)
	}
	if v := q.Get("payment"); v != "" && v != "all" {
		f.PaymentMethod = order.PaymentMethod(v)
	}
	if v := q.Get("branch"); v != "" && v != "all" {
		id, err := uuid.FromString(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid branch id")
			return f, false
		}
		f.BranchID = id
	}
	return f, true
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ViewReports }); !ok {
		return
	}
	f, ok := reportFilter(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, report.Summarize(h.orders.List(), f))
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ViewReports }); !ok {
		return
	}
	f, ok := reportFilter(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, report.RevenueByDay(h.orders.List(), f))
}

func (h *ReportHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ViewReports }); !ok {
		return
	}
	f, ok := reportFilter(w, r)
	if !ok {
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	respondWithJSON(w, http.StatusOK, report.TopItems(h.orders.List(), f, limit))
}

func (h *ReportHandler) Branches(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ViewReports }); !ok {
		return
	}
	f, ok := reportFilter(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, report.BranchTotals(h.orders.List(), f))
}

func (h *ReportHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.branches.List())
}

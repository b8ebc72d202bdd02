package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/menu"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type MenuHandler struct {
	svc *menu.Service
}

func NewMenuHandler(svc *menu.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu/categories", h.ListCategories)
	r.Post("/menu/categories", h.CreateCategory)
	r.Put("/menu/categories/{id}", h.UpdateCategory)
	r.Delete("/menu/categories/{id}", h.DeleteCategory)

	r.Get("/menu/items", h.ListItems)
	r.Post("/menu/items", h.CreateItem)
	r.Put("/menu/items/{id}", h.UpdateItem)
	r.Delete("/menu/items/{id}", h.DeleteItem)
	r.Post("/menu/items/{id}/duplicate", h.DuplicateItem)
	r.Post("/menu/items/availability", h.SetAvailability)
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.svc.Categories())
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	var c menu.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCategory(c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *MenuHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var c menu.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = id

	updated, err := h.svc.UpdateCategory(c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.DeleteCategory(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := menu.Filter{
		Search:        q.Get("search"),
		OnlyAvailable: q.Get("available") == "true",
	}
	if c := q.Get("category"); c != "" && c != "all" {
		id, err := uuid.FromString(c)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		f.CategoryID = id
	}
	if b := q.Get("branch"); b != "" && b != "all" {
		id, err := uuid.FromString(b)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid branch id")
			return
		}
		f.BranchID = id
	}

	respondWithJSON(w, http.StatusOK, h.svc.ListItems(f))
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	var it menu.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateItem(it)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var it menu.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	it.ID = id

	updated, err := h.svc.UpdateItem(it)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.DeleteItem(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) DuplicateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	dup, err := h.svc.Duplicate(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, dup)
}

func (h *MenuHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageMenu }); !ok {
		return
	}

	var body struct {
		IDs       []uuid.UUID `json:"ids"`
		Available bool        `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetAvailability(body.IDs, body.Available)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

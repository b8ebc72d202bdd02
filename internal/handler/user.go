package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)
	r.Post("/users/status", h.SetUsersStatus)
}

type userRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	BranchID uuid.UUID `json:"branch_id"`
	Status   string    `json:"status"`
	Password string    `json:"password"`
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	q := r.URL.Query()
	f := user.Filter{Search: q.Get("search")}
	if v := q.Get("role"); v != "" && v != "all" {
		role, err := user.ParseRole(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Role = role
	}
	if v := q.Get("branch"); v != "" && v != "all" {
		id, err := uuid.FromString(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid branch id")
			return
		}
		f.BranchID = id
	}
	if v := q.Get("status"); v != "" && v != "all" {
		f.Status = user.UserStatus(v)
	}

	users, err := h.svc.ListUsers(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	var body userRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	role, err := user.ParseRole(body.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	u := &user.User{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Role:     role,
		BranchID: body.BranchID,
		Status:   user.UserStatus(body.Status),
	}
	created, err := h.svc.CreateUser(r.Context(), u, body.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	existing, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	var body userRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	role, err := user.ParseRole(body.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing.Name = body.Name
	existing.Email = body.Email
	existing.Phone = body.Phone
	existing.Role = role
	existing.BranchID = body.BranchID
	if body.Status != "" {
		existing.Status = user.UserStatus(body.Status)
	}

	if err := h.svc.UpdateUser(r.Context(), existing, body.Password); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, existing)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) SetUsersStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, func(p user.Permissions) bool { return p.ManageUsers }); !ok {
		return
	}

	var body struct {
		IDs    []uuid.UUID `json:"ids"`
		Status string      `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetUsersStatus(r.Context(), body.IDs, user.UserStatus(body.Status)); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

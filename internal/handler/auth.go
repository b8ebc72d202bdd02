package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

// Authenticator is the login surface. *auth.Service satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}

type AuthHandler struct {
	svc Authenticator
}

func NewAuthHandler(svc Authenticator) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email == "" || body.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, u, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"token":       token,
		"user":        u,
		"permissions": u.Permissions(),
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/branch"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/menu"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

// respondWithError sends a JSON error payload.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, menu.ErrCategoryNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, branch.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, menu.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, menu.ErrCategoryNotEmpty),
		errors.Is(err, order.ErrDuplicateOrderID),
		errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, order.ErrRoleNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	respondWithError(w, mapErrorToStatusCode(err), err.Error())
}

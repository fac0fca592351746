package httpapi

import (
	"errors"
	"net/http"

	"github.com/akarpenko/warehouse-api/internal/server/services"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !ReadJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.observeLogin(false)
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}

	h.metrics.observeLogin(true)
	WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     res.Token,
		User:      res.User,
		ExpiresAt: res.ExpiresAt,
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}

	profile, err := h.auth.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		// a valid token whose subject no longer exists is treated the same
		// as no token at all
		if errors.Is(err, services.ErrUserNotFound) {
			WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/items"
)

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	list, err := h.inventory.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "inventory list failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) addInventory(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !ReadJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	claims, _ := ClaimsFromContext(r.Context())

	created, err := h.inventory.Add(r.Context(), &models.InventoryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Location: req.Location,
	}, claims.Email)
	if err != nil {
		h.logger.Error(r.Context(), "inventory add failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "item id must be an integer")
		return
	}

	claims, _ := ClaimsFromContext(r.Context())

	if err := h.inventory.Remove(r.Context(), id, claims.Email); err != nil {
		if errors.Is(err, items.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "item not found")
			return
		}
		h.logger.Error(r.Context(), "inventory delete failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inventory.Stats(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "stats failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

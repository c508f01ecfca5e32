package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"atelie-store/internal/model"
	"atelie-store/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles the per-user cart mirror endpoints.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the wire shape of a cart read.
type cartResponse struct {
	Items []model.CartItem `json:"items"`
}

// Handle routes /cart/{userId} and /cart/{userId}/sync requests.
func (h *CartHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/cart/")
	if rest == "" || rest == r.URL.Path {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "user ID is required", h.logger)
		return
	}

	if userID, ok := strings.CutSuffix(rest, "/sync"); ok {
		h.sync(w, r, userID)
		return
	}

	userID := rest
	if strings.Contains(userID, "/") {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "not found", h.logger)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, userID)
	case http.MethodDelete:
		h.clear(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
	}
}

// get handles GET /cart/{userId} requests.
func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, userID string) {
	items, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to get cart", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items})
}

// sync handles POST /cart/{userId}/sync requests.
func (h *CartHandler) sync(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}
	if userID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "user ID is required", h.logger)
		return
	}

	var items []model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	synced, err := h.service.Sync(r.Context(), userID, items)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: synced})
}

// clear handles DELETE /cart/{userId} requests.
func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.service.Clear(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to clear cart", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

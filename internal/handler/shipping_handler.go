package handler

import (
	"encoding/json"
	"net/http"

	"atelie-store/internal/model"
	"atelie-store/internal/service"

	"github.com/rs/zerolog"
)

// ShippingHandler handles shipping quote requests.
type ShippingHandler struct {
	service service.ShippingService
	logger  zerolog.Logger
}

// NewShippingHandler creates a new shipping handler.
func NewShippingHandler(service service.ShippingService, logger zerolog.Logger) *ShippingHandler {
	return &ShippingHandler{
		service: service,
		logger:  logger.With().Str("handler", "shipping").Logger(),
	}
}

// Quote handles POST /shipping/quote requests.
func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.ShippingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	envelope, configMissing := h.service.Quote(r.Context(), req)
	if configMissing {
		// Still a 200: the sentinel provider tells the storefront to show
		// a maintenance notice rather than "no coverage".
		writeJSON(w, http.StatusOK, service.ConfigMissingQuote{
			Provider: model.ConfigMissingProvider,
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope)
}

package handler

import (
	"encoding/json"
	"net/http"

	"atelie-store/internal/coupon"
	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// CouponHandler handles coupon validation requests from the checkout form.
type CouponHandler struct {
	validator coupon.Validator
	logger    zerolog.Logger
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(validator coupon.Validator, logger zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		validator: validator,
		logger:    logger.With().Str("handler", "coupon").Logger(),
	}
}

// validateRequest is the wire shape of POST /coupons/validate.
type validateRequest struct {
	Code     string  `json:"code"`
	UserID   string  `json:"userId"`
	Subtotal float64 `json:"subtotal"`
}

// Validate handles POST /coupons/validate requests. Failures are returned
// with their domain code so the storefront can display them inline.
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "coupon code is required", h.logger)
		return
	}

	c, err := h.validator.Validate(r.Context(), req.Code)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

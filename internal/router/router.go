package router

import (
	"net/http"
	"strings"

	"atelie-store/internal/handler"
	"atelie-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	cartHandler *handler.CartHandler,
	shippingHandler *handler.ShippingHandler,
	checkoutHandler *handler.CheckoutHandler,
	couponHandler *handler.CouponHandler,
	tenantID string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no tenant check required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Per-user cart mirror: /cart/{userId} and /cart/{userId}/sync
	mux.HandleFunc("/cart/", cartHandler.Handle)

	mux.HandleFunc("/shipping/quote", shippingHandler.Quote)
	mux.HandleFunc("/checkout/process", checkoutHandler.Process)
	mux.HandleFunc("/coupons/validate", couponHandler.Validate)

	// Order lookup: /orders/{id}
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/orders/") == "" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		checkoutHandler.GetOrder(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> TenantAuth
	var h http.Handler = mux
	h = middleware.TenantAuth(tenantID, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

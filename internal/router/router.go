package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/restu-food/api/internal/cart"
	"github.com/restu-food/api/internal/catalog"
	"github.com/restu-food/api/internal/config"
	"github.com/restu-food/api/internal/handler"
	mw "github.com/restu-food/api/internal/middleware"
	"github.com/restu-food/api/internal/offers"
	"github.com/restu-food/api/internal/order"
	"github.com/shopspring/decimal"
)

// New creates a Chi router with all storefront routes wired up. The
// status update seam is the only authenticated route; everything else is
// an anonymous browsing session.
func New(
	cfg *config.Config,
	catalogStore *catalog.Store,
	cartStore *cart.Store,
	orderStore *order.Store,
	offerList []offers.Offer,
	deliveryFee, taxRate decimal.Decimal,
) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (stubbed: any credentials are accepted)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// Menu
	menuHandler := handler.NewMenuHandler(catalogStore)
	r.Route("/menu", menuHandler.RegisterRoutes)

	// Carts + checkout (nested under the same /carts scope)
	cartHandler := handler.NewCartHandler(cartStore, catalogStore)
	checkoutHandler := handler.NewCheckoutHandler(cartStore, orderStore, deliveryFee, taxRate)
	r.Route("/carts", func(r chi.Router) {
		cartHandler.RegisterRoutes(r)
		checkoutHandler.RegisterRoutes(r)
	})

	// Orders
	orderHandler := handler.NewOrderHandler(orderStore)
	r.Route("/orders", func(r chi.Router) {
		orderHandler.RegisterRoutes(r)

		// Status updates (the order-management seam) require a session token.
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate(cfg.JWTSecret))
			orderHandler.RegisterManagementRoutes(r)
		})
	})

	// Offers
	offersHandler := handler.NewOffersHandler(offerList)
	offersHandler.RegisterRoutes(r)

	log.Println("Router initialized with all handlers")
	return r
}

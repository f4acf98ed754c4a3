package main

import (
	"log"
	"net/http"

	"github.com/restu-food/api/internal/cart"
	"github.com/restu-food/api/internal/catalog"
	"github.com/restu-food/api/internal/config"
	"github.com/restu-food/api/internal/offers"
	"github.com/restu-food/api/internal/order"
	"github.com/restu-food/api/internal/router"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	deliveryFee, err := decimal.NewFromString(cfg.DeliveryFee)
	if err != nil {
		log.Fatalf("invalid DELIVERY_FEE %q: %v", cfg.DeliveryFee, err)
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		log.Fatalf("invalid TAX_RATE %q: %v", cfg.TaxRate, err)
	}

	catalogStore := catalog.NewStore(catalog.DefaultItems(), catalog.DefaultCategories())
	cartStore := cart.NewStore()
	orderStore := order.NewStore()

	r := router.New(cfg, catalogStore, cartStore, orderStore, offers.DefaultOffers(), deliveryFee, taxRate)

	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

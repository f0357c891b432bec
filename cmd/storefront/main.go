package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"
	"github.com/smartmarket/storefront/internal/auth"
	"github.com/smartmarket/storefront/internal/cart"
	"github.com/smartmarket/storefront/internal/catalog"
	"github.com/smartmarket/storefront/internal/notify"
	"github.com/smartmarket/storefront/internal/port"
	"github.com/smartmarket/storefront/internal/session"
	"github.com/smartmarket/storefront/pkg/config"
	"github.com/smartmarket/storefront/pkg/logger"
	"golang.org/x/text/currency"
)

// Demo run: sign in, browse the marketplace with a filter, fill a cart and
// log the order summary.
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx := context.Background()

	var sessions port.SessionRepository
	if cfg.RedisURL != "" {
		redisSessions, err := session.NewRedisRepository(cfg.RedisURL)
		if err != nil {
			log.Error("connect to redis", "error", err)
			os.Exit(1)
		}
		sessions = redisSessions
	} else {
		sessions = session.NewMemoryRepository()
	}

	notifier := notify.NewSlogNotifier(log)
	authSvc := auth.NewService(sessions, notifier)

	var provider port.CatalogProvider = catalog.NewFixtureProvider()

	if user, ok, err := authSvc.Restore(ctx); err != nil {
		log.Error("restore session", "error", err)
	} else if ok {
		log.Info("session restored", "user", user.Email)
	}

	result, err := authSvc.Login(ctx, "user@example.com", "password")
	if err != nil {
		log.Error("login", "error", err)
		os.Exit(1)
	}
	if !result.Success {
		log.Error("login rejected", "message", result.Message)
		os.Exit(1)
	}

	products, err := provider.Products(ctx)
	if err != nil {
		log.Error("load products", "error", err)
		os.Exit(1)
	}

	listing := catalog.Query(products, catalog.FilterSpec{
		Category: catalog.CategoryOrganic,
		PriceRange: &catalog.PriceRange{
			Min: decimal.Zero,
			Max: decimal.NewFromInt(100),
		},
		Sort: catalog.SortPriceLow,
	})

	log.Info("marketplace query", "category", "organic", "results", len(listing))

	store := cart.NewStore(currency.USD)
	for _, p := range listing {
		if err := store.AddItem(p, 2); err != nil {
			log.Error("add to cart", "product", p.ID, "error", err)
		}
	}

	summary := cart.Summarize(store.Subtotal())

	log.Info("order summary",
		"items", store.ItemCount(),
		"subtotal", summary.Subtotal.String(),
		"shipping", summary.Shipping.String(),
		"tax", summary.Tax.String(),
		"total", summary.Total.String(),
	)

	if err := authSvc.Logout(ctx); err != nil {
		log.Error("logout", "error", err)
	}
}

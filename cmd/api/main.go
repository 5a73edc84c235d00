package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mavazidev/mavazi-backend/api/graph"
	"github.com/mavazidev/mavazi-backend/api/routes"
	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/cart"
	"github.com/mavazidev/mavazi-backend/internal/catalog"
	"github.com/mavazidev/mavazi-backend/internal/delivery"
	"github.com/mavazidev/mavazi-backend/internal/reviews"
	"github.com/mavazidev/mavazi-backend/internal/settlement"
	"github.com/mavazidev/mavazi-backend/internal/social"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/config"
	"github.com/mavazidev/mavazi-backend/pkg/db"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/metrics"
	"github.com/mavazidev/mavazi-backend/pkg/migrate"
	"github.com/mavazidev/mavazi-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gormDB := dbClient.DB()
	customerRepo := accounts.NewCustomerRepository(gormDB)
	vendorRepo := accounts.NewVendorRepository(gormDB)
	adminRepo := accounts.NewAdminRepository(gormDB)
	productRepo := catalog.NewRepository(gormDB)
	purchaseRepo := cart.NewRepository(gormDB)
	reviewRepo := reviews.NewRepository(gormDB)
	ledgerRepo := transactions.NewRepository(gormDB)

	settlementMetrics := metrics.NewSettlementMetrics(prometheus.DefaultRegisterer)

	accountsService, err := accounts.NewService(accounts.ServiceParams{
		CustomerRepo: customerRepo,
		VendorRepo:   vendorRepo,
		AdminRepo:    adminRepo,
	})
	requireService(logg, "accounts", err)

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo:        productRepo,
		Cache:       redisClient,
		Logger:      logg,
		CacheTTL:    cfg.Catalog.ListingCacheTTL,
		VendorCheck: accountsService,
	})
	requireService(logg, "catalog", err)

	cartService, err := cart.NewService(cart.ServiceParams{
		Repo:      purchaseRepo,
		Customers: accountsService,
		Products:  catalogService,
	})
	requireService(logg, "cart", err)

	settlementService, err := settlement.NewService(settlement.ServiceParams{
		DB:           dbClient,
		Purchases:    purchaseRepo,
		Products:     productRepo,
		Customers:    customerRepo,
		Vendors:      vendorRepo,
		Transactions: ledgerRepo,
		Logger:       logg,
		Metrics:      settlementMetrics,
		Catalog:      catalogService,
		MaxRetries:   cfg.Settlement.MaxRetries,
	})
	requireService(logg, "settlement", err)

	deliveryService, err := delivery.NewService(delivery.ServiceParams{
		DB:           dbClient,
		Purchases:    purchaseRepo,
		Vendors:      vendorRepo,
		Transactions: ledgerRepo,
		Logger:       logg,
		Metrics:      settlementMetrics,
		MaxRetries:   cfg.Settlement.MaxRetries,
	})
	requireService(logg, "delivery", err)

	reviewsService, err := reviews.NewService(reviews.ServiceParams{
		Repo:      reviewRepo,
		Customers: accountsService,
		Products:  catalogService,
	})
	requireService(logg, "reviews", err)

	socialService, err := social.NewService(social.ServiceParams{
		Customers: customerRepo,
		Vendors:   vendorRepo,
		Products:  productRepo,
	})
	requireService(logg, "social", err)

	transactionsService, err := transactions.NewService(ledgerRepo)
	requireService(logg, "transactions", err)

	resolver, err := graph.NewResolver(graph.ResolverParams{
		Accounts:     accountsService,
		Catalog:      catalogService,
		Cart:         cartService,
		Settlement:   settlementService,
		Delivery:     deliveryService,
		Reviews:      reviewsService,
		Social:       socialService,
		Transactions: transactionsService,
		Logger:       logg,
	})
	requireService(logg, "graphql resolver", err)

	schema, err := resolver.Schema()
	if err != nil {
		logg.Error(context.Background(), "failed to build graphql schema", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			transactionsService,
			graph.NewHandler(schema, !cfg.App.IsProd()),
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err != nil {
		logg.Error(context.Background(), "failed to create "+name+" service", err)
		os.Exit(1)
	}
}

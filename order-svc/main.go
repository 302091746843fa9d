package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sustieats/config"
	httpapi "sustieats/order-svc/internal/api/http"
	"sustieats/order-svc/internal/domain"
	"sustieats/order-svc/internal/service"
	"sustieats/order-svc/internal/storage"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Str("service", "order-svc").Logger()
}

// buildHandler wires the services on top of store. cache and publisher may be nil.
func buildHandler(cfg *config.Config, store *storage.FileStore, cache service.CatalogCache, publisher service.OrderPublisher, log zerolog.Logger) *httpapi.Handler {
	defaultAdmin := domain.Admin{ID: cfg.AdminID, Name: "admin", Password: cfg.AdminPassword}

	catalog := service.NewCatalogService(store, store, cache, log)
	accounts := service.NewAccountService(store, store, store, store, defaultAdmin, log)
	orders := service.NewOrderService(store, store, store, publisher, log)
	loyalty := service.NewLoyaltyManager(store, store, publisher, log)
	shop := service.NewShopService(catalog, loyalty, log)
	receipts := service.NewReceiptService(store, service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL})

	return httpapi.NewHandler(catalog, accounts, orders, shop, receipts, log)
}

// seedDemo fills the owner, restaurant and customer tables when they are empty.
func seedDemo(store *storage.FileStore, log zerolog.Logger) error {
	owners, err := store.LoadOwners()
	if err != nil {
		return err
	}
	if len(owners) == 0 {
		if err := store.SaveOwners([]*domain.Owner{
			{ID: 200, Name: "DemoOwnerA", Password: "owner", Active: true},
			{ID: 201, Name: "DemoOwnerB", Password: "ownerb", Active: true},
		}); err != nil {
			return err
		}
		log.Info().Msg("seeded demo owners")
	}

	restaurants, err := store.LoadRestaurants()
	if err != nil {
		return err
	}
	if len(restaurants) == 0 {
		if err := store.SaveRestaurants([]domain.Restaurant{
			{
				ID:      1,
				Name:    "Demo Deli",
				OwnerID: 200,
				Address: domain.Address{Line1: "42 Campus Rd", City: "Karachi", PostalCode: "75350"},
				Menu: []domain.MenuItem{
					{ID: 1, Name: "Falafel", Price: decimal.NewFromInt(120), Available: true},
					{ID: 2, Name: "Chai", Price: decimal.NewFromInt(40), Available: true},
				},
			},
			{
				ID:      2,
				Name:    "Campus Grill",
				OwnerID: 201,
				Address: domain.Address{Line1: "10 Student Ln", City: "Karachi", PostalCode: "75351"},
				Menu: []domain.MenuItem{
					{ID: 3, Name: "Wrap", Price: decimal.NewFromInt(220), Available: true},
				},
			},
		}); err != nil {
			return err
		}
		log.Info().Msg("seeded demo restaurants")
	}

	customers, err := store.LoadCustomers()
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		c := domain.NewCustomer()
		c.ID = 100
		c.Name = "Shaheer Q"
		c.Email = "shaheer@example.com"
		c.Phone = "0300-0000000"
		c.Password = "pass"
		if err := store.SaveCustomers([]*domain.Customer{c}); err != nil {
			return err
		}
		log.Info().Msg("seeded demo customer")
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}
	log := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewFileStore(cfg.DataDir, log)
	if cfg.SeedDemo {
		if err := seedDemo(store, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	var (
		cache service.CatalogCache
		rdb   *redis.Client
	)
	if cfg.RedisEnabled() {
		rdb, err = config.InitRedis(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init redis")
		}
		defer rdb.Close()
		cache = storage.NewRedisCatalogCache(rdb, cfg.CacheTTL)
	}

	var publisher service.OrderPublisher
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := buildHandler(cfg, store, cache, publisher, log)
	if rdb != nil && cfg.KafkaEnabled() {
		stats := storage.NewRedisStatsStore(rdb)
		reader := config.NewKafkaReader(cfg)
		defer reader.Close()
		go service.NewOrderEventConsumer(reader, stats, log).Start(ctx)
		handler.Stats = service.NewStatsService(stats, store, store)
	}

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, httpapi.NewRouter(handler), log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

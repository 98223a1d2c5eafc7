package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/converse98/pizzeria-pos/internal/cart"
	"github.com/converse98/pizzeria-pos/internal/catalog"
	"github.com/converse98/pizzeria-pos/internal/events"
	h "github.com/converse98/pizzeria-pos/internal/http"
	"github.com/converse98/pizzeria-pos/internal/service"
	"github.com/converse98/pizzeria-pos/internal/submit"
)

type Config struct {
	HTTPPort        string
	CatalogDB       string // empty means in-memory catalog
	MigrationsPath  string
	RedisAddr       string // empty disables the catalog cache
	RedisPassword   string
	KafkaBrokers    string // empty disables order events
	OrderLogURL     string
	OrderLogAPIKey  string
	UserID          string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CatalogDB:       getEnv("CATALOG_DB", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		OrderLogURL:     getEnv("ORDER_LOG_URL", "http://localhost:9090/rest/v1/orders"),
		OrderLogAPIKey:  getEnv("ORDER_LOG_API_KEY", ""),
		UserID:          getEnv("USER_ID", "local-user"),
		RequestTimeout:  60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Catalog: sqlite when configured, the built-in menu otherwise.
	var store catalog.Store
	if cfg.CatalogDB != "" {
		repo, err := catalog.NewRepository(cfg.CatalogDB)
		if err != nil {
			log.Fatalf("Failed to open catalog database: %v", err)
		}
		defer repo.Close()
		if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run catalog migrations: %v", err)
		}
		if err := repo.Seed(ctx, catalog.DefaultProducts(), catalog.DefaultExtras()); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		store = repo
		log.Printf("Catalog loaded from %s", cfg.CatalogDB)
	} else {
		store = catalog.NewDefaultMemory()
		log.Printf("Catalog loaded from built-in menu")
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		store = catalog.NewCache(store, redisClient)
		log.Printf("Catalog cache enabled at %s", cfg.RedisAddr)
	}

	var publisher service.Publisher
	if cfg.KafkaBrokers != "" {
		p := events.NewPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer p.Close()
		publisher = p
		log.Printf("Order events enabled via %s", cfg.KafkaBrokers)
	}

	submitter := submit.NewSubmitter(cfg.OrderLogURL, cfg.OrderLogAPIKey, nil)
	cartStore := cart.NewStore()
	svc := service.NewOrdering(store, cartStore, submitter, publisher, cfg.UserID)

	productHandler := h.NewProductHandler(svc)
	cartHandler := h.NewCartHandler(svc)
	orderHandler := h.NewOrderHandler(svc)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
		})
		r.Post("/orders", orderHandler.Register)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "pizzeria-pos"),
		ReadTimeout:  10 * time.Second,
		// Order registration holds the response through the full retry
		// sequence, which can run well past the usual write timeout.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Pizzeria POS starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

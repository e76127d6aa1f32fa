package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"

	"lumiere-backend/config"
	"lumiere-backend/internal/delivery/http/middleware"
	v1 "lumiere-backend/internal/delivery/http/v1"
	"lumiere-backend/internal/infrastructure/cache"
	"lumiere-backend/internal/infrastructure/localstore"
	"lumiere-backend/internal/infrastructure/notify"
	"lumiere-backend/internal/repository/memory"
	"lumiere-backend/internal/usecase"
	"lumiere-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Load the static catalog snapshot
	catalog, err := memory.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}
	log.Info().
		Int("products", len(catalog.Products)).
		Int("categories", len(catalog.Categories)).
		Msg("Catalog loaded")

	catalogRepo := memory.NewCatalogRepository(catalog.Products, catalog.Categories)

	// Initialize the durable collection store
	store, err := localstore.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize local store")
	}

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	notifier := notify.NewLogNotifier()

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)

	// Cart Module
	cartUC := usecase.NewCartUsecase(catalogRepo, localstore.NewCartStore(store), notifier, cfg.MaxCartQuantity)
	cartHandler := v1.NewCartHandler(cartUC)

	// Wishlist Module
	wishlistUC := usecase.NewWishlistUsecase(catalogRepo, localstore.NewWishlistStore(store), notifier)
	wishlistHandler := v1.NewWishlistHandler(wishlistUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/featured", catalogHandler.GetFeatured)
	mux.HandleFunc("GET /api/v1/products/new-arrivals", catalogHandler.GetNewArrivals)
	mux.HandleFunc("GET /api/v1/products/search", catalogHandler.SearchProducts)
	mux.HandleFunc("GET /api/v1/product/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProductDetails)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/categories/{idOrSlug}", catalogHandler.GetCategory)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddToCart)
	mux.HandleFunc("PATCH /api/v1/cart/items/{id}", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveFromCart)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/refresh", cartHandler.RefreshCart)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", wishlistHandler.AddToWishlist)
	mux.HandleFunc("GET /api/v1/wishlist/{productId}", wishlistHandler.CheckWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", wishlistHandler.RemoveFromWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist", wishlistHandler.ClearWishlist)

	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,            // requests per second
		100,           // burst
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/safrapanel/backend/src/config"
	"github.com/username/safrapanel/backend/src/handlers"
	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			config.Cfg.AllowedOrigin: true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag, Content-Disposition")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Safrapanel backend server starting...")

	logger.L.Info("Initializing caches...")
	datasetCache := cache.New(cache.NoExpiration, config.Cfg.CacheCleanup)
	reportCache := cache.New(config.Cfg.ReportCacheTTL, config.Cfg.CacheCleanup)

	logger.L.Info("Initializing services and handlers...")
	aggregationProcessor := processors.NewAggregationProcessor()
	contractProcessor := processors.NewContractProcessor()
	freightProcessor := processors.NewFreightProcessor()
	saldoProcessor := processors.NewSaldoProcessor()

	datasetService := services.NewDatasetService(config.Cfg.DataDir, datasetCache)
	reportService := services.NewReportService(
		datasetService, aggregationProcessor, contractProcessor,
		freightProcessor, saldoProcessor,
		reportCache, config.Cfg.ReportCacheTTL,
	)
	exportService := services.NewExportService(reportService)
	uploadService := services.NewUploadService(config.Cfg.DataDir, datasetService, reportService)

	seasonHandler := handlers.NewSeasonHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	freightHandler := handlers.NewFreightHandler(reportService, exportService)
	saldoHandler := handlers.NewSaldoHandler(reportService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/seasons", seasonHandler.HandleListSeasons)
	apiRouter.HandleFunc("GET /api/seasons/{id}/dashboard", dashboardHandler.HandleGetDashboard)
	apiRouter.HandleFunc("GET /api/seasons/{id}/freight", freightHandler.HandleGetFreight)
	apiRouter.HandleFunc("GET /api/seasons/{id}/freight/export", freightHandler.HandleExportFreight)
	apiRouter.HandleFunc("GET /api/seasons/{id}/saldo", saldoHandler.HandleGetSaldo)
	apiRouter.HandleFunc("POST /api/seasons/{id}/upload", uploadHandler.HandleUploadDataset)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Safrapanel Backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}

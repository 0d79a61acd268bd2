package main

import (
	"ClinicDesk/cache"
	"ClinicDesk/config"
	"ClinicDesk/database"
	"ClinicDesk/routes"
	"ClinicDesk/store"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"
)

func main() {
	// Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), config.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the cache utility
	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	// Create the desk store and restore the last-known-good snapshot so the
	// desk has data to show even if the first fetch below fails.
	deskStore := store.NewAppointmentStore(cache)
	if err := deskStore.Restore(context.Background()); err != nil {
		log.Printf("no appointment snapshot restored: %v", err)
	}

	handler, appointmentService := routes.SetupRoutes(cache, config, db, deskStore)

	// Prime the desk with fresh data, then keep it in sync.
	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	defer cancelRefresh()
	if err := appointmentService.Refresh(refreshCtx); err != nil {
		log.Printf("initial appointment fetch failed, serving snapshot: %v", err)
	}
	appointmentService.StartRefreshLoop(refreshCtx, config.RefreshInterval)

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":8930",
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("Starting server on :8930")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	cancelRefresh()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	refreshInterval := 30 * time.Second
	if raw := os.Getenv("REFRESH_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 1 {
			return nil, errors.New("invalid REFRESH_INTERVAL_SECONDS value")
		}
		refreshInterval = time.Duration(seconds) * time.Second
	}

	fetchLimit := 500
	if raw := os.Getenv("APPOINTMENT_FETCH_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, errors.New("invalid APPOINTMENT_FETCH_LIMIT value")
		}
		fetchLimit = limit
	}

	return &config.AppConfig{
		DBURL:           dbURL,
		RedisAddress:    redisAddress,
		BearerToken:     bearerToken,
		AllowedOrigins:  origins,
		RefreshInterval: refreshInterval,
		FetchLimit:      fetchLimit,
	}, nil
}

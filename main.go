package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "mortgage-agent/http"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	scheduleRepo := repository.NewScheduleRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr, 24*time.Hour)
	} else {
		cache = repository.NewMockCache()
	}

	amortizationService := service.NewAmortizationService(scheduleRepo, cache)
	scheduleHandler := httpLayer.NewScheduleHandler(amortizationService)
	paymentHandler := httpLayer.NewPaymentHandler(amortizationService)

	termSolverService := service.NewTermSolverService(amortizationService)
	adjustTermHandler := httpLayer.NewAdjustTermHandler(termSolverService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)

	mux := http.NewServeMux()
	mux.Handle(
		"/mortgage/payment",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(paymentHandler.CalculatePayment),
		),
	)

	mux.Handle(
		"/mortgage/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.GenerateSchedule),
		),
	)

	mux.Handle(
		"/mortgage/adjust-term",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(adjustTermHandler.AdjustTerm),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

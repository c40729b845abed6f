// Package main is the entry point for the travel booking service.
//
//	@title						Travel Booking API
//	@version					1.0.0
//	@description				A travel booking storefront backend offering flight search, vacation packages, and a multi-step booking wizard with passenger validation and fare calculation.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyway/travel-booking-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skyway/travel-booking-system/docs"

	"github.com/skyway/travel-booking-system/internal/adapter/catalog"
	bookinghttp "github.com/skyway/travel-booking-system/internal/adapter/http"
	"github.com/skyway/travel-booking-system/internal/adapter/http/middleware"
	"github.com/skyway/travel-booking-system/internal/adapter/payment"
	"github.com/skyway/travel-booking-system/internal/config"
	"github.com/skyway/travel-booking-system/internal/infrastructure/logger"
	"github.com/skyway/travel-booking-system/internal/infrastructure/ratelimit"
	"github.com/skyway/travel-booking-system/internal/infrastructure/retry"
	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
	"github.com/skyway/travel-booking-system/internal/session"
	"github.com/skyway/travel-booking-system/internal/usecase"
)

const (
	shutdownTimeout      = 10 * time.Second
	sessionPurgeInterval = 5 * time.Minute
	limiterIdleWindow    = 10 * time.Minute
)

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-booking",
	})
	logger.SetGlobal(appLog)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()

	// Catalog adapters over the seed inventory files
	flights := catalog.NewFlightCatalog(cfg.Inventory.FlightsPath)
	packages := catalog.NewPackageCatalog(cfg.Inventory.PackagesPath)

	// Payment gateway (sandbox)
	gateway := payment.NewSandboxGateway(payment.Config{
		Latency:         cfg.Payment.Latency,
		FailSubmissions: cfg.Payment.FailSubmissions,
		Retry:           retry.GatewayConfig,
	}, clock, appLog.Logger)

	// Booking sessions with a background sweep for expired wizards
	sessions := session.New[*usecase.Wizard](cfg.Booking.SessionTTL, clock)
	stopPurge := startSessionPurge(sessions, appLog)
	defer stopPurge()

	// Use cases
	searchUC := usecase.NewFlightSearchUseCase(flights)
	packageUC := usecase.NewPackageUseCase(packages, gateway, appLog.Logger)
	bookingUC := usecase.NewBookingUseCase(flights, gateway, sessions, usecase.BookingConfig{
		TaxRate: cfg.Booking.TaxRate,
		Clock:   clock,
	}, appLog.Logger)

	// Echo instance with middleware and routes
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var limiter *ratelimit.ClientLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewClientLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Burst)
		stopLimiterPurge := startLimiterPurge(limiter, appLog)
		defer stopLimiterPurge()
	}
	middleware.Setup(e, appLog.Logger, limiter)

	bookinghttp.RegisterRoutes(e, bookinghttp.Handlers{
		Flights:  bookinghttp.NewFlightHandler(searchUC, cfg.App.LoginURL),
		Packages: bookinghttp.NewPackageHandler(packageUC, cfg.App.LoginURL),
		Bookings: bookinghttp.NewBookingHandler(bookingUC, cfg.App.LoginURL),
	}, cfg.App.LoginURL)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// startSessionPurge sweeps expired booking sessions on a fixed interval.
// The returned function stops the sweep.
func startSessionPurge(sessions *session.Store[*usecase.Wizard], log *logger.Logger) func() {
	ticker := time.NewTicker(sessionPurgeInterval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if removed := sessions.PurgeExpired(); removed > 0 {
					log.Debug().Int("removed", removed).Msg("Purged expired booking sessions")
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

// startLimiterPurge evicts rate limiter buckets for clients idle longer than
// limiterIdleWindow. The returned function stops the sweep.
func startLimiterPurge(limiter *ratelimit.ClientLimiter, log *logger.Logger) func() {
	ticker := time.NewTicker(limiterIdleWindow)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if removed := limiter.PurgeIdle(limiterIdleWindow); removed > 0 {
					log.Debug().Int("removed", removed).Msg("Evicted idle rate limiter clients")
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveReviewHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/approve_review"
	bookingEventsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/booking_events"
	createBookingHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/delete_booking"
	deleteReviewHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/delete_review"
	getAvailableSlotsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/get_booking"
	getRatingStatsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/get_rating_stats"
	getStatsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/get_stats"
	listAllReviewsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/list_all_reviews"
	listBookingsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/list_bookings"
	listReviewsHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/list_reviews"
	submitReviewHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/submit_review"
	updateBookingStatusHandler "github.com/outpost-paintball/booking-service/internal/api/handlers/update_booking_status"
	"github.com/outpost-paintball/booking-service/internal/api/middleware"
	"github.com/outpost-paintball/booking-service/internal/config"
	"github.com/outpost-paintball/booking-service/internal/infra/notify"
	bookingRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/booking"
	reviewRepo "github.com/outpost-paintball/booking-service/internal/infra/storage/review"
	"github.com/outpost-paintball/booking-service/internal/occupancy"
	bookingsService "github.com/outpost-paintball/booking-service/internal/service/bookings"
	reviewsService "github.com/outpost-paintball/booking-service/internal/service/reviews"
	createBookingUC "github.com/outpost-paintball/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/outpost-paintball/booking-service/internal/usecase/get_available_slots"
	"github.com/outpost-paintball/booking-service/pkg/dbmetrics"
	"github.com/outpost-paintball/booking-service/pkg/logger"
	"github.com/outpost-paintball/booking-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var (
		bookingRepository *bookingRepo.Repository
		reviewRepository  *reviewRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
	}

	// Background workers: the notify listener turns postgres LISTEN/NOTIFY
	// events into hub broadcasts; the occupancy index re-fetches the full
	// booking snapshot on every broadcast.
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	hub := notify.NewHub()

	var notifyCounter notify.EventCounter
	if cfg.Metrics.Enabled {
		notifyCounter = metricsCollector.NotifyEventsTotal
	}

	listener := notify.NewListener(
		cfg.Database.DSN(),
		cfg.Notify.Channel,
		time.Duration(cfg.Notify.PingIntervalSec)*time.Second,
		hub,
		log,
		notifyCounter,
	)
	go func() {
		if err := listener.Run(bgCtx); err != nil {
			log.Error("Notify listener stopped: %v", err)
		}
	}()

	var onRefresh func(outcome string)
	if cfg.Metrics.Enabled {
		onRefresh = func(outcome string) {
			metricsCollector.OccupancyRefreshesTotal.WithLabelValues(outcome).Inc()
		}
	}

	occupancyIndex := occupancy.NewIndex(bookingRepository, log, onRefresh)
	indexEvents, cancelIndexSub := hub.Subscribe()
	defer cancelIndexSub()
	go occupancyIndex.Run(bgCtx, indexEvents)

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(occupancyIndex, log)

	var sseGauge bookingEventsHandler.SubscriberGauge
	if cfg.Metrics.Enabled {
		sseGauge = metricsCollector.SSESubscribers
	}

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookingEvents := bookingEventsHandler.NewHandler(hub, sseGauge, log)
	submitReview := submitReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	getRatingStats := getRatingStatsHandler.NewHandler(reviewSvc, log)

	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	listAllReviews := listAllReviewsHandler.NewHandler(reviewSvc, log)
	approveReview := approveReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/events", bookingEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", submitReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews/stats", getRatingStats.Handle).Methods(http.MethodGet)

	// Admin routes, bearer token required
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reviews", listAllReviews.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{reviewId}/approval", approveReview.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}

	bgCancel()
	close(stopMetricsCh)

	log.Info("Server stopped")
}

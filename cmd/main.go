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

	cancelBookingHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/create_booking"
	createGuestRequestHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/create_guest_request"
	createRoomTypeHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/create_room_type"
	getAvailabilityHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_booking"
	getBookingRequestsHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_booking_requests"
	getBookingStatisticsHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_booking_statistics"
	getHotelBookingsHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_hotel_bookings"
	getHotelRequestsHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_hotel_requests"
	getRoomTypesHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_room_types"
	getTravelerBookingsHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/get_traveler_bookings"
	updateBookingStatusHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/update_booking_status"
	updateGuestRequestHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/update_guest_request"
	updateRoomTypeHandler "github.com/travelhub/hotel-booking-service/internal/api/handlers/update_room_type"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/config"
	bookingRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/booking"
	guestRequestRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/guestrequest"
	roomTypeRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/roomtype"
	hotelServiceClient "github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	travelerServiceClient "github.com/travelhub/hotel-booking-service/internal/integrations/travelerservice"
	bookingsService "github.com/travelhub/hotel-booking-service/internal/service/bookings"
	guestRequestsService "github.com/travelhub/hotel-booking-service/internal/service/guestrequests"
	roomTypesService "github.com/travelhub/hotel-booking-service/internal/service/roomtypes"
	createBookingUC "github.com/travelhub/hotel-booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/travelhub/hotel-booking-service/internal/usecase/get_availability"
	"github.com/travelhub/hotel-booking-service/pkg/dbmetrics"
	"github.com/travelhub/hotel-booking-service/pkg/logger"
	"github.com/travelhub/hotel-booking-service/pkg/metrics"
	"github.com/travelhub/hotel-booking-service/pkg/simpletxmanager"
	"github.com/travelhub/hotel-booking-service/pkg/txmanager"
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

	log.Info("Starting hotel-booking-service...")
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

	hotelClient := hotelServiceClient.NewClient(
		cfg.HotelService.URL,
		time.Duration(cfg.HotelService.Timeout)*time.Second,
		log,
	)
	travelerClient := travelerServiceClient.NewClient(
		cfg.TravelerService.URL,
		time.Duration(cfg.TravelerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (HotelService=%s timeout=%ds, TravelerService=%s timeout=%ds)",
		cfg.HotelService.URL, cfg.HotelService.Timeout, cfg.TravelerService.URL, cfg.TravelerService.Timeout)

	var (
		bookingRepository      *bookingRepo.Repository
		roomTypeRepository     *roomTypeRepo.Repository
		guestRequestRepository *guestRequestRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomTypeRepository = roomTypeRepo.NewRepository(wrappedDB)
		guestRequestRepository = guestRequestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomTypeRepository = roomTypeRepo.NewRepository(db)
		guestRequestRepository = guestRequestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		hotelClient,
		log,
	)
	roomTypeSvc := roomTypesService.NewService(
		roomTypeRepository,
		hotelClient,
		log,
	)
	guestRequestSvc := guestRequestsService.NewService(
		guestRequestRepository,
		bookingRepository,
		hotelClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomTypeRepository,
		hotelClient,
		travelerClient,
		txMgr,
		cfg.Booking.MaxGuests,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		roomTypeRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getTravelerBookings := getTravelerBookingsHandler.NewHandler(bookingSvc, log)
	getHotelBookings := getHotelBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBookingStatistics := getBookingStatisticsHandler.NewHandler(bookingSvc, log)
	getRoomTypes := getRoomTypesHandler.NewHandler(roomTypeSvc, log)
	createRoomType := createRoomTypeHandler.NewHandler(roomTypeSvc, log)
	updateRoomType := updateRoomTypeHandler.NewHandler(roomTypeSvc, log)
	createGuestRequest := createGuestRequestHandler.NewHandler(guestRequestSvc, log)
	getBookingRequests := getBookingRequestsHandler.NewHandler(guestRequestSvc, log)
	getHotelRequests := getHotelRequestsHandler.NewHandler(guestRequestSvc, log)
	updateGuestRequest := updateGuestRequestHandler.NewHandler(guestRequestSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/hotels/{hotelId}/room-types", getRoomTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Protected routes (X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/hotels/{hotelId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}/bookings", getHotelBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/travelers/{travelerId}/bookings", getTravelerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}/booking-statistics", getBookingStatistics.Handle).Methods(http.MethodGet)

	// Room type management (hotel owners)
	protected.HandleFunc("/hotels/{hotelId}/room-types", createRoomType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-types/{roomTypeId}", updateRoomType.Handle).Methods(http.MethodPut)

	// Guest requests
	protected.HandleFunc("/bookings/{bookingId}/requests", createGuestRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/requests", getBookingRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}/requests", getHotelRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", updateGuestRequest.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

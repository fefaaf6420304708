package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	approveBookingHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/approve_booking"
	createBookingHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/create_booking"
	createEquipmentHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/create_equipment"
	deleteEquipmentHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/delete_equipment"
	findConflictsHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/find_conflicts"
	getAvailabilityHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_booking"
	getEquipmentHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_equipment"
	getMyEquipmentHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_my_equipment"
	getOwnerRequestsHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_owner_requests"
	getUserBookingsHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/get_user_bookings"
	listEquipmentHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/list_equipment"
	listNotificationsHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/list_notifications"
	markNotificationReadHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/mark_notification_read"
	rejectBookingHandler "github.com/m04kA/AgriRent-BookingService/internal/api/handlers/reject_booking"
	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/config"
	bookingRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	notificationRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/notification"
	userServiceClient "github.com/m04kA/AgriRent-BookingService/internal/integrations/userservice"
	"github.com/m04kA/AgriRent-BookingService/internal/scheduler"
	bookingsService "github.com/m04kA/AgriRent-BookingService/internal/service/bookings"
	equipmentService "github.com/m04kA/AgriRent-BookingService/internal/service/equipment"
	notificationsService "github.com/m04kA/AgriRent-BookingService/internal/service/notifications"
	approveBookingUC "github.com/m04kA/AgriRent-BookingService/internal/usecase/approve_booking"
	createBookingUC "github.com/m04kA/AgriRent-BookingService/internal/usecase/create_booking"
	findConflictsUC "github.com/m04kA/AgriRent-BookingService/internal/usecase/find_conflicts"
	getAvailabilityUC "github.com/m04kA/AgriRent-BookingService/internal/usecase/get_availability"
	rejectBookingUC "github.com/m04kA/AgriRent-BookingService/internal/usecase/reject_booking"
	"github.com/m04kA/AgriRent-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AgriRent-BookingService/pkg/logger"
	"github.com/m04kA/AgriRent-BookingService/pkg/metrics"
	"github.com/m04kA/AgriRent-BookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AgriRent-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (если включены). Интерфейсы остаются nil при выключенных метриках
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
		bookingMetrics   createBookingUC.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	equipmentRepository := equipmentRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)

	// Интеграции
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	equipmentSvc := equipmentService.NewService(equipmentRepository, bookingRepository, txMgr, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		equipmentRepository,
		bookingRepository,
		notificationRepository,
		userClient,
		txMgr,
		bookingMetrics,
		log,
	)
	approveBookingUseCase := approveBookingUC.NewUseCase(
		equipmentRepository,
		bookingRepository,
		notificationRepository,
		txMgr,
		bookingMetrics,
		log,
	)
	rejectBookingUseCase := rejectBookingUC.NewUseCase(
		equipmentRepository,
		bookingRepository,
		notificationRepository,
		txMgr,
		bookingMetrics,
		log,
	)
	findConflictsUseCase := findConflictsUC.NewUseCase(equipmentRepository, bookingRepository, txMgr, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(equipmentRepository, bookingRepository, txMgr, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(rejectBookingUseCase, log)
	findConflicts := findConflictsHandler.NewHandler(findConflictsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerRequests := getOwnerRequestsHandler.NewHandler(bookingSvc, log)
	createEquipment := createEquipmentHandler.NewHandler(equipmentSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(equipmentSvc, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)
	getMyEquipment := getMyEquipmentHandler.NewHandler(equipmentSvc, log)
	deleteEquipment := deleteEquipmentHandler.NewHandler(equipmentSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log.Zap()))
	r.Use(middleware.AccessLog(log.Zap()))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог техники
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}", getEquipment.Handle).Methods(http.MethodGet)

	// Календарь занятости и проверка пересечений
	api.HandleFunc("/equipment/{equipmentId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}/conflicts", findConflicts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Техника владельца ---
	protected.HandleFunc("/equipment", createEquipment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/{equipmentId}", deleteEquipment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/me/equipment", getMyEquipment.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/requests", getOwnerRequests.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/users/me/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// Фоновые задачи
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs, err = scheduler.New(cfg.Scheduler, notificationSvc, log)
		if err != nil {
			log.Fatal("Failed to initialize scheduler: %v", err)
		}
		jobs.Start()
	}

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if jobs != nil {
		jobs.Stop()
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

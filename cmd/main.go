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

	createAppointmentHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/create_appointment"
	createSlotHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/delete_slot"
	getAppointmentsHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/get_available_slots"
	updateStatusHandler "github.com/dsmirn0v/AQS-BookingService/internal/api/handlers/update_appointment_status"
	"github.com/dsmirn0v/AQS-BookingService/internal/api/middleware"
	"github.com/dsmirn0v/AQS-BookingService/internal/config"
	appointmentRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/appointment"
	slotRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/slot"
	notifyServiceClient "github.com/dsmirn0v/AQS-BookingService/internal/integrations/notifyservice"
	appointmentsService "github.com/dsmirn0v/AQS-BookingService/internal/service/appointments"
	createAppointmentUC "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_appointment"
	createSlotUC "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_slot"
	deleteSlotUC "github.com/dsmirn0v/AQS-BookingService/internal/usecase/delete_slot"
	getAvailableSlotsUC "github.com/dsmirn0v/AQS-BookingService/internal/usecase/get_available_slots"
	"github.com/dsmirn0v/AQS-BookingService/pkg/dbmetrics"
	"github.com/dsmirn0v/AQS-BookingService/pkg/logger"
	"github.com/dsmirn0v/AQS-BookingService/pkg/metrics"
	"github.com/dsmirn0v/AQS-BookingService/pkg/simpletxmanager"
	"github.com/dsmirn0v/AQS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting AQS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса уведомлений (подтверждения бронирований, best effort)
	notifier := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository *slotRepo.Repository
		apptRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		slotRepository = slotRepo.NewRepository(wrappedDB)
		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		slotRepository = slotRepo.NewRepository(db)
		apptRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	apptSvc := appointmentsService.NewService(apptRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotRepository,
		apptRepository,
		notifier,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, txMgr, log)
	deleteSlotUseCase := deleteSlotUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(deleteSlotUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(apptSvc, log)
	updateStatus := updateStatusHandler.NewHandler(apptSvc, log)

	// Аутентификация: сервис только валидирует токены внешнего auth-сервиса
	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для бронирования
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования: токен опционален, гостевые бронирования разрешены
	api.Handle("/appointments",
		auth.Optional(http.HandlerFunc(createAppointment.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют валидный токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Require)

	// --- Слоты (роль STAFF/ADMIN проверяется в handler-ах) ---
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Клиент видит только свои бронирования, staff/admin - все
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (staff/admin)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

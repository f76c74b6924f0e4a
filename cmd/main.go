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

	bookingFlowHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/booking_flow"
	cancelReservationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/cancel_reservation"
	createPrestationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/create_prestation"
	createReservationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/create_reservation"
	deletePrestationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/delete_prestation"
	getAvailableSlotsHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/get_available_slots"
	getDayReservationsHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/get_day_reservations"
	getPlanningHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/get_planning"
	getPrestationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/get_prestation"
	getReservationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/get_reservation"
	listPrestationsHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/list_prestations"
	updatePlanningHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/update_planning"
	updatePrestationHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/update_prestation"
	updateReservationScheduleHandler "github.com/zohoustanley/barbeshop/internal/api/handlers/update_reservation_schedule"
	"github.com/zohoustanley/barbeshop/internal/api/middleware"
	"github.com/zohoustanley/barbeshop/internal/config"
	planningRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/planning"
	prestationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/prestation"
	reservationRepo "github.com/zohoustanley/barbeshop/internal/infra/storage/reservation"
	identityClient "github.com/zohoustanley/barbeshop/internal/integrations/identity"
	mailerClient "github.com/zohoustanley/barbeshop/internal/integrations/mailer"
	availabilityService "github.com/zohoustanley/barbeshop/internal/service/availability"
	planningService "github.com/zohoustanley/barbeshop/internal/service/planning"
	prestationsService "github.com/zohoustanley/barbeshop/internal/service/prestations"
	reservationsService "github.com/zohoustanley/barbeshop/internal/service/reservations"
	bookingFlowUC "github.com/zohoustanley/barbeshop/internal/usecase/booking_flow"
	createReservationUC "github.com/zohoustanley/barbeshop/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/zohoustanley/barbeshop/internal/usecase/get_available_slots"
	"github.com/zohoustanley/barbeshop/pkg/dbmetrics"
	"github.com/zohoustanley/barbeshop/pkg/logger"
	"github.com/zohoustanley/barbeshop/pkg/metrics"
	"github.com/zohoustanley/barbeshop/pkg/simpletxmanager"
	"github.com/zohoustanley/barbeshop/pkg/txmanager"
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

	log.Info("Starting Barbeshop booking service...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс салона: все расчеты расписания ведутся в нем
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}
	log.Info("Business timezone: %s", cfg.Business.Timezone)

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

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Identity=%s timeout=%ds, Mailer=%s timeout=%ds)",
		cfg.Identity.URL, cfg.Identity.Timeout, cfg.Mailer.URL, cfg.Mailer.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		prestationRepository  *prestationRepo.Repository
		planningRepository    *planningRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		prestationRepository = prestationRepo.NewRepository(wrappedDB)
		planningRepository = planningRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB).WithMetrics(metricsCollector)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		prestationRepository = prestationRepo.NewRepository(db)
		planningRepository = planningRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(reservationRepository, log)
	planningSvc := planningService.NewService(planningRepository, identity, txMgr, log)
	prestationsSvc := prestationsService.NewService(prestationRepository, identity, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, identity, availabilitySvc, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		prestationRepository,
		reservationRepository,
		planningSvc,
		identity,
		location,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		prestationRepository,
		reservationRepository,
		planningSvc,
		identity,
		mailer,
		txMgr,
		location,
		createReservationUC.NotificationConfig{
			SalonName:  cfg.Business.SalonName,
			OwnerName:  cfg.Business.OwnerName,
			OwnerEmail: cfg.Business.OwnerEmail,
		},
		log,
	)

	bookingFlowUseCase := bookingFlowUC.NewUseCase(
		prestationRepository,
		identity,
		getAvailableSlotsUseCase,
		availabilitySvc,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	bookingFlow := bookingFlowHandler.NewHandler(bookingFlowUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getDayReservations := getDayReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationSchedule := updateReservationScheduleHandler.NewHandler(reservationsSvc, log)
	getPlanning := getPlanningHandler.NewHandler(planningSvc, log)
	updatePlanning := updatePlanningHandler.NewHandler(planningSvc, log)
	listPrestations := listPrestationsHandler.NewHandler(prestationsSvc, log)
	getPrestation := getPrestationHandler.NewHandler(prestationsSvc, log)
	createPrestation := createPrestationHandler.NewHandler(prestationsSvc, log)
	updatePrestation := updatePrestationHandler.NewHandler(prestationsSvc, log)
	deletePrestation := deletePrestationHandler.NewHandler(prestationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, клиентская часть)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/prestations", listPrestations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prestations/{prestationId}", getPrestation.Handle).Methods(http.MethodGet)

	// Расписание доступных слотов для услуги
	api.HandleFunc("/prestations/{prestationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Пошаговый мастер бронирования
	api.HandleFunc("/booking-flow", bookingFlow.Handle).Methods(http.MethodGet)

	// Нормализованные настройки расписания салона
	api.HandleFunc("/planning", getPlanning.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, админская часть)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Получение записи по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Перенос записи (дата, время, мастер, статус)
	protected.HandleFunc("/reservations/{reservationId}/schedule",
		updateReservationSchedule.Handle).Methods(http.MethodPatch)

	// Записи на день для планнинга
	protected.HandleFunc("/planning/days/{date}/reservations",
		getDayReservations.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Обновление настроек расписания
	protected.HandleFunc("/planning", updatePlanning.Handle).Methods(http.MethodPut)

	// Управление каталогом услуг
	protected.HandleFunc("/prestations", createPrestation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/prestations/{prestationId}", updatePrestation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/prestations/{prestationId}", deletePrestation.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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

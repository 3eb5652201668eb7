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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addHolidayHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/add_holiday"
	cancelReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_availability"
	deleteBookingConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_booking_config"
	getBookingConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking_config"
	getMaxDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_max_date"
	getReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_reservation"
	listHolidaysHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_holidays"
	listReservationsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_reservations"
	removeHolidayHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/remove_holiday"
	reserveBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reserve_booking"
	setCapacityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/set_capacity"
	updateBookingConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_booking_config"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine"
	holidayCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/holiday"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	holidayRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/holiday"
	lockoutRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/lockout"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	configService "github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
	reservationsService "github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
	getMaxDateUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_max_date"
	reserveBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reserve_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Репозитории и transaction manager работают через обертку с метриками, если они включены
	var (
		executor   dbmetrics.DBExecutor = db
		txBeginner txmanager.TxBeginner = txmanager.SQLBeginner{DB: db}
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txBeginner = wrappedDB
		log.Info("Database metrics collection started")
	}

	txMgr := txmanager.NewTransactionManager(txBeginner, cfg.Engine.TxRetries)

	configRepository := configRepo.NewRepository(executor)
	holidayRepository := holidayRepo.NewRepository(executor)
	lockoutRepository := lockoutRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	// Redis для кэша праздников (опционально)
	var redisClient holidayCache.RedisClient
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, holiday calendar will be read from database: %v", err)
		} else {
			log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
		}
		cancel()

		redisClient = client
	}

	holidays := holidayCache.NewCache(
		redisClient,
		holidayRepository,
		time.Duration(cfg.Redis.TTL)*time.Second,
		cfg.Holidays.ConsiderGlobal,
		metricsCollector,
		log,
	)

	var refresher *holidayCache.Refresher
	if cfg.Holidays.RefreshCron != "" {
		refresher, err = holidayCache.NewRefresher(cfg.Holidays.RefreshCron, holidays, log)
		if err != nil {
			log.Fatal("Failed to create holiday refresher: %v", err)
		}
		refresher.Start()
	}

	// Движок доступности
	evaluator := engine.NewEvaluator(engine.WithDefaultLoopCap(cfg.Engine.MaxDateLoopCap))

	requestValidator, err := configService.NewRequestValidator()
	if err != nil {
		log.Fatal("Failed to create request validator: %v", err)
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(configRepository, lockoutRepository, requestValidator, log)
	holidaysSvc := holidaysService.NewService(holidayRepository, holidays, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		lockoutRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		configRepository,
		holidays,
		lockoutRepository,
		evaluator,
		metricsCollector,
		log,
	)
	getMaxDateUseCase := getMaxDateUC.NewUseCase(
		configRepository,
		evaluator,
		metricsCollector,
		log,
	)
	reserveBookingUseCase := reserveBookingUC.NewUseCase(
		configRepository,
		reservationRepository,
		lockoutRepository,
		holidays,
		evaluator,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getMaxDate := getMaxDateHandler.NewHandler(getMaxDateUseCase, log)
	reserveBooking := reserveBookingHandler.NewHandler(reserveBookingUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getBookingConfig := getBookingConfigHandler.NewHandler(configSvc, log)
	updateBookingConfig := updateBookingConfigHandler.NewHandler(configSvc, log)
	deleteBookingConfig := deleteBookingConfigHandler.NewHandler(configSvc, log)
	setCapacity := setCapacityHandler.NewHandler(configSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(holidaysSvc, log)
	addHoliday := addHolidayHandler.NewHandler(holidaysSvc, log)
	removeHoliday := removeHolidayHandler.NewHandler(holidaysSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, metricsCollector, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Доступность ---
	// Проверка доступности диапазона дат
	api.HandleFunc("/products/{productId}/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Минимальная и максимальная дата бронирования
	api.HandleFunc("/products/{productId}/max-date", getMaxDate.Handle).Methods(http.MethodGet)

	// --- Резервирования ---
	api.HandleFunc("/products/{productId}/reservations", reserveBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/products/{productId}/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}/reservations/{reservationId}/cancel",
		cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Конфигурация бронирования товара ---
	api.HandleFunc("/products/{productId}/config", getBookingConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{productId}/config", updateBookingConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/products/{productId}/config", deleteBookingConfig.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/products/{productId}/capacity", setCapacity.Handle).Methods(http.MethodPut)

	// --- Глобальные праздники ---
	api.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", addHoliday.Handle).Methods(http.MethodPost)
	api.HandleFunc("/holidays/{date}", removeHoliday.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if refresher != nil {
		refresher.Stop()
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

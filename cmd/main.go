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

	abandonSessionHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/abandon_session"
	acquireHoldHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/acquire_hold"
	cancelReservationHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/cancel_reservation"
	confirmBookingHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/confirm_booking"
	getAvailableSlotsHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/get_available_slots"
	getCustomerReservationsHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/get_customer_reservations"
	nextAvailableSlotHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/next_available_slot"
	releaseHoldHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/release_hold"
	startSessionHandler "github.com/nvbit/SLN-SlotService/internal/api/handlers/start_session"
	"github.com/nvbit/SLN-SlotService/internal/api/middleware"
	"github.com/nvbit/SLN-SlotService/internal/config"
	"github.com/nvbit/SLN-SlotService/internal/domain"
	reservationRepo "github.com/nvbit/SLN-SlotService/internal/infra/storage/reservation"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
	"github.com/nvbit/SLN-SlotService/internal/service/holds"
	"github.com/nvbit/SLN-SlotService/internal/service/session"
	acquireHoldUC "github.com/nvbit/SLN-SlotService/internal/usecase/acquire_hold"
	cancelReservationUC "github.com/nvbit/SLN-SlotService/internal/usecase/cancel_reservation"
	confirmBookingUC "github.com/nvbit/SLN-SlotService/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/nvbit/SLN-SlotService/internal/usecase/get_available_slots"
	getCustomerReservationsUC "github.com/nvbit/SLN-SlotService/internal/usecase/get_customer_reservations"
	nextAvailableSlotUC "github.com/nvbit/SLN-SlotService/internal/usecase/next_available_slot"
	startSessionUC "github.com/nvbit/SLN-SlotService/internal/usecase/start_session"
	"github.com/nvbit/SLN-SlotService/pkg/logger"
	"github.com/nvbit/SLN-SlotService/pkg/metrics"
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

	log.Info("Starting SLN-SlotService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозиторий
	reservationRepository := reservationRepo.NewRepository(db)

	// Политика рабочих часов салона
	policy := domain.NewWorkingHoursPolicy(
		cfg.Booking.OpenHour,
		cfg.Booking.CloseHour,
		cfg.Booking.SlotIntervalMinutes,
		cfg.Booking.ClosedWeekdays,
	)
	if !policy.IsValid() {
		log.Fatal("Invalid working hours policy: open=%d close=%d interval=%d",
			cfg.Booking.OpenHour, cfg.Booking.CloseHour, cfg.Booking.SlotIntervalMinutes)
	}

	// Менеджер холдов с фоновой очисткой истекших
	var holdRecorder holds.Recorder
	if cfg.Metrics.Enabled {
		holdRecorder = metricsCollector
	}
	holdManager := holds.NewManager(
		time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second,
		time.Duration(cfg.Booking.SweepIntervalSeconds)*time.Second,
		log,
		holdRecorder,
	)
	holdManager.Start()
	defer holdManager.Stop()
	log.Info("Hold manager started (ttl=%ds, sweep=%ds)",
		cfg.Booking.HoldTTLSeconds, cfg.Booking.SweepIntervalSeconds)

	// Хранилище сессий бронирования
	sessionStore := session.NewStore(
		time.Duration(cfg.Booking.SessionTTLMinutes)*time.Minute,
		log,
	)

	// Фоновая очистка истекших сессий; холды брошенных сессий снимаются здесь же
	sessionSweepStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Booking.SweepIntervalSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				for _, holdID := range sessionStore.Expire(now) {
					holdManager.Release(holdID)
				}
			case <-sessionSweepStop:
				return
			}
		}
	}()

	// Движок доступности
	engine := availability.NewEngine(
		reservationRepository,
		holdManager,
		policy,
		cfg.Booking.NextSlotHorizonDays,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(engine, log)
	nextAvailableSlotUseCase := nextAvailableSlotUC.NewUseCase(engine, log)
	startSessionUseCase := startSessionUC.NewUseCase(sessionStore, log)
	acquireHoldUseCase := acquireHoldUC.NewUseCase(engine, holdManager, sessionStore, log)

	var conflictRecorder confirmBookingUC.ConflictRecorder
	if cfg.Metrics.Enabled {
		conflictRecorder = metricsCollector
	}
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		reservationRepository,
		holdManager,
		sessionStore,
		conflictRecorder,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(reservationRepository, log)
	getCustomerReservationsUseCase := getCustomerReservationsUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	nextAvailableSlot := nextAvailableSlotHandler.NewHandler(nextAvailableSlotUseCase, log)
	startSession := startSessionHandler.NewHandler(startSessionUseCase, log)
	acquireHold := acquireHoldHandler.NewHandler(acquireHoldUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(holdManager, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	abandonSession := abandonSessionHandler.NewHandler(sessionStore, holdManager, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(getCustomerReservationsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/salon/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот
	api.HandleFunc("/salon/next-available-slot", nextAvailableSlot.Handle).Methods(http.MethodGet)

	// Начало сессии бронирования
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)

	// Отказ от сессии бронирования
	api.HandleFunc("/sessions/{sessionId}", abandonSession.Handle).Methods(http.MethodDelete)

	// Снятие холда
	api.HandleFunc("/holds/{holdId}", releaseHold.Handle).Methods(http.MethodDelete)

	// Отмена подтвержденного бронирования
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	api.HandleFunc("/customers/{phone}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session)

	// Захват слота на время заполнения формы
	protected.HandleFunc("/holds", acquireHold.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

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

	close(sessionSweepStop)

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

package reserve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	lockoutRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/lockout"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Исходы попытки резервирования для метрик
const (
	outcomeConfirmed   = "confirmed"
	outcomeUnavailable = "unavailable"
	outcomeRejected    = "rejected"
	outcomeFailed      = "failed"
)

// UseCase use case резервирования: проверка доступности и списание вместимости
type UseCase struct {
	configRepo      ConfigRepository
	reservationRepo ReservationRepository
	ledger          LockoutLedger
	holidays        HolidayProvider
	evaluator       Evaluator
	txManager       TransactionManager
	metrics         MetricsRecorder
	newID           IDGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	reservationRepo ReservationRepository,
	ledger LockoutLedger,
	holidays HolidayProvider,
	evaluator Evaluator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:      configRepo,
		reservationRepo: reservationRepo,
		ledger:          ledger,
		holidays:        holidays,
		evaluator:       evaluator,
		txManager:       txManager,
		metrics:         metrics,
		newID:           uuid.NewString,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider заменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithIDGenerator заменяет генератор идентификаторов
func (uc *UseCase) WithIDGenerator(gen IDGenerator) *UseCase {
	uc.newID = gen
	return uc
}

// Execute выполняет резервирование
// Проверка и списание выполняются в одной сериализуемой транзакции:
// строки учета читаются с блокировкой, поэтому два параллельных запроса
// не могут занять последнее место одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveBooking: product=%d, start=%s, end=%s, qty=%d",
		req.ProductID, req.StartDate, req.EndDate, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveBooking: validation failed: %v", err)
		uc.metrics.ObserveReservation(outcomeRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Календарь праздников не участвует в транзакции
	calendar, err := uc.holidays.GetCalendar(ctx)
	if err != nil {
		uc.logger.Error("ReserveBooking: failed to get holiday calendar: %v", err)
		uc.metrics.ObserveReservation(outcomeFailed)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 4. Проверка и списание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Конфигурация бронирования товара
		cfg, err := uc.configRepo.GetByProductID(txCtx, req.ProductID)
		if err != nil {
			if errors.Is(err, configRepo.ErrConfigNotFound) {
				uc.logger.Warn("ReserveBooking: config for product=%d not found", req.ProductID)
				return ErrConfigNotFound
			}
			uc.logger.Error("ReserveBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// 4.2. Форма запроса должна соответствовать типу бронирования
		if err := validateShape(cfg, req); err != nil {
			uc.logger.Warn("ReserveBooking: %v", err)
			return err
		}

		// 4.3. Решение по заблокированному снимку учета
		decision, err := uc.evaluator.Evaluate(txCtx, cfg, calendar, uc.ledger, domain.CandidateRequest{
			ProductID:  req.ProductID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TimeSlot:   req.TimeSlot,
			ResourceID: req.ResourceID,
			Now:        now,
		})
		if err != nil {
			uc.logger.Error("ReserveBooking: evaluation failed: %v", err)
			return fmt.Errorf("%w: evaluate: %v", ErrInternal, err)
		}
		uc.metrics.ObserveDecision(string(cfg.BookingType), string(decision.Reason))

		if !decision.Available {
			uc.logger.Warn("ReserveBooking: product=%d unavailable, reason=%s", req.ProductID, decision.Reason)
			return &UnavailableError{Reason: decision.Reason}
		}

		// 4.4. Списываем вместимость
		days := cfg.LedgerDays(req.StartDate, req.EndDate)
		for _, day := range days {
			if err := uc.ledger.Reserve(txCtx, req.ProductID, day, req.TimeSlot, req.Quantity); err != nil {
				if errors.Is(err, lockoutRepo.ErrCapacityExceeded) {
					uc.logger.Warn("ReserveBooking: capacity exceeded for product=%d on %s", req.ProductID, day)
					return &UnavailableError{Reason: domain.ReasonNoCapacity}
				}
				uc.logger.Error("ReserveBooking: failed to reserve %s: %v", day, err)
				return fmt.Errorf("%w: reserve capacity: %v", ErrInternal, err)
			}
		}

		// 4.5. Занимаем ресурс
		reservation := &domain.Reservation{
			ID:         uc.newID(),
			ProductID:  req.ProductID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TimeSlot:   req.TimeSlot,
			Quantity:   req.Quantity,
			Status:     domain.ReservationStatusConfirmed,
			LedgerDays: days,
		}

		if resourceID, ok := cfg.ReservationResourceID(req.ResourceID); ok {
			for _, day := range days {
				if err := uc.ledger.SetResourceBooked(txCtx, resourceID, day, true); err != nil {
					uc.logger.Error("ReserveBooking: failed to book resource=%d on %s: %v", resourceID, day, err)
					return fmt.Errorf("%w: book resource: %v", ErrInternal, err)
				}
			}
			reservation.ResourceID = ptr.Ptr(resourceID)
		}

		// 4.6. Сохраняем резервирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("ReserveBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAvailable):
			uc.metrics.ObserveReservation(outcomeUnavailable)
		case errors.Is(err, ErrInternal):
			uc.metrics.ObserveReservation(outcomeFailed)
		case errors.Is(err, ErrConfigNotFound), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDateRange):
			uc.metrics.ObserveReservation(outcomeRejected)
		default:
			uc.logger.Error("ReserveBooking: transaction failed: %v", err)
			uc.metrics.ObserveReservation(outcomeFailed)
			return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.ObserveReservation(outcomeConfirmed)
	uc.logger.Info("ReserveBooking: created reservation id=%s for product=%d", result.ID, result.ProductID)
	return FromDomain(result), nil
}

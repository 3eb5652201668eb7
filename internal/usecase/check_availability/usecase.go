package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
)

// UseCase use case проверки доступности товара на даты
type UseCase struct {
	configRepo   ConfigRepository
	holidays     HolidayProvider
	ledger       engine.LockoutLedger
	evaluator    Evaluator
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	holidays HolidayProvider,
	ledger engine.LockoutLedger,
	evaluator Evaluator,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		holidays:     holidays,
		ledger:       ledger,
		evaluator:    evaluator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider заменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: product=%d, start=%s, end=%s", req.ProductID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация бронирования товара
	cfg, err := uc.configRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("CheckAvailability: config for product=%d not found", req.ProductID)
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get config for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Глобальный календарь праздников
	calendar, err := uc.holidays.GetCalendar(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get holiday calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	// 4. Решение
	candidate := domain.CandidateRequest{
		ProductID:  req.ProductID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TimeSlot:   req.TimeSlot,
		ResourceID: req.ResourceID,
		Now:        uc.timeProvider.Now(),
	}

	result, err := uc.evaluator.Evaluate(ctx, cfg, calendar, uc.ledger, candidate)
	if err != nil {
		uc.logger.Error("CheckAvailability: evaluation failed for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: evaluate: %v", ErrInternal, err)
	}

	uc.metrics.ObserveDecision(string(cfg.BookingType), string(result.Reason))
	uc.logger.Info("CheckAvailability: product=%d available=%t reason=%s", req.ProductID, result.Available, result.Reason)

	return &Response{
		ProductID:   req.ProductID,
		StartDate:   candidate.StartDate,
		EndDate:     candidate.End(),
		BookingType: cfg.BookingType,
		Available:   result.Available,
		Reason:      result.Reason,
	}, nil
}

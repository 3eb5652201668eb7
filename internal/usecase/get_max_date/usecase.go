package get_max_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case вычисления горизонта бронирования товара
type UseCase struct {
	configRepo   ConfigRepository
	searcher     MaxDateSearcher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	searcher MaxDateSearcher,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		searcher:     searcher,
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

// Execute возвращает минимальную и максимальную даты бронирования товара
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMaxDate: product=%d, loopCap=%d", req.ProductID, req.LoopCap)

	// 1. Валидация входных данных
	if req.ProductID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}
	if req.LoopCap < 0 || req.LoopCap > domain.MaxLoopCap {
		return nil, fmt.Errorf("%w: loopCap must be in [0, %d]", ErrInvalidInput, domain.MaxLoopCap)
	}

	// 2. Конфигурация бронирования товара
	cfg, err := uc.configRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetMaxDate: config for product=%d not found", req.ProductID)
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetMaxDate: failed to get config for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	resp := &Response{
		ProductID: req.ProductID,
		MinDate:   uc.searcher.MinDate(cfg, now),
	}

	// 3. Поиск максимальной даты
	result, ok := uc.searcher.SearchMaxDate(cfg, now, req.LoopCap)
	if !ok {
		uc.logger.Info("GetMaxDate: product=%d has no booking horizon", req.ProductID)
		return resp, nil
	}

	uc.metrics.ObserveMaxDateSearch(result.Iterations, result.Exhausted)
	if result.Exhausted {
		uc.logger.Warn("GetMaxDate: product=%d search exhausted after %d iterations", req.ProductID, result.Iterations)
	}

	resp.MaxDate = ptr.Ptr(result.MaxDate)
	resp.Iterations = result.Iterations
	resp.Exhausted = result.Exhausted

	return resp, nil
}

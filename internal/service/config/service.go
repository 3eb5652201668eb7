package config

import (
	"context"
	"errors"
	"fmt"

	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис для работы с конфигурацией бронирования товаров
type Service struct {
	configRepo   ConfigRepository
	capacityRepo CapacityRepository
	validator    *RequestValidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	capacityRepo CapacityRepository,
	validator *RequestValidator,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepo,
		capacityRepo: capacityRepo,
		validator:    validator,
		logger:       logger,
	}
}

// Get получает конфигурацию бронирования товара
func (s *Service) Get(ctx context.Context, productID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for product=%d", productID)

	cfg, err := s.configRepo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: config for product=%d not found", productID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Upsert создает или полностью заменяет конфигурацию бронирования товара
func (s *Service) Upsert(ctx context.Context, productID int64, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving config for product=%d, type=%s", productID, req.BookingType)

	// 1. Валидируем входные данные
	if productID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}
	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("Upsert: validation failed for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Сохраняем конфигурацию
	saved, err := s.configRepo.Upsert(ctx, req.ToDomainConfig(productID))
	if err != nil {
		s.logger.Error("Upsert: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config for product=%d", productID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию бронирования товара
func (s *Service) Delete(ctx context.Context, productID int64) error {
	s.logger.Info("Delete: deleting config for product=%d", productID)

	if err := s.configRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config for product=%d not found", productID)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for product=%d: %v", productID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config for product=%d", productID)
	return nil
}

// SetCapacity задает вместимость товара на день (или слот дня)
// Вместимость задается только для товаров с конфигурацией
func (s *Service) SetCapacity(ctx context.Context, productID int64, req *models.SetCapacityRequest) error {
	s.logger.Info("SetCapacity: product=%d, date=%s", productID, req.Date)

	// 1. Валидируем входные данные
	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("SetCapacity: validation failed for product=%d: %v", productID, err)
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Проверяем существование конфигурации
	if _, err := s.configRepo.GetByProductID(ctx, productID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("SetCapacity: config for product=%d not found", productID)
			return ErrConfigNotFound
		}
		s.logger.Error("SetCapacity: repository error for product=%d: %v", productID, err)
		return fmt.Errorf("%w: SetCapacity - repository error: %v", ErrInternal, err)
	}

	// 3. Сохраняем вместимость
	var slot *types.TimeString
	if req.TimeSlot != nil {
		ts := types.TimeString(*req.TimeSlot)
		slot = &ts
	}

	if err := s.capacityRepo.SetCapacity(ctx, productID, req.Date, slot, req.Capacity); err != nil {
		s.logger.Error("SetCapacity: repository error for product=%d: %v", productID, err)
		return fmt.Errorf("%w: SetCapacity - repository error: %v", ErrInternal, err)
	}

	return nil
}

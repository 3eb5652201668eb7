package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"

	holidayRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const maxNameLength = 255

// Service сервис управления глобальным календарем праздников
type Service struct {
	repo   HolidayRepository
	cache  CalendarCache
	logger Logger
}

// NewService создает новый экземпляр сервиса праздников
func NewService(repo HolidayRepository, cache CalendarCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает все праздники по возрастанию даты
func (s *Service) List(ctx context.Context) ([]types.Date, error) {
	dates, err := s.repo.ListDates(ctx)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return dates, nil
}

// Add добавляет праздник (или переименовывает существующий) и сбрасывает кэш
func (s *Service) Add(ctx context.Context, day types.Date, name string) error {
	s.logger.Info("AddHoliday: day=%s", day)

	name = strings.TrimSpace(name)
	if day.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}

	if err := s.repo.Add(ctx, day, name); err != nil {
		s.logger.Error("AddHoliday: repository error for day=%s: %v", day, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	return nil
}

// Remove удаляет праздник и сбрасывает кэш
func (s *Service) Remove(ctx context.Context, day types.Date) error {
	s.logger.Info("RemoveHoliday: day=%s", day)

	if err := s.repo.Remove(ctx, day); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("RemoveHoliday: day=%s not found", day)
			return ErrHolidayNotFound
		}
		s.logger.Error("RemoveHoliday: repository error for day=%s: %v", day, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	return nil
}

// invalidate сбрасывает кэш календаря. Ошибка не прерывает операцию:
// кэш истечет по TTL или обновится планировщиком
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("HolidayCache: failed to invalidate: %v", err)
	}
}

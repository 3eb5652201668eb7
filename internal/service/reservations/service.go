package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

// Service сервис для работы с резервированиями
type Service struct {
	reservationRepo ReservationRepository
	ledger          LockoutLedger
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса резервирований
func NewService(
	reservationRepo ReservationRepository,
	ledger LockoutLedger,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		ledger:          ledger,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает резервирование товара по ID
// Резервирование другого товара считается не найденным
func (s *Service) GetByID(ctx context.Context, productID int64, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for product=%d", id, productID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.ProductID != productID {
		s.logger.Warn("GetByID: reservation id=%s belongs to product=%d, not %d", id, reservation.ProductID, productID)
		return nil, ErrReservationNotFound
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает резервирования товара с фильтрацией по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for product=%d", req.ProductID)

	filter := reservationRepo.Filter{
		ProductID: req.ProductID,
		From:      req.From,
		To:        req.To,
	}

	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for product=%d", *req.Status, req.ProductID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for product=%d", len(reservations), req.ProductID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет резервирование и возвращает вместимость
// Выполняется в сериализуемой транзакции, как и списание при резервировании
func (s *Service) Cancel(ctx context.Context, productID int64, id string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s for product=%d", id, productID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем резервирование с блокировкой
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%s not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if reservation.ProductID != productID {
			s.logger.Warn("Cancel: reservation id=%s belongs to product=%d", id, reservation.ProductID)
			return ErrReservationNotFound
		}

		// 2. Проверяем, можно ли отменить резервирование
		if !reservation.IsActive() {
			s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", id, reservation.Status)
			return ErrCannotCancel
		}

		// 3. Возвращаем вместимость дней, зафиксированных при создании, и освобождаем ресурс.
		// Текущая конфигурация товара не используется: она могла измениться или быть удалена
		if err := s.release(txCtx, reservation); err != nil {
			return err
		}

		// 4. Отменяем резервирование
		if err := s.reservationRepo.Cancel(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%s not found during cancellation", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}

// Вспомогательные методы

// release возвращает вместимость дней резервирования и снимает занятость ресурса
func (s *Service) release(ctx context.Context, reservation *domain.Reservation) error {
	days := reservation.LedgerDays

	for _, day := range days {
		if err := s.ledger.Release(ctx, reservation.ProductID, day, reservation.TimeSlot, reservation.Quantity); err != nil {
			s.logger.Error("Cancel: failed to release %s for reservation id=%s: %v", day, reservation.ID, err)
			return fmt.Errorf("%w: Cancel - release capacity: %v", ErrInternal, err)
		}
	}

	if reservation.ResourceID == nil {
		return nil
	}

	for _, day := range days {
		if err := s.ledger.SetResourceBooked(ctx, *reservation.ResourceID, day, false); err != nil {
			s.logger.Error("Cancel: failed to free resource=%d on %s: %v", *reservation.ResourceID, day, err)
			return fmt.Errorf("%w: Cancel - free resource: %v", ErrInternal, err)
		}
	}

	return nil
}

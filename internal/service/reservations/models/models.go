package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение резервирований товара
type ListReservationsRequest struct {
	ProductID int64       `json:"productId"`
	From      *types.Date `json:"from,omitempty"`   // Начало периода (опционально)
	To        *types.Date `json:"to,omitempty"`     // Конец периода (опционально)
	Status    *string     `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// ReservationResponse ответ с данными резервирования
type ReservationResponse struct {
	ID          string     `json:"id"`
	ProductID   int64      `json:"productId"`
	StartDate   types.Date `json:"startDate"`
	EndDate     types.Date `json:"endDate"`
	TimeSlot    *string    `json:"timeSlot,omitempty"`
	ResourceID  *int64     `json:"resourceId,omitempty"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	CancelledAt *string    `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком резервирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ResourceID: r.ResourceID,
		Quantity:   r.Quantity,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.TimeSlot != nil {
		slot := r.TimeSlot.String()
		resp.TimeSlot = &slot
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if item := FromDomainReservation(reservation); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch s := domain.ReservationStatus(status); s {
	case domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

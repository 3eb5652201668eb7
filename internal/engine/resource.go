package engine

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ResourceConflict определяет, занят ли ресурс в каком-либо дне диапазона.
//
//   - ресурсы выключены: конфликта нет;
//   - ресурс выбран явно: проверяется только он;
//   - автоматический выбор: проверяется только первый настроенный ресурс,
//     остальные не рассматриваются, даже если свободны;
//   - ручной выбор: обходятся все ресурсы, результат определяет последний из них.
func ResourceConflict(ctx context.Context, cfg *domain.BookingConfig, ledger LockoutLedger, req domain.CandidateRequest) (bool, error) {
	if !cfg.ResourceEnabled {
		return false, nil
	}

	days := EnumerateDays(req.StartDate, req.End())

	if req.ResourceID != nil {
		return resourceBookedOnAnyDay(ctx, ledger, *req.ResourceID, days)
	}

	if cfg.ResourceSelectionMode == domain.ResourceSelectionAutomatic {
		first, ok := cfg.FirstResourceID()
		if !ok {
			return false, nil
		}
		return resourceBookedOnAnyDay(ctx, ledger, first, days)
	}

	conflict := false
	for _, resourceID := range cfg.ResourceIDs {
		booked, err := resourceBookedOnAnyDay(ctx, ledger, resourceID, days)
		if err != nil {
			return false, err
		}
		conflict = booked
	}
	return conflict, nil
}

func resourceBookedOnAnyDay(ctx context.Context, ledger LockoutLedger, resourceID int64, days []types.Date) (bool, error) {
	for _, day := range days {
		booked, err := ledger.GetResourceBooked(ctx, resourceID, day)
		if err != nil {
			return false, fmt.Errorf("%w: resource=%d day=%s: %v", ErrLedger, resourceID, day, err)
		}
		if booked {
			return true, nil
		}
	}
	return false, nil
}

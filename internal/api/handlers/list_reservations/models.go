package list_reservations

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ToServiceRequest собирает запрос к сервису из query параметров from, to, status
func ToServiceRequest(productID int64, query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{ProductID: productID}

	if raw := query.Get("from"); raw != "" {
		from, err := types.ParseDate(types.LayoutYMD, raw)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := types.ParseDate(types.LayoutYMD, raw)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	return req, nil
}

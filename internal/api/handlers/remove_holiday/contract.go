package remove_holiday

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type HolidayService interface {
	Remove(ctx context.Context, day types.Date) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_max_date

import (
	"context"

	getMaxDate "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_max_date"
)

type GetMaxDateUseCase interface {
	Execute(ctx context.Context, req *getMaxDate.Request) (*getMaxDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

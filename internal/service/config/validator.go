package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ValidationError ошибка валидации одного поля
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors список ошибок валидации запроса
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// RequestValidator валидатор запросов на изменение конфигурации
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator создает валидатор с правилами конфигурации бронирования
func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("time_of_day", validateTimeOfDay); err != nil {
		return nil, fmt.Errorf("register time_of_day: %w", err)
	}

	v.RegisterStructValidation(validateDateRange, models.DateRangeRequest{})
	v.RegisterStructValidation(validateTimeSlot, models.TimeSlotRequest{})
	v.RegisterStructValidation(validateUpsertConfig, models.UpsertConfigRequest{})
	v.RegisterStructValidation(validateSetCapacity, models.SetCapacityRequest{})

	return &RequestValidator{validate: v}, nil
}

// Validate проверяет запрос и возвращает ValidationErrors
func (v *RequestValidator) Validate(req interface{}) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).Validate() == nil
}

func validateDateRange(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.DateRangeRequest)

	if r.Start.IsZero() {
		sl.ReportError(r.Start, "start", "Start", "required", "")
	}
	if r.End.IsZero() {
		sl.ReportError(r.End, "end", "End", "required", "")
	}
	if r.End.Before(r.Start) {
		sl.ReportError(r.End, "end", "End", "gtefield", "start")
	}
}

func validateTimeSlot(sl validator.StructLevel) {
	s := sl.Current().Interface().(models.TimeSlotRequest)

	if s.To == "" {
		return
	}
	from, to := types.TimeString(s.From), types.TimeString(s.To)
	if from.Validate() == nil && to.Validate() == nil && !from.IsBefore(to) {
		sl.ReportError(s.To, "to", "To", "gtfield", "from")
	}
}

func validateUpsertConfig(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.UpsertConfigRequest)

	if r.FixedBlockEnabled && len(r.FixedBlockLengths) == 0 {
		sl.ReportError(r.FixedBlockLengths, "fixedBlockLengths", "FixedBlockLengths", "required_when_enabled", "fixedBlockEnabled")
	}
	if r.ResourceEnabled && len(r.ResourceIDs) == 0 {
		sl.ReportError(r.ResourceIDs, "resourceIds", "ResourceIDs", "required_when_enabled", "resourceEnabled")
	}
	if domain.BookingType(r.BookingType) == domain.BookingTypeDateTime &&
		len(r.TimeSlots.ByWeekday) == 0 && len(r.TimeSlots.ByDate) == 0 {
		sl.ReportError(r.TimeSlots, "timeSlots", "TimeSlots", "required_for_date_time", "")
	}
}

func validateSetCapacity(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.SetCapacityRequest)

	if r.Date.IsZero() {
		sl.ReportError(r.Date, "date", "Date", "required", "")
	}
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param())
		case "unique":
			message = fmt.Sprintf("%s must not contain duplicates", err.Field())
		case "time_of_day":
			message = fmt.Sprintf("%s must be in HH:MM 24-hour format", err.Field())
		case "gtefield":
			message = fmt.Sprintf("%s must not be before %s", err.Field(), err.Param())
		case "gtfield":
			message = fmt.Sprintf("%s must be after %s", err.Field(), err.Param())
		case "required_when_enabled":
			message = fmt.Sprintf("%s must not be empty when %s is set", err.Field(), err.Param())
		case "required_for_date_time":
			message = fmt.Sprintf("%s must define at least one slot for date_time booking", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

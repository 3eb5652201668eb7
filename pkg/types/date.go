package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout формат строкового представления календарной даты
type DateLayout string

const (
	// LayoutYMD формат Y-m-d (2025-03-07)
	LayoutYMD DateLayout = "2006-01-02"
	// LayoutDMY формат j-n-Y (7-3-2025), без ведущих нулей
	LayoutDMY DateLayout = "2-1-2006"
)

// Date календарный день без времени и часового пояса
// Сравнимый тип: может использоваться как ключ map
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату, нормализуя переполнение (31 февраля -> 3 марта)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарный день момента t в его часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Time возвращает полночь даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Year возвращает год
func (d Date) Year() int { return d.year }

// Month возвращает месяц
func (d Date) Month() time.Month { return d.month }

// Day возвращает день месяца
func (d Date) Day() int { return d.day }

// IsZero возвращает true для неинициализированной даты
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// AddDays сдвигает дату на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Weekday возвращает день недели (Sunday=0 ... Saturday=6)
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare возвращает -1, 0 или +1
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

// Before возвращает true, если d раньше other
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After возвращает true, если d позже other
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal возвращает true для одного и того же дня
func (d Date) Equal(other Date) bool { return d == other }

// Format форматирует дату в указанном формате
func (d Date) Format(layout DateLayout) string {
	return d.Time().Format(string(layout))
}

// String возвращает дату в формате Y-m-d
func (d Date) String() string {
	return d.Format(LayoutYMD)
}

// DateParseError ошибка разбора строки с датой
type DateParseError struct {
	Input  string
	Layout DateLayout
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (expected layout %s): %v", e.Input, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ParseDate разбирает дату в указанном формате
func ParseDate(layout DateLayout, value string) (Date, error) {
	t, err := time.Parse(string(layout), value)
	if err != nil {
		return Date{}, &DateParseError{Input: value, Layout: layout, Err: err}
	}
	return DateOf(t), nil
}

// MarshalJSON сериализует дату в формате Y-m-d
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает дату в формате Y-m-d
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(LayoutYMD, s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText позволяет использовать Date как ключ map в JSON
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText разбирает ключ map в JSON
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(LayoutYMD, string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.UnmarshalText(v)
	case string:
		return d.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("types.Date: cannot scan %T", src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

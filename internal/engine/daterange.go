package engine

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// EnumerateDays разворачивает диапазон [start, end] в упорядоченный список дней
// Если start > end, возвращает единственный день start
func EnumerateDays(start, end types.Date) []types.Date {
	if start.After(end) {
		return []types.Date{start}
	}

	days := make([]types.Date, 0, 8)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// EnumerateTokens разворачивает диапазон в строковые представления дней в указанном формате
func EnumerateTokens(start, end types.Date, layout types.DateLayout) []string {
	days := EnumerateDays(start, end)
	tokens := make([]string, len(days))
	for i, d := range days {
		tokens[i] = d.Format(layout)
	}
	return tokens
}

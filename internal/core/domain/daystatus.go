package domain

// DayStatus governs whether entry mutation is permitted for a dateKey,
// evaluated against the business-timezone "today". It is a pure function of
// the two date keys; nothing is persisted.
type DayStatus string

const (
	DayToday  DayStatus = "today"
	DayPast   DayStatus = "past"
	DayFuture DayStatus = "future"
)

// DayStatusFor classifies dateKey relative to today. Both arguments are
// YYYY-MM-DD keys, which compare correctly as strings.
func DayStatusFor(dateKey, today string) DayStatus {
	switch {
	case dateKey == today:
		return DayToday
	case dateKey < today:
		return DayPast
	default:
		return DayFuture
	}
}

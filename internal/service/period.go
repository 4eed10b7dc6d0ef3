// internal/service/period.go
package service

import "time"

// Symbolic query periods accepted by the historical and event listing
// endpoints.
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodAll     = "all"
)

// ResolvePeriodStart translates a symbolic period into a concrete start
// time relative to now. Unrecognized or empty periods fall back to one
// month, matching the default query window.
func ResolvePeriodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodQuarter:
		return now.AddDate(0, -3, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

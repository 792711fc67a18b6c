package compute

import (
	"context"

	"github.com/jonwraymond/toolcompute/datum"
)

// Year extracts the year.
func Year(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncYear, values, ectx)
}

// Month extracts the month, starting at 1.
func Month(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncMonth, values, ectx)
}

// Day extracts the day of the month, starting at 1.
func Day(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncDay, values, ectx)
}

// DayOfWeek extracts the day of the week.
func DayOfWeek(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncDayOfWeek, values, ectx)
}

// DayOfYear extracts the day of the year, starting at 1.
func DayOfYear(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncDayOfYear, values, ectx)
}

// ISOYear extracts the ISO 8601 week-numbering year.
func ISOYear(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncISOYear, values, ectx)
}

// ISOWeek extracts the ISO 8601 week number.
func ISOWeek(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncISOWeek, values, ectx)
}

// ISOCalendar extracts the ISO 8601 (year, week, weekday) triple.
func ISOCalendar(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncISOCalendar, values, ectx)
}

// Quarter extracts the quarter of the year, starting at 1.
func Quarter(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncQuarter, values, ectx)
}

// Hour extracts the hour.
func Hour(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncHour, values, ectx)
}

// Minute extracts the minute.
func Minute(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncMinute, values, ectx)
}

// Second extracts the second.
func Second(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncSecond, values, ectx)
}

// Millisecond extracts the millisecond fraction.
func Millisecond(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncMillisecond, values, ectx)
}

// Microsecond extracts the microsecond fraction.
func Microsecond(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncMicrosecond, values, ectx)
}

// Nanosecond extracts the nanosecond fraction.
func Nanosecond(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncNanosecond, values, ectx)
}

// Subsecond extracts the fraction of a second as a float.
func Subsecond(ctx context.Context, values datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncSubsecond, values, ectx)
}

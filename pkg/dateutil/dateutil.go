// Package dateutil maps month indexes of a simulation onto calendar dates,
// mostly for labeling report axes.
package dateutil

import (
	"fmt"
	"time"
)

// MonthDate returns the calendar month for the given zero-based month index,
// anchored at the first of start's month.
func MonthDate(start time.Time, index int) time.Time {
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	return anchor.AddDate(0, index, 0)
}

// MonthLabel renders a month index as "Jan 2026" relative to start.
func MonthLabel(start time.Time, index int) string {
	return MonthDate(start, index).Format("Jan 2006")
}

// YearsToMonths converts whole years to months.
func YearsToMonths(years int) int {
	return years * 12
}

// MonthsToYears renders a month count as a human-friendly year/month string.
func MonthsToYears(months int) string {
	y, m := months/12, months%12
	switch {
	case y == 0:
		return fmt.Sprintf("%dmo", m)
	case m == 0:
		return fmt.Sprintf("%dy", y)
	default:
		return fmt.Sprintf("%dy %dmo", y, m)
	}
}

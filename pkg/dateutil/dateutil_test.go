package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthDate(t *testing.T) {
	start := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	d := MonthDate(start, 0)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day(), "anchored to the first of the month")

	d = MonthDate(start, 12)
	assert.Equal(t, 2027, d.Year())
	assert.Equal(t, time.March, d.Month())

	d = MonthDate(start, 11)
	assert.Equal(t, time.February, d.Month())
}

func TestMonthLabel(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 2026", MonthLabel(start, 0))
	assert.Equal(t, "Dec 2026", MonthLabel(start, 11))
	assert.Equal(t, "Jan 2056", MonthLabel(start, 360))
}

func TestYearsToMonths(t *testing.T) {
	assert.Equal(t, 360, YearsToMonths(30))
	assert.Equal(t, 0, YearsToMonths(0))
}

func TestMonthsToYears(t *testing.T) {
	assert.Equal(t, "30y", MonthsToYears(360))
	assert.Equal(t, "5mo", MonthsToYears(5))
	assert.Equal(t, "12y 6mo", MonthsToYears(150))
	assert.Equal(t, "0mo", MonthsToYears(0))
}

package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinancialYearAfterApril(t *testing.T) {
	window := FinancialYear(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, 2027, window.To.Year())
	assert.Equal(t, time.March, window.To.Month())
	assert.Equal(t, 31, window.To.Day())
}

func TestFinancialYearBeforeApril(t *testing.T) {
	window := FinancialYear(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, 2026, window.To.Year())
}

func TestFinancialYearContainsBounds(t *testing.T) {
	window := FinancialYear(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, window.Contains(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2027, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2027, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestZeroWindowContainsEverything(t *testing.T) {
	window := Window{}

	assert.True(t, window.Contains(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

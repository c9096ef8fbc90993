package usecase_test

import (
	"testing"
	"time"

	"stock_chart/internal/feature/chart/usecase"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  string
	}{
		{42.5, "42.50"},
		{99.994, "99.99"},
		{50, "50.00"},
		{100, "100.0"},
		{123.456, "123.5"},
		{150.04, "150.0"},
		{1234.5678, "1234.6"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.FormatPrice(tt.price))
		})
	}
}

// Rounding works on the shortest decimal form of the float and goes half away
// from zero, so 1.005 becomes 1.01 even though its binary value is below 1.005.
func TestFormatPrice_DecimalHalfRounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.01", usecase.FormatPrice(1.005))
	assert.Equal(t, "2.68", usecase.FormatPrice(2.675))
	assert.Equal(t, "100.1", usecase.FormatPrice(100.05))
	assert.Equal(t, "0.00", usecase.FormatPrice(0.004))
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$75.25", usecase.FormatMoney(75.25))
	assert.Equal(t, "$180.3", usecase.FormatMoney(180.27))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2022, time.February, 15, 0, 0, 0, 0, time.UTC), "Feb 15, 22"},
		{time.Date(2023, time.July, 3, 0, 0, 0, 0, time.UTC), "Jul 3, 23"},
		{time.Date(2024, time.January, 1, 23, 0, 0, 0, time.FixedZone("JST", 9*3600)), "Jan 1, 24"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.FormatDate(tt.in))
		})
	}
}

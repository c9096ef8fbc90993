package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every price shown on the chart.
const CurrencySymbol = "$"

// dateLabelLayout renders like en-US {month: short, day: numeric, year: 2-digit}.
const dateLabelLayout = "Jan 2, 06"

// FormatPrice rounds to two decimals below 100 and one decimal otherwise.
func FormatPrice(price float64) string {
	places := int32(1)
	if price < 100 {
		places = 2
	}
	return decimal.NewFromFloat(price).StringFixed(places)
}

// FormatMoney is FormatPrice with the currency symbol.
func FormatMoney(price float64) string {
	return CurrencySymbol + FormatPrice(price)
}

// FormatDate renders a sample date for axis labels and the tooltip.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLabelLayout)
}

package usecase_test

import (
	"time"

	"stock_chart/internal/feature/chart/domain/entity"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

var baseDate = time.Date(2022, time.February, 15, 0, 0, 0, 0, time.UTC)

// series builds consecutive daily samples with the given prices.
func series(prices ...float64) []seriesentity.Sample {
	out := make([]seriesentity.Sample, len(prices))
	for i, p := range prices {
		out[i] = seriesentity.Sample{Symbol: "DEMO", Date: baseDate.AddDate(0, 0, i), Price: p}
	}
	return out
}

// ramp builds n samples with strictly increasing prices.
func ramp(n int) []seriesentity.Sample {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	return series(prices...)
}

func dims(w, h float64) entity.Dimensions {
	return entity.Dimensions{Width: w, Height: h}
}

package usecase

import (
	"context"

	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

// SeriesReader loads the samples of a symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type SeriesReader interface {
	GetSeries(ctx context.Context, symbol string) ([]seriesentity.Sample, error)
}

// ChartUsecase opens charts over stored series with a shared configuration.
type ChartUsecase struct {
	series SeriesReader
	opts   []ChartOption
}

// NewChartUsecase creates a ChartUsecase; opts apply to every chart it opens.
func NewChartUsecase(series SeriesReader, opts ...ChartOption) *ChartUsecase {
	return &ChartUsecase{series: series, opts: opts}
}

// Open loads the series of symbol and wraps it in a new Chart.
// Errors from the reader are returned unchanged so callers can match sentinels.
func (u *ChartUsecase) Open(ctx context.Context, symbol string) (*Chart, error) {
	samples, err := u.series.GetSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return NewChart(samples, u.opts...), nil
}

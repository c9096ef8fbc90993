// Package png renders a static PNG snapshot of a series with go-chart.
package png

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"stock_chart/internal/feature/chart/adapters/theme"
	"stock_chart/internal/feature/chart/usecase"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 400
	MaxSide       = 4000
)

// ErrTooFewSamples is returned when the series cannot form a line.
var ErrTooFewSamples = errors.New("snapshot needs at least 2 samples")

var hexColour = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Snapshotter renders PNG line charts with a fixed theme.
type Snapshotter struct {
	theme theme.Theme
}

// NewSnapshotter returns a Snapshotter using th.
func NewSnapshotter(th theme.Theme) *Snapshotter {
	return &Snapshotter{theme: th}
}

// Render draws samples into a width x height PNG. Non-positive sides take the
// defaults and oversized ones are clamped to MaxSide.
func (s *Snapshotter) Render(samples []seriesentity.Sample, width, height int) ([]byte, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("got %d: %w", len(samples), ErrTooFewSamples)
	}
	width = side(width, DefaultWidth)
	height = side(height, DefaultHeight)

	xs := make([]time.Time, len(samples))
	ys := make([]float64, len(samples))
	lo, hi := samples[0].Price, samples[0].Price
	for i, smp := range samples {
		xs[i] = smp.Date
		ys[i] = smp.Price
		lo, hi = min(lo, smp.Price), max(hi, smp.Price)
	}

	yAxis := chart.YAxis{
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return usecase.FormatMoney(f)
			}
			return ""
		},
	}
	if lo == hi {
		yAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return usecase.FormatDate(chart.TimeFromFloat64(f))
				}
				return ""
			},
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name: samples[0].Symbol,
				Style: chart.Style{
					StrokeColor: colour(s.theme.Line, theme.Default().Line),
					StrokeWidth: s.theme.LineWidth,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func side(v, def int) int {
	if v <= 0 {
		return def
	}
	return min(v, MaxSide)
}

// colour accepts #rrggbb values only; named colours fall back to def.
func colour(v, def string) drawing.Color {
	if !hexColour.MatchString(v) {
		v = def
	}
	return drawing.ColorFromHex(strings.TrimPrefix(v, "#"))
}

package usecase

import (
	"stock_chart/internal/feature/chart/domain/entity"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

// GridLevels are the relative heights, from the top of the plot, of the
// horizontal gridlines and their price labels.
var GridLevels = []float64{0, 0.2, 0.4, 0.6, 0.8, 1}

const (
	// DateLabelEvery is the sample stride between date labels.
	DateLabelEvery = 60
	// priceLabelGap separates price labels from the right axis.
	priceLabelGap = 10
	// dateLabelDrop places date labels below the x-axis.
	dateLabelDrop = 20
)

// Gridlines returns one horizontal line per grid level across the plot.
func Gridlines(s Scale) []entity.Line {
	out := make([]entity.Line, 0, len(GridLevels))
	for _, pct := range GridLevels {
		y := s.PlotTop() + s.PlotHeight()*pct
		out = append(out, entity.Line{X1: s.PlotLeft(), Y1: y, X2: s.PlotRight(), Y2: y})
	}
	return out
}

// Axes returns the x-axis along the bottom of the plot and the price axis on its right edge.
func Axes(s Scale) (xAxis, yAxis entity.Line) {
	xAxis = entity.Line{X1: s.PlotLeft(), Y1: s.PlotBottom(), X2: s.PlotRight(), Y2: s.PlotBottom()}
	yAxis = entity.Line{X1: s.PlotRight(), Y1: s.PlotTop(), X2: s.PlotRight(), Y2: s.PlotBottom()}
	return xAxis, yAxis
}

// PriceLabels returns the price at each grid level, right of the plot.
// The top level shows the maximum price and the bottom level the minimum.
func PriceLabels(s Scale) []entity.Label {
	out := make([]entity.Label, 0, len(GridLevels))
	for _, pct := range GridLevels {
		price := s.MinPrice() + s.PriceRange()*(1-pct)
		out = append(out, entity.Label{
			X:      s.PlotRight() + priceLabelGap,
			Y:      s.PlotTop() + s.PlotHeight()*pct,
			Text:   FormatMoney(price),
			Anchor: entity.AnchorStart,
		})
	}
	return out
}

// DateLabels returns a label under every DateLabelEvery-th sample, starting at index 0.
func DateLabels(s Scale, samples []seriesentity.Sample) []entity.Label {
	out := make([]entity.Label, 0, len(samples)/DateLabelEvery+1)
	for i := 0; i < len(samples); i += DateLabelEvery {
		out = append(out, entity.Label{
			X:      s.X(i),
			Y:      s.PlotBottom() + dateLabelDrop,
			Text:   FormatDate(samples[i].Date),
			Anchor: entity.AnchorMiddle,
		})
	}
	return out
}

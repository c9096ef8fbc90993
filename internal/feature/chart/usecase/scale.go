package usecase

import (
	"stock_chart/internal/feature/chart/domain/entity"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

// Scale maps sample indices and prices to pixel coordinates.
// The zero value maps everything to the origin and is never drawn.
type Scale struct {
	dims  entity.Dimensions
	pad   entity.Padding
	count int
	min   float64
	max   float64
}

// NewScale scans samples once for the price range.
func NewScale(samples []seriesentity.Sample, dims entity.Dimensions, pad entity.Padding) Scale {
	s := Scale{dims: dims, pad: pad, count: len(samples)}
	if len(samples) == 0 {
		return s
	}
	s.min, s.max = samples[0].Price, samples[0].Price
	for _, p := range samples[1:] {
		s.min = min(s.min, p.Price)
		s.max = max(s.max, p.Price)
	}
	return s
}

// WithDimensions returns a copy of the scale for a new surface size.
// The price range is kept as is.
func (s Scale) WithDimensions(d entity.Dimensions) Scale {
	s.dims = d
	return s
}

func (s Scale) MinPrice() float64             { return s.min }
func (s Scale) MaxPrice() float64             { return s.max }
func (s Scale) PriceRange() float64           { return s.max - s.min }
func (s Scale) Count() int                    { return s.count }
func (s Scale) Dimensions() entity.Dimensions { return s.dims }
func (s Scale) Padding() entity.Padding       { return s.pad }

// PlotLeft and friends bound the plot area inside the padding.
func (s Scale) PlotLeft() float64   { return s.pad.Left }
func (s Scale) PlotRight() float64  { return s.dims.Width - s.pad.Right }
func (s Scale) PlotTop() float64    { return s.pad.Top }
func (s Scale) PlotBottom() float64 { return s.dims.Height - s.pad.Bottom }

// PlotHeight is the vertical span available to the line.
func (s Scale) PlotHeight() float64 {
	return s.dims.Height - s.pad.Top - s.pad.Bottom
}

// PlotWidth is the horizontal span available to the line.
func (s Scale) PlotWidth() float64 {
	return s.dims.Width - s.pad.Left - s.pad.Right
}

// X returns the horizontal position of sample i. A single sample sits at the left edge.
func (s Scale) X(i int) float64 {
	if s.count <= 1 {
		return s.pad.Left
	}
	return s.pad.Left + float64(i)*s.PlotWidth()/float64(s.count-1)
}

// Y returns the vertical position of price. Higher prices map to smaller y.
// A flat series is centred vertically.
func (s Scale) Y(price float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return s.pad.Top + s.PlotHeight()/2
	}
	return s.dims.Height - s.pad.Bottom - (price-s.min)/span*s.PlotHeight()
}

// Points returns the mapped coordinate of every sample, in order.
func (s Scale) Points(samples []seriesentity.Sample) []entity.Point {
	out := make([]entity.Point, len(samples))
	for i, p := range samples {
		out[i] = entity.Point{X: s.X(i), Y: s.Y(p.Price)}
	}
	return out
}

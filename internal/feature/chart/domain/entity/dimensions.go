// Package entity defines the value types shared by the chart feature:
// drawing-surface dimensions, padding, hover state and the derived scene.
package entity

// Dimensions is the size of the drawing surface in pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Drawable reports whether both sides are positive. Nothing is drawn otherwise.
func (d Dimensions) Drawable() bool {
	return d.Width > 0 && d.Height > 0
}

// Padding is the margin between the surface edge and the plot area.
// Right is wider than Left to leave room for the price labels.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultPadding returns the margins used by the interactive chart.
func DefaultPadding() Padding {
	return Padding{Top: 40, Right: 60, Bottom: 40, Left: 40}
}

// HitMode selects how per-sample hover strips are laid out.
type HitMode string

const (
	// HitModeUniform gives every strip a width of Width/n centred on its sample.
	HitModeUniform HitMode = "uniform"
	// HitModeMidpoint places strip edges halfway between neighbouring samples.
	HitModeMidpoint HitMode = "midpoint"
)

// ParseHitMode maps a config string to a HitMode, falling back to uniform.
func ParseHitMode(s string) HitMode {
	if HitMode(s) == HitModeMidpoint {
		return HitModeMidpoint
	}
	return HitModeUniform
}

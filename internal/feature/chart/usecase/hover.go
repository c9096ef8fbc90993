package usecase

import (
	"fmt"

	"stock_chart/internal/feature/chart/domain/entity"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

const (
	tooltipWidth     = 150
	tooltipHeight    = 35
	tooltipRise      = 45 // box top sits this far above the point
	tooltipRadius    = 4
	tooltipDateRise  = 31
	tooltipPriceRise = 15.5
)

// HoverController is the two-state hover machine. Transitions happen
// synchronously; there is no debouncing.
type HoverController struct {
	samples []seriesentity.Sample
	points  []entity.Point
	state   entity.HoverState
}

// NewHoverController starts Idle over the given samples and their precomputed points.
func NewHoverController(samples []seriesentity.Sample, points []entity.Point) *HoverController {
	return &HoverController{samples: samples, points: points, state: entity.Idle{}}
}

// State returns the current state.
func (h *HoverController) State() entity.HoverState {
	return h.state
}

// Enter moves to Hovering on sample i from either state.
// An invalid index leaves the state untouched.
func (h *HoverController) Enter(i int) error {
	if i < 0 || i >= len(h.samples) || i >= len(h.points) {
		return fmt.Errorf("enter %d of %d: %w", i, len(h.samples), ErrIndexOutOfRange)
	}
	p := h.points[i]
	h.state = entity.Hovering{Index: i, Sample: h.samples[i], X: p.X, Y: p.Y}
	return nil
}

// Leave moves to Idle.
func (h *HoverController) Leave() {
	h.state = entity.Idle{}
}

// Rebind swaps in freshly mapped points after a resize and moves an active
// hover to its new anchor.
func (h *HoverController) Rebind(points []entity.Point) {
	h.points = points
	cur, ok := h.state.(entity.Hovering)
	if !ok {
		return
	}
	if cur.Index >= len(points) {
		h.state = entity.Idle{}
		return
	}
	cur.X, cur.Y = points[cur.Index].X, points[cur.Index].Y
	h.state = cur
}

// HitRegions lays out one invisible strip per sample spanning the plot height.
func HitRegions(s Scale, mode entity.HitMode) []entity.HitRegion {
	n := s.Count()
	if n == 0 {
		return nil
	}
	out := make([]entity.HitRegion, n)
	top, height := s.PlotTop(), s.PlotHeight()

	if mode == entity.HitModeMidpoint {
		for i := 0; i < n; i++ {
			left, right := s.PlotLeft(), s.PlotRight()
			if i > 0 {
				left = (s.X(i-1) + s.X(i)) / 2
			}
			if i < n-1 {
				right = (s.X(i) + s.X(i+1)) / 2
			}
			out[i] = entity.HitRegion{Index: i, Rect: entity.Rect{X: left, Y: top, Width: right - left, Height: height}}
		}
		return out
	}

	w := s.Dimensions().Width / float64(n)
	for i := 0; i < n; i++ {
		out[i] = entity.HitRegion{Index: i, Rect: entity.Rect{X: s.X(i) - w/2, Y: top, Width: w, Height: height}}
	}
	return out
}

// TooltipFor derives the overlay for a hover state. Idle yields nil.
func TooltipFor(s Scale, state entity.HoverState) *entity.Tooltip {
	switch st := state.(type) {
	case entity.Hovering:
		return &entity.Tooltip{
			Vertical:   entity.Line{X1: st.X, Y1: s.PlotTop(), X2: st.X, Y2: s.PlotBottom()},
			Horizontal: entity.Line{X1: s.PlotLeft(), Y1: st.Y, X2: s.PlotRight(), Y2: st.Y},
			Box: entity.Rect{
				X:      st.X - tooltipWidth/2,
				Y:      st.Y - tooltipRise,
				Width:  tooltipWidth,
				Height: tooltipHeight,
			},
			Radius:    tooltipRadius,
			DateText:  entity.Label{X: st.X, Y: st.Y - tooltipDateRise, Text: FormatDate(st.Sample.Date), Anchor: entity.AnchorMiddle},
			PriceText: entity.Label{X: st.X, Y: st.Y - tooltipPriceRise, Text: FormatMoney(st.Sample.Price), Anchor: entity.AnchorMiddle},
		}
	case entity.Idle:
		return nil
	default:
		return nil
	}
}

package usecase

import (
	"stock_chart/internal/feature/chart/domain/entity"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
)

// Chart owns one series, the current surface size and the hover state, and
// derives a Scene from them. It is not safe for concurrent use.
type Chart struct {
	samples []seriesentity.Sample
	pad     entity.Padding
	mode    entity.HitMode

	scale  Scale
	points []entity.Point
	hover  *HoverController

	unsubscribe func()
}

// ChartOption configures a Chart.
type ChartOption func(*Chart)

// WithPadding overrides DefaultPadding.
func WithPadding(p entity.Padding) ChartOption {
	return func(c *Chart) { c.pad = p }
}

// WithHitMode selects the hit-region layout.
func WithHitMode(m entity.HitMode) ChartOption {
	return func(c *Chart) { c.mode = m }
}

// NewChart builds a chart with zero dimensions; it draws nothing until resized.
func NewChart(samples []seriesentity.Sample, opts ...ChartOption) *Chart {
	c := &Chart{samples: samples, pad: entity.DefaultPadding(), mode: entity.HitModeUniform}
	for _, opt := range opts {
		opt(c)
	}
	c.scale = NewScale(samples, entity.Dimensions{}, c.pad)
	c.points = c.scale.Points(samples)
	c.hover = NewHoverController(samples, c.points)
	return c
}

// Samples returns the charted series.
func (c *Chart) Samples() []seriesentity.Sample { return c.samples }

// Scale returns the scale for the current dimensions.
func (c *Chart) Scale() Scale { return c.scale }

// Hover returns the current hover state.
func (c *Chart) Hover() entity.HoverState { return c.hover.State() }

// Resize remaps every point for the new surface and rebinds an active hover.
// A surface that cannot be drawn has no hit regions, so the hover is dropped.
func (c *Chart) Resize(d entity.Dimensions) {
	c.scale = c.scale.WithDimensions(d)
	c.points = c.scale.Points(c.samples)
	if !d.Drawable() {
		c.hover.Leave()
		return
	}
	c.hover.Rebind(c.points)
}

// Attach subscribes the chart to an observer, detaching any previous one.
func (c *Chart) Attach(o *Observer) {
	c.Detach()
	c.unsubscribe = o.Subscribe(c.Resize)
}

// Detach drops the observer subscription, if any.
func (c *Chart) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Enter hovers sample i.
func (c *Chart) Enter(i int) error { return c.hover.Enter(i) }

// Leave clears the hover.
func (c *Chart) Leave() { c.hover.Leave() }

// Scene derives the geometry of the current state. An empty series or a
// non-drawable surface gives an invisible scene.
func (c *Chart) Scene() entity.Scene {
	d := c.scale.Dimensions()
	sc := entity.Scene{Width: d.Width, Height: d.Height, Hover: c.hover.State()}
	if !d.Drawable() || len(c.samples) == 0 {
		sc.Hover = entity.Idle{}
		return sc
	}

	sc.Visible = true
	sc.Gridlines = Gridlines(c.scale)
	sc.XAxis, sc.YAxis = Axes(c.scale)
	sc.PriceLabels = PriceLabels(c.scale)
	sc.DateLabels = DateLabels(c.scale, c.samples)
	sc.HitRegions = HitRegions(c.scale, c.mode)
	if len(c.points) == 1 {
		p := c.points[0]
		sc.Marker = &p
	} else {
		sc.Path = BuildPath(c.points)
	}
	sc.Tooltip = TooltipFor(c.scale, sc.Hover)
	return sc
}

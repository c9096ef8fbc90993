// Package svg serialises a chart scene into a standalone SVG document.
package svg

import (
	"bytes"
	"fmt"
	"html"

	"stock_chart/internal/feature/chart/adapters/theme"
	"stock_chart/internal/feature/chart/domain/entity"
	"stock_chart/internal/feature/chart/usecase"
)

// Renderer writes scenes with a fixed theme.
type Renderer struct {
	theme theme.Theme
}

// NewRenderer returns a Renderer using th.
func NewRenderer(th theme.Theme) *Renderer {
	return &Renderer{theme: th}
}

// Theme returns the palette in use.
func (r *Renderer) Theme() theme.Theme { return r.theme }

// Render returns the SVG document for sc. An invisible scene gives an empty
// <svg> of the scene's size.
func (r *Renderer) Render(sc entity.Scene) []byte {
	var b bytes.Buffer
	w, h := n(max(sc.Width, 0)), n(max(sc.Height, 0))
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, w, h, w, h)
	if !sc.Visible {
		b.WriteString("</svg>")
		return b.Bytes()
	}
	th := r.theme

	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, attr(th.Background))

	b.WriteString(`<g class="grid">`)
	for _, l := range sc.Gridlines {
		line(&b, l, th.Grid, 1, false)
	}
	b.WriteString(`</g>`)

	b.WriteString(`<g class="axes">`)
	line(&b, sc.XAxis, th.Axis, 1, false)
	line(&b, sc.YAxis, th.Axis, 1, false)
	b.WriteString(`</g>`)

	fmt.Fprintf(&b, `<g class="labels" fill="%s" font-family="%s" font-size="%s">`,
		attr(th.Label), attr(th.FontFamily), n(th.FontSize))
	for _, l := range sc.PriceLabels {
		text(&b, l, "")
	}
	for _, l := range sc.DateLabels {
		text(&b, l, "")
	}
	b.WriteString(`</g>`)

	if sc.Path != "" {
		fmt.Fprintf(&b, `<path class="series" d="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			sc.Path, attr(th.Line), n(th.LineWidth))
	}
	if sc.Marker != nil {
		fmt.Fprintf(&b, `<circle class="marker" cx="%s" cy="%s" r="%s" fill="%s"/>`,
			n(sc.Marker.X), n(sc.Marker.Y), n(th.LineWidth*2), attr(th.Line))
	}

	switch hs := sc.Hover.(type) {
	case entity.Hovering:
		if sc.Tooltip != nil {
			r.tooltip(&b, hs, *sc.Tooltip)
		}
	case entity.Idle, nil:
	}

	b.WriteString(`<g class="hit-regions">`)
	for _, hr := range sc.HitRegions {
		fmt.Fprintf(&b, `<rect data-index="%d" x="%s" y="%s" width="%s" height="%s" fill="transparent"/>`,
			hr.Index, n(hr.X), n(hr.Y), n(hr.Width), n(hr.Height))
	}
	b.WriteString(`</g></svg>`)
	return b.Bytes()
}

func (r *Renderer) tooltip(b *bytes.Buffer, hs entity.Hovering, tt entity.Tooltip) {
	th := r.theme
	fmt.Fprintf(b, `<g class="tooltip" data-index="%d" pointer-events="none">`, hs.Index)
	line(b, tt.Vertical, th.Crosshair, 1, true)
	line(b, tt.Horizontal, th.Crosshair, 1, true)
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		n(hs.X), n(hs.Y), n(th.LineWidth*2), attr(th.Line))
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
		n(tt.Box.X), n(tt.Box.Y), n(tt.Box.Width), n(tt.Box.Height), n(tt.Radius), attr(th.TooltipFill))
	fmt.Fprintf(b, `<g fill="%s" font-family="%s" font-size="%s">`,
		attr(th.TooltipText), attr(th.FontFamily), n(th.FontSize))
	text(b, tt.DateText, "")
	text(b, tt.PriceText, "bold")
	b.WriteString(`</g></g>`)
}

func line(b *bytes.Buffer, l entity.Line, stroke string, width float64, dashed bool) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
		n(l.X1), n(l.Y1), n(l.X2), n(l.Y2), attr(stroke), n(width))
	if dashed {
		b.WriteString(` stroke-dasharray="4 4"`)
	}
	b.WriteString(`/>`)
}

func text(b *bytes.Buffer, l entity.Label, weight string) {
	anchor := l.Anchor
	if anchor == "" {
		anchor = entity.AnchorStart
	}
	fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="%s"`, n(l.X), n(l.Y), anchor)
	if weight != "" {
		fmt.Fprintf(b, ` font-weight="%s"`, weight)
	}
	fmt.Fprintf(b, `>%s</text>`, html.EscapeString(l.Text))
}

func n(v float64) string { return usecase.FormatCoord(v) }

func attr(s string) string { return html.EscapeString(s) }

package entity

// Point is a pixel coordinate on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Anchor is the SVG text-anchor of a label.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
)

// Label is a positioned piece of text.
type Label struct {
	X      float64
	Y      float64
	Text   string
	Anchor Anchor
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// HitRegion is the invisible hover strip of one sample.
type HitRegion struct {
	Index int
	Rect
}

// Tooltip is the hover overlay: two dashed crosshair lines, a rounded box
// and two lines of text centred above the hovered point.
type Tooltip struct {
	Vertical   Line
	Horizontal Line
	Box        Rect
	Radius     float64
	DateText   Label
	PriceText  Label
}

// Scene is the complete geometry of one render pass.
// When Visible is false only Width and Height are meaningful.
type Scene struct {
	Visible bool
	Width   float64
	Height  float64

	Path        string
	Marker      *Point // set when the series has exactly one sample
	Gridlines   []Line
	XAxis       Line
	YAxis       Line
	PriceLabels []Label
	DateLabels  []Label
	HitRegions  []HitRegion

	Hover   HoverState
	Tooltip *Tooltip // nil unless Hover is Hovering
}

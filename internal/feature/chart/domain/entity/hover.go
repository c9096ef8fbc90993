package entity

import seriesentity "stock_chart/internal/feature/series/domain/entity"

// HoverState is either Idle or Hovering. The unexported marker method seals
// the set so a type switch over the two variants is exhaustive.
type HoverState interface {
	hoverState()
	// Active reports whether a sample is hovered.
	Active() bool
}

// Idle means no sample is under the pointer.
type Idle struct{}

func (Idle) hoverState()  {}
func (Idle) Active() bool { return false }

// Hovering records the hovered sample and its anchor point at the time of entry.
type Hovering struct {
	Index  int
	Sample seriesentity.Sample
	X      float64
	Y      float64
}

func (Hovering) hoverState()  {}
func (Hovering) Active() bool { return true }

// HoverName returns "idle" or "hovering" for wire messages and logs.
func HoverName(s HoverState) string {
	switch s.(type) {
	case Hovering:
		return "hovering"
	default:
		return "idle"
	}
}

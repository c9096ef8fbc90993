package usecase

import (
	"fmt"
	"math"

	"stock_chart/internal/feature/chart/domain/entity"
)

// Observer owns the latest measurement of the host container and pushes
// changes to subscribers. It is driven from a single goroutine.
type Observer struct {
	current entity.Dimensions
	nextID  int
	subs    map[int]func(entity.Dimensions)
}

// NewObserver returns an observer with no measurement yet.
func NewObserver() *Observer {
	return &Observer{subs: map[int]func(entity.Dimensions){}}
}

// Current returns the latest measurement.
func (o *Observer) Current() entity.Dimensions {
	return o.current
}

// Subscribe registers fn and delivers the current measurement right away when
// it is drawable. The returned function deregisters fn and is safe to call twice.
func (o *Observer) Subscribe(fn func(entity.Dimensions)) (unsubscribe func()) {
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	if o.current.Drawable() {
		fn(o.current)
	}
	return func() { delete(o.subs, id) }
}

// Measure records a new container size. Subscribers are notified only when it changed.
func (o *Observer) Measure(d entity.Dimensions) error {
	if !validSide(d.Width) || !validSide(d.Height) {
		return fmt.Errorf("measure %vx%v: %w", d.Width, d.Height, ErrInvalidDimensions)
	}
	if d == o.current {
		return nil
	}
	o.current = d
	for _, fn := range o.subs {
		fn(d)
	}
	return nil
}

// Subscribers returns the number of registered callbacks.
func (o *Observer) Subscribers() int {
	return len(o.subs)
}

func validSide(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

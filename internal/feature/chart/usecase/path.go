package usecase

import (
	"strconv"
	"strings"

	"stock_chart/internal/feature/chart/domain/entity"
)

// BuildPath joins points into an SVG path: a move to the first point and a
// line to each following one. No points give an empty path.
func BuildPath(points []entity.Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(points) * 18)
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(FormatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(FormatCoord(p.Y))
	}
	return b.String()
}

// FormatCoord formats a pixel value with at most two decimals and no trailing zeros.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

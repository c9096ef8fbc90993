package usecase_test

import (
	"testing"

	"stock_chart/internal/feature/chart/domain/entity"
	"stock_chart/internal/feature/chart/usecase"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []entity.Point
		want   string
	}{
		{name: "empty", points: nil, want: ""},
		{name: "single point is a bare move", points: []entity.Point{{X: 40, Y: 100}}, want: "M 40 100"},
		{
			name:   "move then lines",
			points: []entity.Point{{X: 40, Y: 100}, {X: 190, Y: 40}, {X: 340, Y: 160}},
			want:   "M 40 100 L 190 40 L 340 160",
		},
		{
			name:   "fractions keep two decimals",
			points: []entity.Point{{X: 40.333333, Y: 99.5}, {X: 41.006, Y: -0.0001}},
			want:   "M 40.33 99.5 L 41.01 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.BuildPath(tt.points))
		})
	}
}

func TestBuildPath_FromScale(t *testing.T) {
	t.Parallel()

	samples := series(100, 150, 50)
	s := usecase.NewScale(samples, dims(400, 200), entity.DefaultPadding())
	assert.Equal(t, "M 40 100 L 190 40 L 340 160", usecase.BuildPath(s.Points(samples)))
}

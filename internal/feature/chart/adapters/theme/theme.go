// Package theme loads the chart colour palette from a YAML file.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the colours and font settings used by the renderers.
// Any field left empty in the file keeps its default.
type Theme struct {
	Background  string  `yaml:"background"`
	Grid        string  `yaml:"grid"`
	Axis        string  `yaml:"axis"`
	Line        string  `yaml:"line"`
	LineWidth   float64 `yaml:"line_width"`
	Label       string  `yaml:"label"`
	FontSize    float64 `yaml:"font_size"`
	FontFamily  string  `yaml:"font_family"`
	Crosshair   string  `yaml:"crosshair"`
	TooltipFill string  `yaml:"tooltip_fill"`
	TooltipText string  `yaml:"tooltip_text"`
}

// Default returns the built-in palette.
func Default() Theme {
	return Theme{
		Background:  "#ffffff",
		Grid:        "#e5e7eb",
		Axis:        "gray",
		Line:        "#000000",
		LineWidth:   1.5,
		Label:       "#6b7280",
		FontSize:    12,
		FontFamily:  "sans-serif",
		Crosshair:   "#E1524D",
		TooltipFill: "#E1524D",
		TooltipText: "#ffffff",
	}
}

// Load reads a YAML theme from path. An empty path returns Default.
func Load(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default.
func Parse(b []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	return t.withDefaults(), nil
}

func (t Theme) withDefaults() Theme {
	d := Default()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	t.Background = pick(t.Background, d.Background)
	t.Grid = pick(t.Grid, d.Grid)
	t.Axis = pick(t.Axis, d.Axis)
	t.Line = pick(t.Line, d.Line)
	t.Label = pick(t.Label, d.Label)
	t.FontFamily = pick(t.FontFamily, d.FontFamily)
	t.Crosshair = pick(t.Crosshair, d.Crosshair)
	t.TooltipFill = pick(t.TooltipFill, d.TooltipFill)
	t.TooltipText = pick(t.TooltipText, d.TooltipText)
	if t.LineWidth <= 0 {
		t.LineWidth = d.LineWidth
	}
	if t.FontSize <= 0 {
		t.FontSize = d.FontSize
	}
	return t
}

package figure

import (
	"errors"

	"github.com/jpalmerr/paineis/internal/data"
)

// ErrNoRows is returned by builders that need at least one row.
var ErrNoRows = errors.New("dataset has no rows")

// Kind identifies the chart type of a [Figure].
type Kind string

const (
	// KindEmpty marks the placeholder figure. It carries no series and no axes.
	KindEmpty Kind = "empty"

	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
	KindGauge   Kind = "gauge"
)

// Series mode values.
const (
	ModeBar     = "bar"
	ModeLines   = "lines"
	ModeMarkers = "markers"
	ModePie     = "pie"
	ModeGauge   = "gauge"
)

// Figure describes one chart.
type Figure struct {
	Kind       Kind     `json:"kind"`
	Series     []Series `json:"series,omitempty"`
	XAxis      *Axis    `json:"x_axis,omitempty"`
	YAxis      *Axis    `json:"y_axis,omitempty"`
	ShowLegend bool     `json:"show_legend"`
	Theme      *Theme   `json:"theme,omitempty"`
}

// Series is one encoded trace of a figure.
type Series struct {
	Name string `json:"name,omitempty"`
	Mode string `json:"mode"`

	// X holds category labels, numbers, or dates formatted as YYYY-MM-DD.
	X []any     `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`

	// Labels names pie slices; Y holds the slice values.
	Labels []string `json:"labels,omitempty"`

	// Sizes sets per-point marker sizes for scatter series.
	Sizes []float64 `json:"sizes,omitempty"`

	Color string `json:"color,omitempty"`

	// ColorScale, when set, colours each point by its Y value on the named scale.
	ColorScale string  `json:"color_scale,omitempty"`
	LineWidth  float64 `json:"line_width,omitempty"`
}

// Axis holds an axis title and an optional fixed [min, max] range.
type Axis struct {
	Title string    `json:"title,omitempty"`
	Range []float64 `json:"range,omitempty"`
}

// Builder encodes a dataset as a [Figure] styled with the given theme.
type Builder func(ds data.Dataset, theme Theme) (Figure, error)

// Empty returns the canonical placeholder figure.
func Empty() Figure {
	return Figure{Kind: KindEmpty}
}

// IsEmpty reports whether f is the placeholder figure.
func (f Figure) IsEmpty() bool {
	return f.Kind == KindEmpty && len(f.Series) == 0 && f.XAxis == nil && f.YAxis == nil
}

// Points returns the total number of datapoints across all series.
func (f Figure) Points() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Y)
	}
	return n
}

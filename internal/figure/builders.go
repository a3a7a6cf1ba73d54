package figure

import (
	"fmt"
	"time"

	"github.com/jpalmerr/paineis/internal/data"
)

const dateLayout = "2006-01-02"

// Bar encodes column y against categories in column x as a single bar series
// coloured on the theme's continuous scale. The legend is hidden.
func Bar(x, y string) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		xs, err := axisValues(ds, x)
		if err != nil {
			return Figure{}, fmt.Errorf("bar: %w", err)
		}
		ys, err := ds.Numbers(y)
		if err != nil {
			return Figure{}, fmt.Errorf("bar: %w", err)
		}

		return Figure{
			Kind: KindBar,
			Series: []Series{{
				Name:       y,
				Mode:       ModeBar,
				X:          xs,
				Y:          ys,
				ColorScale: theme.ColorScale,
			}},
			XAxis: &Axis{Title: x},
			YAxis: &Axis{Title: y},
			Theme: theme.clone(),
		}, nil
	}
}

// Versus encodes an actual column as bars and a target column as a line over
// the same categories.
func Versus(x, actual, target string) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		xs, err := axisValues(ds, x)
		if err != nil {
			return Figure{}, fmt.Errorf("versus: %w", err)
		}
		got, err := ds.Numbers(actual)
		if err != nil {
			return Figure{}, fmt.Errorf("versus: %w", err)
		}
		want, err := ds.Numbers(target)
		if err != nil {
			return Figure{}, fmt.Errorf("versus: %w", err)
		}

		return Figure{
			Kind: KindBar,
			Series: []Series{
				{Name: actual, Mode: ModeBar, X: xs, Y: got, Color: theme.color(0)},
				{Name: target, Mode: ModeLines, X: append([]any(nil), xs...), Y: want, Color: theme.LineColor, LineWidth: theme.LineWidth},
			},
			XAxis:      &Axis{Title: x},
			YAxis:      &Axis{Title: actual},
			ShowLegend: true,
			Theme:      theme.clone(),
		}, nil
	}
}

// Line encodes column y over column x as a single line in the theme's line colour.
func Line(x, y string) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		xs, err := axisValues(ds, x)
		if err != nil {
			return Figure{}, fmt.Errorf("line: %w", err)
		}
		ys, err := ds.Numbers(y)
		if err != nil {
			return Figure{}, fmt.Errorf("line: %w", err)
		}

		return Figure{
			Kind: KindLine,
			Series: []Series{{
				Name:      y,
				Mode:      ModeLines,
				X:         xs,
				Y:         ys,
				Color:     theme.LineColor,
				LineWidth: theme.LineWidth,
			}},
			XAxis: &Axis{Title: x},
			YAxis: &Axis{Title: y},
			Theme: theme.clone(),
		}, nil
	}
}

// Scatter plots y against x with marker sizes from column size, one series
// per distinct value of column group (in first-seen order).
func Scatter(x, y, size, group string) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		xs, err := ds.Numbers(x)
		if err != nil {
			return Figure{}, fmt.Errorf("scatter: %w", err)
		}
		ys, err := ds.Numbers(y)
		if err != nil {
			return Figure{}, fmt.Errorf("scatter: %w", err)
		}
		sizes, err := ds.Numbers(size)
		if err != nil {
			return Figure{}, fmt.Errorf("scatter: %w", err)
		}
		groups, err := ds.Strings(group)
		if err != nil {
			return Figure{}, fmt.Errorf("scatter: %w", err)
		}

		var series []Series
		pos := make(map[string]int)
		for i, g := range groups {
			idx, ok := pos[g]
			if !ok {
				idx = len(series)
				pos[g] = idx
				series = append(series, Series{Name: g, Mode: ModeMarkers, Color: theme.color(idx)})
			}
			s := &series[idx]
			s.X = append(s.X, xs[i])
			s.Y = append(s.Y, ys[i])
			s.Sizes = append(s.Sizes, sizes[i])
		}

		return Figure{
			Kind:       KindScatter,
			Series:     series,
			XAxis:      &Axis{Title: x},
			YAxis:      &Axis{Title: y},
			ShowLegend: true,
			Theme:      theme.clone(),
		}, nil
	}
}

// Pie encodes column values split by column labels.
func Pie(labels, values string) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		names, err := ds.Strings(labels)
		if err != nil {
			return Figure{}, fmt.Errorf("pie: %w", err)
		}
		vals, err := ds.Numbers(values)
		if err != nil {
			return Figure{}, fmt.Errorf("pie: %w", err)
		}

		return Figure{
			Kind: KindPie,
			Series: []Series{{
				Name:   values,
				Mode:   ModePie,
				Labels: names,
				Y:      vals,
			}},
			ShowLegend: true,
			Theme:      theme.clone(),
		}, nil
	}
}

// Gauge shows the mean of column value on a dial ranging from lo to hi.
func Gauge(value string, lo, hi float64) Builder {
	return func(ds data.Dataset, theme Theme) (Figure, error) {
		if hi <= lo {
			return Figure{}, fmt.Errorf("gauge: range [%v, %v] is empty", lo, hi)
		}
		vals, err := ds.Numbers(value)
		if err != nil {
			return Figure{}, fmt.Errorf("gauge: %w", err)
		}
		if len(vals) == 0 {
			return Figure{}, fmt.Errorf("gauge: %s: %w", ds.Name(), ErrNoRows)
		}

		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		mean := sum / float64(len(vals))

		return Figure{
			Kind: KindGauge,
			Series: []Series{{
				Name:  value,
				Mode:  ModeGauge,
				Y:     []float64{mean},
				Color: theme.LineColor,
			}},
			YAxis: &Axis{Title: value, Range: []float64{lo, hi}},
			Theme: theme.clone(),
		}, nil
	}
}

// axisValues returns a column as JSON-friendly axis values. Dates are
// formatted as YYYY-MM-DD; other values are passed through.
func axisValues(ds data.Dataset, column string) ([]any, error) {
	values, err := ds.Values(column)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if t, ok := v.(time.Time); ok {
			values[i] = t.Format(dateLayout)
		}
	}
	return values, nil
}

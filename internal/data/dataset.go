package data

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownColumn is returned when a column lookup names a column the
	// dataset does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrColumnType is returned when a column holds values of a different
	// type than the accessor expects.
	ErrColumnType = errors.New("column type mismatch")
)

// Source produces a fresh [Dataset] for a seed.
type Source func(seed uint64) (Dataset, error)

// Dataset is an immutable table of named columns and ordered rows.
//
// Dataset is created via [NewDataset]. All fields are private; accessors
// return copies so a Dataset can be handed to any number of figure builders
// without one affecting another.
type Dataset struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]any
}

// NewDataset creates a [Dataset] from column names and rows.
//
// Every row must have exactly one value per column and column names must be
// unique and non-empty. The input slices are copied.
func NewDataset(name string, columns []string, rows [][]any) (Dataset, error) {
	if len(columns) == 0 {
		return Dataset{}, fmt.Errorf("dataset %q: at least one column is required", name)
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return Dataset{}, fmt.Errorf("dataset %q: column %d has no name", name, i)
		}
		if _, dup := index[c]; dup {
			return Dataset{}, fmt.Errorf("dataset %q: duplicate column %q", name, c)
		}
		index[c] = i
	}

	cp := make([][]any, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return Dataset{}, fmt.Errorf("dataset %q: row %d has %d values, want %d", name, i, len(row), len(columns))
		}
		cp[i] = append([]any(nil), row...)
	}

	return Dataset{
		name:    name,
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    cp,
	}, nil
}

// Name returns the dataset's domain name (e.g. "sales").
func (d Dataset) Name() string {
	return d.name
}

// Columns returns a copy of the column names in order.
func (d Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.rows)
}

// Row returns a copy of row i. It panics if i is out of range, like a slice index.
func (d Dataset) Row(i int) []any {
	return append([]any(nil), d.rows[i]...)
}

// Values returns a copy of every value in the named column.
func (d Dataset) Values(column string) ([]any, error) {
	idx, ok := d.index[column]
	if !ok {
		return nil, fmt.Errorf("dataset %q: %w %q", d.name, ErrUnknownColumn, column)
	}
	out := make([]any, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Strings returns the named column as strings.
func (d Dataset) Strings(column string) ([]string, error) {
	values, err := d.Values(column)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("dataset %q: column %q row %d: %w: %T is not a string", d.name, column, i, ErrColumnType, v)
		}
		out[i] = s
	}
	return out, nil
}

// Numbers returns the named column as float64. Integer columns are widened.
func (d Dataset) Numbers(column string) ([]float64, error) {
	values, err := d.Values(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case float64:
			out[i] = n
		case int:
			out[i] = float64(n)
		default:
			return nil, fmt.Errorf("dataset %q: column %q row %d: %w: %T is not numeric", d.name, column, i, ErrColumnType, v)
		}
	}
	return out, nil
}

// Times returns the named column as timestamps.
func (d Dataset) Times(column string) ([]time.Time, error) {
	values, err := d.Values(column)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("dataset %q: column %q row %d: %w: %T is not a time", d.name, column, i, ErrColumnType, v)
		}
		out[i] = t
	}
	return out, nil
}

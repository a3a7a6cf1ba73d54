package data

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSales_Shape(t *testing.T) {
	ds, err := Sales(42)
	if err != nil {
		t.Fatalf("Sales() error = %v", err)
	}

	if ds.Len() != 12 {
		t.Errorf("Len() = %d, want 12", ds.Len())
	}
	want := []string{"Mês", "Vendas", "Meta", "Região"}
	if diff := cmp.Diff(want, ds.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}

	vendas, err := ds.Numbers("Vendas")
	if err != nil {
		t.Fatalf("Numbers(Vendas) error = %v", err)
	}
	for i, v := range vendas {
		if v < 80 || v > 150 {
			t.Errorf("Vendas[%d] = %v, want within [80, 150]", i, v)
		}
	}

	meses, err := ds.Strings("Mês")
	if err != nil {
		t.Fatalf("Strings(Mês) error = %v", err)
	}
	if meses[0] != "Jan" || meses[11] != "Dez" {
		t.Errorf("Mês = %v, want Jan..Dez", meses)
	}
}

func TestSources_Deterministic(t *testing.T) {
	sources := map[string]Source{
		"sales":             Sales,
		"sales-visits":      SalesVisits,
		"time-series":       TimeSeries,
		"operations":        Operations,
		"operations-status": OperationsStatus,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			first, err := src(42)
			if err != nil {
				t.Fatalf("first call error = %v", err)
			}
			second, err := src(42)
			if err != nil {
				t.Fatalf("second call error = %v", err)
			}

			if first.Len() != second.Len() {
				t.Fatalf("Len() differs: %d vs %d", first.Len(), second.Len())
			}
			for i := 0; i < first.Len(); i++ {
				if diff := cmp.Diff(first.Row(i), second.Row(i)); diff != "" {
					t.Errorf("row %d differs (-first +second):\n%s", i, diff)
				}
			}
		})
	}
}

func TestSources_IndependentOfCallOrder(t *testing.T) {
	alone, err := Operations(7)
	if err != nil {
		t.Fatalf("Operations() error = %v", err)
	}

	// other generators run in between must not shift the operations stream
	if _, err := Sales(7); err != nil {
		t.Fatalf("Sales() error = %v", err)
	}
	if _, err := TimeSeries(7); err != nil {
		t.Fatalf("TimeSeries() error = %v", err)
	}

	after, err := Operations(7)
	if err != nil {
		t.Fatalf("Operations() error = %v", err)
	}
	for i := 0; i < alone.Len(); i++ {
		if diff := cmp.Diff(alone.Row(i), after.Row(i)); diff != "" {
			t.Errorf("row %d differs (-alone +after):\n%s", i, diff)
		}
	}
}

func TestSales_DifferentSeedsDiffer(t *testing.T) {
	a, _ := Sales(1)
	b, _ := Sales(2)

	va, _ := a.Numbers("Vendas")
	vb, _ := b.Numbers("Vendas")
	if cmp.Equal(va, vb) {
		t.Error("Sales(1) and Sales(2) produced identical Vendas columns")
	}
}

func TestTimeSeries_Shape(t *testing.T) {
	ds, err := TimeSeries(42)
	if err != nil {
		t.Fatalf("TimeSeries() error = %v", err)
	}
	if ds.Len() != 90 {
		t.Fatalf("Len() = %d, want 90", ds.Len())
	}

	dates, err := ds.Times("Data")
	if err != nil {
		t.Fatalf("Times(Data) error = %v", err)
	}
	if got := dates[0].Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("first date = %s, want 2024-01-01", got)
	}
	if got := dates[89].Format("2006-01-02"); got != "2024-03-30" {
		t.Errorf("last date = %s, want 2024-03-30", got)
	}

	values, _ := ds.Numbers("Métrica")
	for i, v := range values {
		if v < 50 {
			t.Errorf("Métrica[%d] = %v, want >= 50", i, v)
		}
	}
}

func TestOperations_EfficiencyRange(t *testing.T) {
	ds, err := Operations(42)
	if err != nil {
		t.Fatalf("Operations() error = %v", err)
	}
	eff, err := ds.Numbers("Eficiência")
	if err != nil {
		t.Fatalf("Numbers(Eficiência) error = %v", err)
	}
	for i, v := range eff {
		if v < 60 || v > 98 {
			t.Errorf("Eficiência[%d] = %v, want within [60, 98]", i, v)
		}
	}
}

func TestDataset_Accessors(t *testing.T) {
	ds, err := NewDataset("test", []string{"a", "b"}, [][]any{{"x", 1}, {"y", 2.5}})
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	if _, err := ds.Values("missing"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Values(missing) error = %v, want ErrUnknownColumn", err)
	}
	if _, err := ds.Numbers("a"); !errors.Is(err, ErrColumnType) {
		t.Errorf("Numbers(a) error = %v, want ErrColumnType", err)
	}
	if _, err := ds.Times("b"); !errors.Is(err, ErrColumnType) {
		t.Errorf("Times(b) error = %v, want ErrColumnType", err)
	}

	nums, err := ds.Numbers("b")
	if err != nil {
		t.Fatalf("Numbers(b) error = %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2.5}, nums); diff != "" {
		t.Errorf("Numbers(b) mismatch (-want +got):\n%s", diff)
	}
}

func TestDataset_Immutable(t *testing.T) {
	columns := []string{"a"}
	rows := [][]any{{"x"}}
	ds, err := NewDataset("test", columns, rows)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	// mutate inputs and returned copies
	columns[0] = "changed"
	rows[0][0] = "changed"
	ds.Columns()[0] = "changed"
	ds.Row(0)[0] = "changed"

	if got := ds.Columns()[0]; got != "a" {
		t.Errorf("Columns()[0] = %q, want %q", got, "a")
	}
	if got := ds.Row(0)[0]; got != "x" {
		t.Errorf("Row(0)[0] = %v, want %q", got, "x")
	}
}

func TestNewDataset_Validation(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]any
		wantErr string
	}{
		{"no columns", nil, nil, "at least one column"},
		{"empty column name", []string{""}, nil, "has no name"},
		{"duplicate column", []string{"a", "a"}, nil, "duplicate column"},
		{"short row", []string{"a", "b"}, [][]any{{1}}, "has 1 values, want 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset("test", tt.columns, tt.rows)
			if err == nil {
				t.Fatal("NewDataset() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

package data

import (
	"math"
	"math/rand/v2"
	"time"
)

// Per-domain salts for the second PCG word. Keeping them distinct makes the
// domains independent even when they share a seed.
const (
	saltSales            uint64 = 0x5a1e5
	saltSalesVisits      uint64 = 0x7151
	saltTimeSeries       uint64 = 0x7153
	saltOperations       uint64 = 0x0b5
	saltOperationsStatus uint64 = 0x0b57
)

const timeSeriesDays = 90

var (
	months  = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
	regions = []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"}
	sectors = []string{"Produção", "Logística", "Qualidade", "Manutenção", "Atendimento"}
	states  = []string{"Concluído", "Em andamento", "Atrasado", "Cancelado"}

	timeSeriesStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// newRand returns a generator local to one call.
func newRand(seed, salt uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, salt))
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// Sales returns twelve monthly rows with columns Mês, Vendas, Meta, Região.
func Sales(seed uint64) (Dataset, error) {
	r := newRand(seed, saltSales)
	rows := make([][]any, len(months))
	for i, m := range months {
		rows[i] = []any{
			m,
			intBetween(r, 80, 150),
			intBetween(r, 100, 130),
			regions[r.IntN(len(regions))],
		}
	}
	return NewDataset("sales", []string{"Mês", "Vendas", "Meta", "Região"}, rows)
}

// SalesVisits returns twelve monthly rows with columns Mês, Vendas, Visitas.
func SalesVisits(seed uint64) (Dataset, error) {
	r := newRand(seed, saltSalesVisits)
	rows := make([][]any, len(months))
	for i, m := range months {
		rows[i] = []any{m, intBetween(r, 80, 150), intBetween(r, 200, 500)}
	}
	return NewDataset("sales-visits", []string{"Mês", "Vendas", "Visitas"}, rows)
}

// TimeSeries returns ninety daily rows starting 2024-01-01 with columns
// Data and Métrica. The metric is a gaussian random walk around 100 with
// standard deviation 5, floored at 50.
func TimeSeries(seed uint64) (Dataset, error) {
	r := newRand(seed, saltTimeSeries)
	rows := make([][]any, timeSeriesDays)
	walk := 0.0
	for i := range rows {
		walk += r.NormFloat64() * 5
		rows[i] = []any{
			timeSeriesStart.AddDate(0, 0, i),
			math.Max(100+walk, 50),
		}
	}
	return NewDataset("time-series", []string{"Data", "Métrica"}, rows)
}

// Operations returns one row per sector with columns Setor, Volume, Eficiência.
// Eficiência is a percentage in [60, 98] with one decimal place.
func Operations(seed uint64) (Dataset, error) {
	r := newRand(seed, saltOperations)
	rows := make([][]any, len(sectors))
	for i, s := range sectors {
		eff := 60 + r.Float64()*38
		rows[i] = []any{s, intBetween(r, 200, 1000), math.Round(eff*10) / 10}
	}
	return NewDataset("operations", []string{"Setor", "Volume", "Eficiência"}, rows)
}

// OperationsStatus returns one row per work-order state with columns
// Status and Quantidade.
func OperationsStatus(seed uint64) (Dataset, error) {
	r := newRand(seed, saltOperationsStatus)
	rows := make([][]any, len(states))
	for i, s := range states {
		rows[i] = []any{s, intBetween(r, 5, 120)}
	}
	return NewDataset("operations-status", []string{"Status", "Quantidade"}, rows)
}

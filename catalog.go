package paineis

import (
	"github.com/jpalmerr/paineis/internal/data"
	"github.com/jpalmerr/paineis/internal/figure"
	"github.com/jpalmerr/paineis/internal/page"
	"github.com/jpalmerr/paineis/internal/render"
)

// Routes of the built-in pages.
const (
	RouteHome       = page.HomeRoute
	RouteSales      = "/vendas"
	RouteOperations = "/operacoes"
)

// defaultPages returns the built-in page table.
func defaultPages() []page.Page {
	return []page.Page{
		{
			Route: RouteHome,
			Title: "Início",
			Slots: []page.Slot{
				{ID: "home-barras", Title: "Vendas mensais"},
				{ID: "home-dispersao", Title: "Visitas x Vendas"},
				{ID: "home-linha", Title: "Série temporal"},
			},
		},
		{
			Route: RouteSales,
			Title: "Vendas",
			Slots: []page.Slot{
				{ID: "vendas-barras", Title: "Vendas por mês"},
				{ID: "vendas-vs-meta", Title: "Vendas x Meta"},
				{ID: "vendas-linha", Title: "Evolução das vendas"},
			},
		},
		{
			Route: RouteOperations,
			Title: "Operações",
			Slots: []page.Slot{
				{ID: "ops-barras", Title: "Volume por setor"},
				{ID: "ops-gauge", Title: "Eficiência média"},
				{ID: "ops-pizza", Title: "Status das ordens"},
			},
		},
	}
}

// defaultBindings ties every built-in slot to its data source and figure builder.
func defaultBindings() map[string]render.Binding {
	return map[string]render.Binding{
		"home-barras":    {Source: data.SalesVisits, Build: figure.Bar("Mês", "Vendas")},
		"home-dispersao": {Source: data.SalesVisits, Build: figure.Scatter("Visitas", "Vendas", "Vendas", "Mês")},
		"home-linha":     {Source: data.TimeSeries, Build: figure.Line("Data", "Métrica")},

		"vendas-barras":  {Source: data.Sales, Build: figure.Bar("Mês", "Vendas")},
		"vendas-vs-meta": {Source: data.Sales, Build: figure.Versus("Mês", "Vendas", "Meta")},
		"vendas-linha":   {Source: data.Sales, Build: figure.Line("Mês", "Vendas")},

		"ops-barras": {Source: data.Operations, Build: figure.Bar("Setor", "Volume")},
		"ops-gauge":  {Source: data.Operations, Build: figure.Gauge("Eficiência", 0, 100)},
		"ops-pizza":  {Source: data.OperationsStatus, Build: figure.Pie("Status", "Quantidade")},
	}
}

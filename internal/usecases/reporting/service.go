package reporting

import (
	"time"

	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/pkg/utils"
)

const notAvailable = "N/A"

// Reporter calcula os indicadores escalares e a série de tendência da tabela
// filtrada
type Reporter interface {
	Summarize(table *domain.SalesTable) domain.MetricsSummary
	Trend(table *domain.SalesTable) domain.TrendChart
}

type Service struct{}

func NewService() Reporter {
	return &Service{}
}

// Summarize calcula os três indicadores do painel. Em tabela vazia o total é
// "0 units" e os demais indicadores são "N/A".
func (s *Service) Summarize(table *domain.SalesTable) domain.MetricsSummary {
	summary := domain.MetricsSummary{
		TotalSalesDisplay: utils.FormatUnits(0),
		TopCategory:       notAvailable,
		HighestSalesDay:   notAvailable,
	}

	if table.IsEmpty() {
		return summary
	}

	var total float64
	totalsByCategory := make(map[string]float64)

	maxSales := table.Records[0].Sales
	maxSalesDate := table.Records[0].Date

	for _, record := range table.Records {
		total += record.Sales
		totalsByCategory[record.Category] += record.Sales

		// Empate no maior valor unitário: vence a primeira linha na ordem
		// da tabela
		if record.Sales > maxSales {
			maxSales = record.Sales
			maxSalesDate = record.Date
		}
	}

	summary.TotalSales = total
	summary.TotalSalesDisplay = utils.FormatUnits(total)
	summary.TopCategory = topCategory(table, totalsByCategory)
	summary.HighestSalesDay = maxSalesDate.Format(time.DateOnly)

	return summary
}

// topCategory devolve a categoria com o maior somatório de vendas. Em caso
// de empate vence a categoria que aparece primeiro na tabela.
func topCategory(table *domain.SalesTable, totals map[string]float64) string {
	top := ""
	var topTotal float64
	first := true

	for _, category := range table.Categories() {
		if first || totals[category] > topTotal {
			top = category
			topTotal = totals[category]
			first = false
		}
	}

	return top
}

// Trend monta o gráfico multi-série de vendas ao longo do tempo: uma série
// por categoria (na ordem da primeira aparição), pontos na ordem das linhas.
// Tabela vazia produz um gráfico sem séries.
func (s *Service) Trend(table *domain.SalesTable) domain.TrendChart {
	chart := domain.TrendChart{
		Series: make([]domain.TrendSeries, 0),
	}

	if table.IsEmpty() {
		return chart
	}

	seriesIndex := make(map[string]int)

	for _, record := range table.Records {
		idx, ok := seriesIndex[record.Category]
		if !ok {
			idx = len(chart.Series)
			seriesIndex[record.Category] = idx
			chart.Series = append(chart.Series, domain.TrendSeries{
				Category: record.Category,
				Points:   make([]domain.TrendPoint, 0),
			})
		}

		chart.Series[idx].Points = append(chart.Series[idx].Points, domain.TrendPoint{
			Date:  record.Date,
			Sales: record.Sales,
		})
	}

	return chart
}

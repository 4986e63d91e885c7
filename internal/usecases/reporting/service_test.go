package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Summarize(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		table    *domain.SalesTable
		validate func(t *testing.T, summary domain.MetricsSummary)
	}{
		{
			name: "Todas as categorias selecionadas",
			table: &domain.SalesTable{
				Records: []domain.SalesRecord{
					{Date: day(1), Category: "Dresses", Sales: 10},
					{Date: day(2), Category: "Dresses", Sales: 20},
					{Date: day(1), Category: "Shoes", Sales: 5},
				},
			},
			validate: func(t *testing.T, summary domain.MetricsSummary) {
				assert.Equal(t, 35.0, summary.TotalSales)
				assert.Equal(t, "35 units", summary.TotalSalesDisplay)
				assert.Equal(t, "Dresses", summary.TopCategory)
				assert.Equal(t, "2023-01-02", summary.HighestSalesDay)
			},
		},
		{
			name: "Apenas Shoes selecionada",
			table: &domain.SalesTable{
				Records: []domain.SalesRecord{
					{Date: day(1), Category: "Shoes", Sales: 5},
				},
			},
			validate: func(t *testing.T, summary domain.MetricsSummary) {
				assert.Equal(t, 5.0, summary.TotalSales)
				assert.Equal(t, "5 units", summary.TotalSalesDisplay)
				assert.Equal(t, "Shoes", summary.TopCategory)
				assert.Equal(t, "2023-01-01", summary.HighestSalesDay)
			},
		},
		{
			name:  "Tabela vazia",
			table: &domain.SalesTable{},
			validate: func(t *testing.T, summary domain.MetricsSummary) {
				assert.Equal(t, 0.0, summary.TotalSales)
				assert.Equal(t, "0 units", summary.TotalSalesDisplay)
				assert.Equal(t, "N/A", summary.TopCategory)
				assert.Equal(t, "N/A", summary.HighestSalesDay)
			},
		},
		{
			name: "Empate no maior valor unitário: vence a primeira linha",
			table: &domain.SalesTable{
				Records: []domain.SalesRecord{
					{Date: day(5), Category: "Dresses", Sales: 30},
					{Date: day(9), Category: "Shoes", Sales: 30},
				},
			},
			validate: func(t *testing.T, summary domain.MetricsSummary) {
				assert.Equal(t, "2023-01-05", summary.HighestSalesDay)
			},
		},
		{
			name: "Valores fracionários no display",
			table: &domain.SalesTable{
				Records: []domain.SalesRecord{
					{Date: day(1), Category: "Dresses", Sales: 10.5},
					{Date: day(2), Category: "Dresses", Sales: 2},
				},
			},
			validate: func(t *testing.T, summary domain.MetricsSummary) {
				assert.Equal(t, "12.5 units", summary.TotalSalesDisplay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.Summarize(tt.table))
		})
	}
}

func TestService_Trend(t *testing.T) {
	service := NewService()

	t.Run("Uma série por categoria, pontos na ordem das linhas", func(t *testing.T) {
		table := &domain.SalesTable{
			Records: []domain.SalesRecord{
				{Date: day(1), Category: "Dresses", Sales: 10},
				{Date: day(1), Category: "Shoes", Sales: 5},
				{Date: day(2), Category: "Dresses", Sales: 20},
			},
		}

		chart := service.Trend(table)
		require.Len(t, chart.Series, 2)

		assert.Equal(t, "Dresses", chart.Series[0].Category)
		require.Len(t, chart.Series[0].Points, 2)
		assert.Equal(t, day(1), chart.Series[0].Points[0].Date)
		assert.Equal(t, 10.0, chart.Series[0].Points[0].Sales)
		assert.Equal(t, 20.0, chart.Series[0].Points[1].Sales)

		assert.Equal(t, "Shoes", chart.Series[1].Category)
		require.Len(t, chart.Series[1].Points, 1)
	})

	t.Run("Tabela vazia produz gráfico sem séries", func(t *testing.T) {
		chart := service.Trend(&domain.SalesTable{})
		assert.Empty(t, chart.Series)
	})
}

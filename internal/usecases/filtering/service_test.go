package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

func salesTableFixture() *domain.SalesTable {
	day := func(d int) time.Time {
		return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
	}

	return &domain.SalesTable{
		Records: []domain.SalesRecord{
			{Date: day(1), Category: "Dresses", Sales: 10},
			{Date: day(2), Category: "Dresses", Sales: 20},
			{Date: day(1), Category: "Shoes", Sales: 5},
			{Date: day(3), Category: "Hats", Sales: 8},
		},
	}
}

func TestService_Apply(t *testing.T) {
	service := NewService()

	tests := []struct {
		name           string
		enabled        []string
		wantCategories []string
		wantSales      []float64
	}{
		{
			name:           "Todas as categorias habilitadas",
			enabled:        []string{"Dresses", "Shoes", "Hats"},
			wantCategories: []string{"Dresses", "Dresses", "Shoes", "Hats"},
			wantSales:      []float64{10, 20, 5, 8},
		},
		{
			name:           "Apenas uma categoria",
			enabled:        []string{"Shoes"},
			wantCategories: []string{"Shoes"},
			wantSales:      []float64{5},
		},
		{
			name:           "Subconjunto preserva a ordem relativa",
			enabled:        []string{"Hats", "Dresses"},
			wantCategories: []string{"Dresses", "Dresses", "Hats"},
			wantSales:      []float64{10, 20, 8},
		},
		{
			name:           "Nenhuma categoria selecionada devolve tabela vazia",
			enabled:        []string{},
			wantCategories: []string{},
			wantSales:      []float64{},
		},
		{
			name:           "Categoria inexistente não traz linhas",
			enabled:        []string{"Jackets"},
			wantCategories: []string{},
			wantSales:      []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := salesTableFixture()
			filtered := service.Apply(table, domain.NewCategorySelection(tt.enabled))

			gotCategories := make([]string, 0, len(filtered.Records))
			gotSales := make([]float64, 0, len(filtered.Records))
			for _, record := range filtered.Records {
				gotCategories = append(gotCategories, record.Category)
				gotSales = append(gotSales, record.Sales)
			}

			assert.Equal(t, tt.wantCategories, gotCategories)
			assert.Equal(t, tt.wantSales, gotSales)

			// A tabela de origem não é mutada
			assert.Len(t, table.Records, 4)
		})
	}
}

func TestSalesTable_Categories(t *testing.T) {
	table := salesTableFixture()
	assert.Equal(t, []string{"Dresses", "Shoes", "Hats"}, table.Categories())

	empty := &domain.SalesTable{}
	assert.Empty(t, empty.Categories())
}

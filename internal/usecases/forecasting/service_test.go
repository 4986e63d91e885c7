package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

func forecastConfig() config.Forecast {
	return config.Forecast{
		MinHorizonDays:     7,
		MaxHorizonDays:     365,
		DefaultHorizonDays: 30,
		P:                  1,
		D:                  1,
		Q:                  1,
		SeasonalP:          0,
		SeasonalD:          1,
		SeasonalQ:          1,
		SeasonalPeriod:     7,
	}
}

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Forecast_EmptyTable(t *testing.T) {
	service := NewService(forecastConfig())

	result := service.Forecast(&domain.SalesTable{}, 30)

	require.NotNil(t, result)
	assert.False(t, result.Available)
	assert.Equal(t, "Sem dados disponíveis para previsão.", result.Diagnostic)
	assert.Equal(t, 30, result.HorizonDays)
	assert.Empty(t, result.Points)
}

func TestService_Forecast_InsufficientHistory(t *testing.T) {
	service := NewService(forecastConfig())

	tests := []struct {
		name string
		days int
	}{
		{
			name: "Três dias observados",
			days: 3,
		},
		{
			// Três semanas cobrem dois ciclos sazonais, mas ainda não
			// bastam para o ajuste das ordens configuradas
			name: "Três semanas observadas",
			days: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Forecast(dailyTable(tt.days), 30)

			assert.False(t, result.Available)
			assert.Contains(t, result.Diagnostic, "Histórico insuficiente")
			assert.Empty(t, result.Points)
		})
	}
}

func TestService_Forecast_Success(t *testing.T) {
	service := NewService(forecastConfig())

	const days = 90
	const horizon = 7

	result := service.Forecast(dailyTable(days), horizon)

	require.True(t, result.Available, result.Diagnostic)
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, horizon, result.HorizonDays)
	require.Len(t, result.Points, days+horizon)

	// O histórico observado vem primeiro, sem a marca de previsão
	for _, point := range result.Points[:days] {
		assert.False(t, point.Predicted)
	}

	// A previsão estende o histórico dia a dia a partir da última data
	lastObserved := result.Points[days-1].Date
	for i, point := range result.Points[days:] {
		assert.True(t, point.Predicted)
		assert.Equal(t, lastObserved.AddDate(0, 0, i+1), point.Date)
	}
}

// dailyTable gera um histórico diário com tendência e sazonalidade semanal
func dailyTable(days int) *domain.SalesTable {
	table := &domain.SalesTable{
		Records: make([]domain.SalesRecord, 0, days),
	}

	for i := 0; i < days; i++ {
		table.Records = append(table.Records, domain.SalesRecord{
			Date:     day(1).AddDate(0, 0, i),
			Category: "Dresses",
			Sales:    100 + 15*float64(i%7) + 0.5*float64(i) + 3*math.Sin(float64(i)),
		})
	}

	return table
}

func TestResampleDaily(t *testing.T) {
	tests := []struct {
		name       string
		series     *domain.ForecastSeries
		wantDates  []time.Time
		wantValues []float64
	}{
		{
			name: "Vendas do mesmo dia são somadas",
			series: &domain.ForecastSeries{
				Dates:  []time.Time{day(1), day(1), day(2)},
				Values: []float64{10, 5, 20},
			},
			wantDates:  []time.Time{day(1), day(2)},
			wantValues: []float64{15, 20},
		},
		{
			name: "Dias sem venda entram como zero",
			series: &domain.ForecastSeries{
				Dates:  []time.Time{day(1), day(4)},
				Values: []float64{10, 7},
			},
			wantDates:  []time.Time{day(1), day(2), day(3), day(4)},
			wantValues: []float64{10, 0, 0, 7},
		},
		{
			name: "Histórico fora de ordem cobre o intervalo observado",
			series: &domain.ForecastSeries{
				Dates:  []time.Time{day(3), day(1), day(2)},
				Values: []float64{30, 10, 20},
			},
			wantDates:  []time.Time{day(1), day(2), day(3)},
			wantValues: []float64{10, 20, 30},
		},
		{
			name: "Componente de hora é descartado",
			series: &domain.ForecastSeries{
				Dates: []time.Time{
					time.Date(2023, 1, 1, 9, 30, 0, 0, time.UTC),
					time.Date(2023, 1, 1, 18, 0, 0, 0, time.UTC),
				},
				Values: []float64{1, 2},
			},
			wantDates:  []time.Time{day(1)},
			wantValues: []float64{3},
		},
		{
			// 09:00-03:00 equivale a 12:00 UTC; o balde é o mesmo dia
			name: "Datas com offset caem no balde UTC do dia",
			series: &domain.ForecastSeries{
				Dates: []time.Time{
					day(1),
					time.Date(2023, 1, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*60*60)),
				},
				Values: []float64{10, 5},
			},
			wantDates:  []time.Time{day(1)},
			wantValues: []float64{15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := resampleDaily(tt.series)
			assert.Equal(t, tt.wantDates, grid.Dates)
			assert.Equal(t, tt.wantValues, grid.Values)
		})
	}
}

func TestReshape(t *testing.T) {
	table := &domain.SalesTable{
		Records: []domain.SalesRecord{
			{Date: day(2), Category: "Dresses", Sales: 20},
			{Date: day(1), Category: "Shoes", Sales: 5},
		},
	}

	series := reshape(table)

	// A ordem implícita das linhas é preservada; não há reordenação aqui
	assert.Equal(t, []time.Time{day(2), day(1)}, series.Dates)
	assert.Equal(t, []float64{20, 5}, series.Values)
}

package forecasting

import (
	"fmt"
	"time"

	"github.com/sartorproj/goarima/sarima"
	"github.com/sartorproj/goarima/timeseries"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/pkg/log"
	"github.com/vfg2006/fashion-forecast-api/pkg/utils"
)

// Forecaster delega o ajuste e a previsão da série de vendas ao modelo
// externo. Nada do algoritmo de previsão vive aqui: este serviço prepara o
// formato de entrada, escolhe o horizonte e renderiza a saída.
// Ciclos sazonais completos exigidos na estimação, além do que a
// diferenciação consome
const minSeasonalCycles = 4

type Forecaster interface {
	Forecast(table *domain.SalesTable, horizonDays int) *domain.ForecastResult
}

type Service struct {
	cfg config.Forecast
}

func NewService(cfg config.Forecast) Forecaster {
	return &Service{
		cfg: cfg,
	}
}

// Forecast ajusta o modelo sobre o histórico da tabela filtrada e prevê
// horizonDays dias além da última data observada. Tabela vazia ou falha no
// ajuste produzem um diagnóstico no resultado; o restante do painel segue
// sendo renderizado normalmente.
func (s *Service) Forecast(table *domain.SalesTable, horizonDays int) *domain.ForecastResult {
	result := &domain.ForecastResult{
		HorizonDays: horizonDays,
	}

	if table.IsEmpty() {
		result.Diagnostic = "Sem dados disponíveis para previsão."
		return result
	}

	series := reshape(table)
	grid := resampleDaily(series)

	// A diferenciação consome D + Ds*m observações e a estimação ainda
	// precisa de ciclos sazonais completos depois disso; abaixo do mínimo
	// o ajuste falha reclamando da ordem do modelo
	minObservations := s.cfg.D + s.cfg.SeasonalD*s.cfg.SeasonalPeriod +
		minSeasonalCycles*s.cfg.SeasonalPeriod
	if len(grid.Values) < minObservations {
		result.Diagnostic = fmt.Sprintf(
			"Histórico insuficiente para previsão: %d dias observados, mínimo de %d.",
			len(grid.Values), minObservations,
		)
		return result
	}

	predictions, err := s.fitAndPredict(grid.Values, horizonDays)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"rows":         len(table.Records),
			"horizon_days": horizonDays,
		}).Warn("forecast: modelo externo falhou no ajuste")

		result.Diagnostic = fmt.Sprintf("O modelo de previsão falhou no ajuste: %v", err)
		return result
	}

	points := make([]domain.ForecastPoint, 0, len(grid.Values)+len(predictions))
	for i, value := range grid.Values {
		points = append(points, domain.ForecastPoint{
			Date:  grid.Dates[i],
			Value: value,
		})
	}

	lastDate := grid.Dates[len(grid.Dates)-1]
	for i, value := range predictions {
		points = append(points, domain.ForecastPoint{
			Date:      lastDate.AddDate(0, 0, i+1),
			Value:     utils.RoundWithTwoDecimalPlace(value),
			Predicted: true,
		})
	}

	result.Available = true
	result.Points = points
	return result
}

// fitAndPredict isola a chamada ao modelo externo. Falhas de ajuste viram
// erro em vez de derrubar a execução, inclusive panics da biblioteca.
func (s *Service) fitAndPredict(series []float64, horizonDays int) (predictions []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			predictions = nil
			err = fmt.Errorf("panic no modelo de previsão: %v", r)
		}
	}()

	model := sarima.New(
		s.cfg.P, s.cfg.D, s.cfg.Q,
		s.cfg.SeasonalP, s.cfg.SeasonalD, s.cfg.SeasonalQ,
		s.cfg.SeasonalPeriod,
	)

	if err := model.Fit(timeseries.New(series)); err != nil {
		return nil, fmt.Errorf("erro no ajuste do modelo: %w", err)
	}

	predictions, err = model.Predict(horizonDays)
	if err != nil {
		return nil, fmt.Errorf("erro na previsão do modelo: %w", err)
	}

	return predictions, nil
}

// reshape converte a tabela filtrada na série de duas colunas consumida pelo
// modelo, na ordem implícita das linhas
func reshape(table *domain.SalesTable) *domain.ForecastSeries {
	series := &domain.ForecastSeries{
		Dates:  make([]time.Time, 0, len(table.Records)),
		Values: make([]float64, 0, len(table.Records)),
	}

	for _, record := range table.Records {
		series.Dates = append(series.Dates, record.Date)
		series.Values = append(series.Values, record.Sales)
	}

	return series
}

// resampleDaily reamostra a série em uma grade diária regular cobrindo o
// intervalo observado: vendas do mesmo dia são somadas e dias sem venda
// entram como zero. O modelo SARIMA exige espaçamento regular. Os baldes
// são normalizados para UTC antes do truncamento; datas com offset e datas
// simples do mesmo dia caem no mesmo balde.
func resampleDaily(series *domain.ForecastSeries) *domain.ForecastSeries {
	totalsByDay := make(map[time.Time]float64, series.Len())

	first := utils.TruncateToDay(series.Dates[0].UTC())
	last := first

	for i, date := range series.Dates {
		day := utils.TruncateToDay(date.UTC())
		totalsByDay[day] += series.Values[i]

		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	grid := &domain.ForecastSeries{
		Dates:  make([]time.Time, 0),
		Values: make([]float64, 0),
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		grid.Dates = append(grid.Dates, day)
		grid.Values = append(grid.Values, totalsByDay[day])
	}

	return grid
}

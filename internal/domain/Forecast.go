package domain

import "time"

// ForecastSeries é a série de duas colunas (data, valor) entregue ao modelo
// externo de previsão. Derivada da tabela filtrada e descartada após a
// renderização; nada aqui é persistido.
type ForecastSeries struct {
	Dates  []time.Time
	Values []float64
}

// Len retorna o número de pontos da série
func (s *ForecastSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// ForecastPoint é um ponto da série renderizada no gráfico de previsão.
// Predicted distingue o horizonte futuro do histórico observado.
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	Predicted bool      `json:"predicted"`
}

// ForecastResult é o bloco de previsão do payload. Quando a tabela filtrada
// está vazia ou o modelo falha no ajuste, Available é falso e Diagnostic
// explica o motivo — o restante do painel continua sendo renderizado.
type ForecastResult struct {
	Available   bool            `json:"available"`
	Diagnostic  string          `json:"diagnostic,omitempty"`
	HorizonDays int             `json:"horizon_days"`
	Points      []ForecastPoint `json:"points,omitempty"`
}

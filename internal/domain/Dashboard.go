package domain

import "time"

// SourceType identifica qual das duas origens de dados foi usada na requisição
type SourceType string

const (
	SourceUpload   SourceType = "upload"
	SourceDatabase SourceType = "database"
)

// DatabaseSource são os parâmetros de conexão informados pelo usuário para a
// origem via banco de dados. A conexão é aberta, usada e fechada dentro de
// uma única requisição; nada é reaproveitado entre execuções.
type DatabaseSource struct {
	Host     string
	Database string
	User     string
	Password string
	Table    string
}

// DatasetSource descreve a origem de dados de uma execução: exatamente um
// dos dois caminhos é preenchido.
type DatasetSource struct {
	Type     SourceType
	Upload   []byte
	Database *DatabaseSource
}

// DashboardRequest é o estado completo dos widgets de uma interação do
// usuário: origem de dados, categorias habilitadas e horizonte de previsão.
type DashboardRequest struct {
	Source *DatasetSource

	// Categories nil significa "todas habilitadas" (o padrão dos
	// checkboxes); lista vazia significa "nenhuma selecionada", que
	// resulta em tabela filtrada vazia.
	Categories  []string
	HorizonDays int
}

// AllCategories retorna verdadeiro quando o usuário não restringiu categorias
func (r *DashboardRequest) AllCategories() bool {
	return r.Categories == nil
}

// MetricsSummary são os três indicadores escalares do painel
type MetricsSummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalSalesDisplay string  `json:"total_sales_display"`
	TopCategory       string  `json:"top_category"`
	HighestSalesDay   string  `json:"highest_sales_day"`
}

// TrendPoint é um ponto da série temporal de vendas
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Sales float64   `json:"sales"`
}

// TrendSeries é a série de uma categoria no gráfico de tendência
type TrendSeries struct {
	Category string       `json:"category"`
	Points   []TrendPoint `json:"points"`
}

// TrendChart é o gráfico multi-série de vendas ao longo do tempo,
// particionado por categoria
type TrendChart struct {
	Series []TrendSeries `json:"series"`
}

// DashboardResponse é o payload completo de uma execução do pipeline
type DashboardResponse struct {
	RunID               string          `json:"run_id"`
	SourceType          SourceType      `json:"source_type"`
	AvailableCategories []string        `json:"available_categories"`
	SelectedCategories  []string        `json:"selected_categories"`
	Metrics             MetricsSummary  `json:"metrics"`
	Trend               TrendChart      `json:"trend"`
	Forecast            *ForecastResult `json:"forecast"`
	Table               []SalesRecord   `json:"table"`
}

// CategoriesResponse é a resposta da descoberta de categorias, usada pelo
// front para montar os checkboxes
type CategoriesResponse struct {
	SourceType SourceType `json:"source_type"`
	Categories []string   `json:"categories"`
	TotalRows  int        `json:"total_rows"`
}

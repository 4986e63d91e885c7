package domain

import "time"

// Campos canônicos do esquema de vendas. O restante do pipeline depende
// apenas destas três colunas; colunas extras da origem são ignoradas.
const (
	CanonicalDate     = "Date"
	CanonicalCategory = "Category"
	CanonicalSales    = "Sales"
)

// SalesRecord é uma linha normalizada de vendas
type SalesRecord struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Sales    float64   `json:"sales"`
}

// SalesTable é a coleção ordenada de registros de vendas, na ordem de
// inserção da origem. Não é deduplicada nem indexada.
type SalesTable struct {
	Records []SalesRecord `json:"records"`
}

// IsEmpty retorna verdadeiro quando a tabela não possui registros
func (t *SalesTable) IsEmpty() bool {
	return t == nil || len(t.Records) == 0
}

// Categories retorna as categorias distintas na ordem da primeira aparição
func (t *SalesTable) Categories() []string {
	if t == nil {
		return nil
	}

	seen := make(map[string]bool, len(t.Records))
	categories := make([]string, 0)

	for _, record := range t.Records {
		if !seen[record.Category] {
			seen[record.Category] = true
			categories = append(categories, record.Category)
		}
	}

	return categories
}

// CategorySelection é o conjunto de categorias habilitadas pelo usuário
type CategorySelection map[string]bool

// NewCategorySelection monta a seleção a partir da lista de categorias
// habilitadas
func NewCategorySelection(enabled []string) CategorySelection {
	selection := make(CategorySelection, len(enabled))
	for _, category := range enabled {
		selection[category] = true
	}
	return selection
}

// Contains verifica se a categoria está habilitada
func (s CategorySelection) Contains(category string) bool {
	return s[category]
}

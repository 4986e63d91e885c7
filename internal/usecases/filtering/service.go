package filtering

import (
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

// Filter aplica a seleção de categorias do usuário sobre a tabela de vendas
type Filter interface {
	Apply(table *domain.SalesTable, selection domain.CategorySelection) *domain.SalesTable
}

type Service struct{}

func NewService() Filter {
	return &Service{}
}

// Apply devolve as linhas cuja categoria está habilitada, preservando a
// ordem relativa da origem. Seleção vazia devolve a tabela vazia — o
// "nenhuma selecionada" explícito dos checkboxes, não um erro. Nenhuma linha
// é mutada.
func (s *Service) Apply(table *domain.SalesTable, selection domain.CategorySelection) *domain.SalesTable {
	filtered := &domain.SalesTable{
		Records: make([]domain.SalesRecord, 0, len(table.Records)),
	}

	for _, record := range table.Records {
		if selection.Contains(record.Category) {
			filtered.Records = append(filtered.Records, record)
		}
	}

	return filtered
}

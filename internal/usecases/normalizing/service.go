package normalizing

import (
	"strconv"
	"strings"

	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/pkg/utils"
)

// Campos semânticos procurados nos nomes das colunas, na ordem de resolução
var semanticFields = []string{"date", "sales", "category"}

// Normalizer resolve colunas arbitrárias da origem para os três campos
// canônicos e faz a coerção de tipos, produzindo a SalesTable
type Normalizer interface {
	Normalize(raw *domain.RawTable) (*domain.SalesTable, error)
}

type Service struct{}

func NewService() Normalizer {
	return &Service{}
}

// Normalize localiza, para cada campo semântico, a primeira coluna cujo nome
// (minúsculo e sem espaços nas bordas) contém o campo como substring. A
// primeira coluna que casar vence; não há aviso para ambiguidade. Uma coluna
// já reivindicada por um campo anterior não é reaproveitada. A resolução é
// feita em uma única passada e é idempotente sobre a própria saída.
func (s *Service) Normalize(raw *domain.RawTable) (*domain.SalesTable, error) {
	normalized := make([]string, len(raw.Columns))
	for i, column := range raw.Columns {
		normalized[i] = strings.ToLower(strings.TrimSpace(column))
	}

	indexes := make(map[string]int, len(semanticFields))
	claimed := make(map[int]bool, len(semanticFields))

	for _, field := range semanticFields {
		found := false
		for i, column := range normalized {
			if claimed[i] {
				continue
			}
			if strings.Contains(column, field) {
				indexes[field] = i
				claimed[i] = true
				found = true
				break
			}
		}

		if !found {
			return nil, &SchemaError{
				Field:            capitalize(field),
				AvailableColumns: normalized,
			}
		}
	}

	dateIdx := indexes["date"]
	salesIdx := indexes["sales"]
	categoryIdx := indexes["category"]

	table := &domain.SalesTable{
		Records: make([]domain.SalesRecord, 0, len(raw.Rows)),
	}

	for rowNum, row := range raw.Rows {
		record := domain.SalesRecord{}

		date, err := utils.ParseDate(cell(row, dateIdx))
		if err != nil {
			return nil, &CoercionError{
				Row:    rowNum + 1,
				Column: domain.CanonicalDate,
				Value:  cell(row, dateIdx),
				Err:    err,
			}
		}
		record.Date = date

		salesValue := strings.TrimSpace(cell(row, salesIdx))
		sales, err := strconv.ParseFloat(salesValue, 64)
		if err != nil {
			return nil, &CoercionError{
				Row:    rowNum + 1,
				Column: domain.CanonicalSales,
				Value:  salesValue,
				Err:    err,
			}
		}
		record.Sales = sales

		record.Category = cell(row, categoryIdx)

		table.Records = append(table.Records, record)
	}

	return table, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func capitalize(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

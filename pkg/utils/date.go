package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos na coerção da coluna de datas, testados em ordem
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"01-02-2006",
}

// ParseDate converte um valor textual de data para time.Time, aceitando um
// conjunto pequeno de formatos comuns em planilhas de vendas
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", trimmed)
}

// TruncateToDay zera o componente de hora, mantendo apenas a data de calendário
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

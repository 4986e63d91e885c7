package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{name: "Identificador simples", table: "fashion_sales", wantErr: false},
		{name: "Com schema", table: "public.fashion_sales", wantErr: false},
		{name: "Começando com underscore", table: "_staging", wantErr: false},
		{name: "Com dígitos", table: "sales2024", wantErr: false},
		{name: "Vazio", table: "", wantErr: true},
		{name: "Com espaço", table: "fashion sales", wantErr: true},
		{name: "Com aspas", table: `sales"; --`, wantErr: true},
		{name: "Tentativa de injeção", table: "sales; DROP TABLE users", wantErr: true},
		{name: "Com ponto e vírgula", table: "sales;", wantErr: true},
		{name: "Começando com dígito", table: "2024sales", wantErr: true},
		{name: "Dois pontos de schema", table: "a.b.c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTableName(tt.table)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTableName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package normalizing

import "fmt"

// SchemaError indica que nenhuma coluna da origem corresponde a um dos
// campos canônicos. Carrega o campo ausente e as colunas disponíveis para a
// mensagem exibida ao usuário.
type SchemaError struct {
	Field            string
	AvailableColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"nenhuma coluna relacionada a %q encontrada (colunas disponíveis: %v)",
		e.Field, e.AvailableColumns,
	)
}

// CoercionError indica falha ao converter uma célula para o tipo do campo
// canônico. A falha encerra a execução inteira; não há descarte por linha.
type CoercionError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf(
		"falha ao converter o valor %q da coluna %s na linha %d: %v",
		e.Value, e.Column, e.Row, e.Err,
	)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

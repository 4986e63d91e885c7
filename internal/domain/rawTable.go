package domain

// RawTable é a tabela bruta produzida pela aquisição de dados (upload ou
// banco), antes da normalização de esquema. As células são mantidas como
// texto; a coerção de tipos acontece no normalizador.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// IsEmpty retorna verdadeiro quando a tabela não possui linhas
func (t *RawTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

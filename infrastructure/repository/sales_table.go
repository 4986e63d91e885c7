package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/fashion-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

// Nomes de tabela aceitos: identificadores SQL simples, opcionalmente com
// schema (schema.tabela). O nome vem do usuário e é interpolado na query,
// então qualquer coisa fora deste padrão é rejeitada antes da montagem.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

var (
	// ErrInvalidTableName indica um nome de tabela fora do padrão permitido
	ErrInvalidTableName = errors.New("nome de tabela inválido")

	// ErrConnectionFailure indica falha na conexão ou na consulta ao banco
	ErrConnectionFailure = errors.New("falha de conexão ou consulta ao banco de dados")
)

type SalesRepository interface {
	LoadTable(ctx context.Context, source *domain.DatabaseSource) (*domain.RawTable, error)
}

type salesRepository struct {
	cfg config.Database
}

func NewSalesRepository(cfg config.Database) SalesRepository {
	return &salesRepository{
		cfg: cfg,
	}
}

// LoadTable abre uma conexão com as credenciais da requisição, executa um
// SELECT * na tabela informada e devolve todas as linhas como texto. Uma
// consulta sem linhas devolve a tabela vazia com as colunas canônicas, em
// vez de falhar.
func (r *salesRepository) LoadTable(ctx context.Context, source *domain.DatabaseSource) (*domain.RawTable, error) {
	if err := ValidateTableName(source.Table); err != nil {
		return nil, err
	}

	conn, err := postgres.NewConnection(ctx, r.cfg, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	defer conn.Close()

	query, args, err := squirrel.
		Select("*").
		From(source.Table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return nil, fmt.Errorf("%w: %v (código: %s)", ErrConnectionFailure, pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter colunas do resultado: %w", err)
	}

	table := &domain.RawTable{
		Columns: columns,
		Rows:    make([][]string, 0),
	}

	values := make([]sql.RawBytes, len(columns))
	scanArgs := make([]interface{}, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}

		row := make([]string, len(columns))
		for i, value := range values {
			if value != nil {
				row[i] = string(value)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Consulta vazia: devolver a tabela com as colunas canônicas para que o
	// restante do pipeline renderize o painel vazio normalmente
	if len(table.Rows) == 0 {
		table.Columns = []string{
			domain.CanonicalDate,
			domain.CanonicalCategory,
			domain.CanonicalSales,
		}
	}

	return table, nil
}

// ValidateTableName rejeita nomes de tabela fora do padrão de identificador
// permitido
func ValidateTableName(table string) error {
	if table == "" {
		return fmt.Errorf("%w: nome não informado", ErrInvalidTableName)
	}

	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
)

// Connection é uma conexão de vida curta: aberta com as credenciais
// fornecidas na requisição, usada para uma única consulta e fechada antes da
// resposta. Não há pool nem reaproveitamento entre execuções.
type Connection struct {
	*sql.DB
}

// NewConnection abre e valida uma conexão usando os parâmetros informados
// pelo usuário. O ping respeita o timeout configurado, para que um banco sem
// resposta não bloqueie a execução indefinidamente.
func NewConnection(
	ctx context.Context,
	cfg config.Database,
	source *domain.DatabaseSource,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, buildDSN(cfg, source))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeoutSeconds)*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, sql, args...)
}

func (c *Connection) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return c.DB.QueryRowContext(ctx, sql, args...)
}

// buildDSN monta a string de conexão a partir das credenciais da requisição.
// Usuário e senha passam por escape de URL.
func buildDSN(cfg config.Database, source *domain.DatabaseSource) string {
	host := source.Host
	if host == "" {
		host = "localhost"
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		cfg.Driver,
		url.QueryEscape(source.User),
		url.QueryEscape(source.Password),
		host,
		cfg.DefaultPort,
		url.PathEscape(source.Database),
		cfg.SSLMode,
		cfg.ConnectTimeoutSeconds,
	)
}

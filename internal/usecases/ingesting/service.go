package ingesting

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/fashion-forecast-api/infrastructure/repository"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/pkg/log"
)

// Ingester define a interface de aquisição de dados: exatamente uma das duas
// origens (upload ou banco) produz a tabela bruta de uma execução
type Ingester interface {
	Acquire(ctx context.Context, source *domain.DatasetSource) (*domain.RawTable, error)
}

type Service struct {
	salesRepo repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) Ingester {
	return &Service{
		salesRepo: salesRepo,
	}
}

// Acquire produz a tabela bruta da origem escolhida pelo usuário
func (s *Service) Acquire(ctx context.Context, source *domain.DatasetSource) (*domain.RawTable, error) {
	logger := log.ForContext(ctx)

	if source == nil {
		return nil, ErrInputUnavailable
	}

	switch source.Type {
	case domain.SourceUpload:
		if len(source.Upload) == 0 {
			return nil, ErrInputUnavailable
		}

		table, err := parseDelimitedFile(source.Upload)
		if err != nil {
			return nil, err
		}

		logger.WithFields(log.Fields{
			"source": domain.SourceUpload,
			"rows":   len(table.Rows),
		}).Info("ingest: arquivo interpretado com sucesso")

		return table, nil

	case domain.SourceDatabase:
		if source.Database == nil {
			return nil, ErrInputUnavailable
		}

		table, err := s.salesRepo.LoadTable(ctx, source.Database)
		if err != nil {
			return nil, err
		}

		logger.WithFields(log.Fields{
			"source": domain.SourceDatabase,
			"rows":   len(table.Rows),
		}).Info("ingest: tabela carregada do banco de dados")

		return table, nil
	}

	return nil, ErrInputUnavailable
}

// parseDelimitedFile interpreta o arquivo enviado como texto delimitado com
// linha de cabeçalho. Linhas podem ter menos campos que o cabeçalho; os
// campos ausentes ficam vazios.
func parseDelimitedFile(data []byte) (*domain.RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyUpload
	}
	if err != nil {
		return nil, errors.Wrap(ErrMalformedUpload, err.Error())
	}

	table := &domain.RawTable{
		Columns: header,
		Rows:    make([][]string, 0),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrMalformedUpload, err.Error())
		}

		row := make([]string, len(header))
		copy(row, record)
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

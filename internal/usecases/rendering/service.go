package rendering

import (
	"context"

	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/filtering"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/ingesting"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/normalizing"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/reporting"
	"github.com/vfg2006/fashion-forecast-api/pkg/log"
	"github.com/vfg2006/fashion-forecast-api/pkg/utils"
)

// Renderer executa o pipeline completo de uma interação do usuário. Cada
// chamada reconstrói tudo do zero a partir do estado dos widgets: não há
// cache nem estado compartilhado entre execuções.
type Renderer interface {
	// RenderDashboard executa aquisição, normalização, filtro, métricas,
	// tendência e previsão, devolvendo o payload completo do painel
	RenderDashboard(ctx context.Context, req *domain.DashboardRequest) (*domain.DashboardResponse, error)

	// DiscoverCategories executa apenas aquisição e normalização,
	// devolvendo as categorias distintas para montagem dos checkboxes
	DiscoverCategories(ctx context.Context, source *domain.DatasetSource) (*domain.CategoriesResponse, error)
}

type Service struct {
	ingester   ingesting.Ingester
	normalizer normalizing.Normalizer
	filter     filtering.Filter
	reporter   reporting.Reporter
	forecaster forecasting.Forecaster
}

func NewService(
	ingester ingesting.Ingester,
	normalizer normalizing.Normalizer,
	filter filtering.Filter,
	reporter reporting.Reporter,
	forecaster forecasting.Forecaster,
) Renderer {
	return &Service{
		ingester:   ingester,
		normalizer: normalizer,
		filter:     filter,
		reporter:   reporter,
		forecaster: forecaster,
	}
}

func (s *Service) RenderDashboard(ctx context.Context, req *domain.DashboardRequest) (*domain.DashboardResponse, error) {
	logger := log.ForContext(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	raw, err := s.ingester.Acquire(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	table, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	available := table.Categories()

	// Categorias não restringidas na requisição: todas habilitadas, o
	// padrão dos checkboxes
	selected := req.Categories
	if req.AllCategories() {
		selected = available
	}

	filtered := s.filter.Apply(table, domain.NewCategorySelection(selected))

	logger.WithFields(log.Fields{
		"run_id":       runID,
		"source":       req.Source.Type,
		"rows":         len(filtered.Records),
		"categories":   len(selected),
		"horizon_days": req.HorizonDays,
	}).Info("dashboard: pipeline executado")

	return &domain.DashboardResponse{
		RunID:               runID,
		SourceType:          req.Source.Type,
		AvailableCategories: available,
		SelectedCategories:  selected,
		Metrics:             s.reporter.Summarize(filtered),
		Trend:               s.reporter.Trend(filtered),
		Forecast:            s.forecaster.Forecast(filtered, req.HorizonDays),
		Table:               filtered.Records,
	}, nil
}

func (s *Service) DiscoverCategories(ctx context.Context, source *domain.DatasetSource) (*domain.CategoriesResponse, error) {
	raw, err := s.ingester.Acquire(ctx, source)
	if err != nil {
		return nil, err
	}

	table, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	return &domain.CategoriesResponse{
		SourceType: source.Type,
		Categories: table.Categories(),
		TotalRows:  len(table.Records),
	}, nil
}

package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fashion-forecast-api/infrastructure/repository"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/ingesting"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/normalizing"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/rendering"
	"github.com/vfg2006/fashion-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/fashion-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RenderDashboard executa o pipeline completo para uma interação do usuário.
// O formulário multipart carrega o estado de todos os widgets: a origem de
// dados (arquivo ou credenciais de banco), as categorias habilitadas e o
// horizonte de previsão.
func RenderDashboard(service rendering.Renderer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, apiErr := parseDashboardRequest(w, r, cfg)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		logger.WithFields(log.Fields{
			"source":       req.Source.Type,
			"horizon_days": req.HorizonDays,
		}).Info("dashboard: iniciando execução do pipeline")

		response, err := service.RenderDashboard(r.Context(), req)
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DiscoverCategories executa apenas aquisição e normalização para devolver
// as categorias distintas da origem, usadas na montagem dos checkboxes
func DiscoverCategories(service rendering.Renderer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		source, apiErr := parseDatasetSource(w, r, cfg)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		response, err := service.DiscoverCategories(r.Context(), source)
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("categories: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// parseDashboardRequest extrai o estado completo dos widgets do formulário
func parseDashboardRequest(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*domain.DashboardRequest, *apiErrors.APIError) {
	source, apiErr := parseDatasetSource(w, r, cfg)
	if apiErr != nil {
		return nil, apiErr
	}

	req := &domain.DashboardRequest{
		Source:      source,
		HorizonDays: cfg.Forecast.DefaultHorizonDays,
	}

	// Campo ausente = todas as categorias habilitadas; campo presente e
	// vazio = nenhuma selecionada
	if values, ok := r.MultipartForm.Value["categories"]; ok && len(values) > 0 {
		req.Categories = splitCategories(values[0])
	}

	if values, ok := r.MultipartForm.Value["horizon_days"]; ok && len(values) > 0 {
		horizon, err := strconv.Atoi(strings.TrimSpace(values[0]))
		if err != nil {
			return nil, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidFormat,
				Message: "Horizonte de previsão inválido",
			}
		}

		if horizon < cfg.Forecast.MinHorizonDays || horizon > cfg.Forecast.MaxHorizonDays {
			return nil, &apiErrors.APIError{
				Code: apiErrors.ErrInvalidRequest,
				Message: fmt.Sprintf(
					"Horizonte de previsão fora dos limites: informe um valor entre %d e %d dias",
					cfg.Forecast.MinHorizonDays, cfg.Forecast.MaxHorizonDays,
				),
			}
		}

		req.HorizonDays = horizon
	}

	return req, nil
}

// parseDatasetSource resolve qual das duas origens a requisição traz:
// arquivo enviado ou credenciais de banco de dados
func parseDatasetSource(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*domain.DatasetSource, *apiErrors.APIError) {
	r.Body = http.MaxBytesReader(w, r.Body, cfg.Upload.MaxBytes)

	if err := r.ParseMultipartForm(cfg.Upload.MaxBytes); err != nil {
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidRequest,
			Message: "Formulário multipart inválido: " + err.Error(),
		}
	}

	if r.FormValue("use_database") == "true" {
		source := &domain.DatabaseSource{
			Host:     strings.TrimSpace(r.FormValue("db_host")),
			Database: strings.TrimSpace(r.FormValue("db_name")),
			User:     strings.TrimSpace(r.FormValue("db_user")),
			Password: r.FormValue("db_password"),
			Table:    strings.TrimSpace(r.FormValue("db_table")),
		}

		if source.Database == "" || source.User == "" || source.Table == "" {
			return nil, &apiErrors.APIError{
				Code:    apiErrors.ErrMissingRequiredData,
				Message: "Informe nome do banco, usuário e tabela para a conexão",
			}
		}

		return &domain.DatasetSource{
			Type:     domain.SourceDatabase,
			Database: source,
		}, nil
	}

	file, _, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrInputUnavailable,
			Message: "Envie um arquivo ou conecte a um banco de dados",
		}
	}
	if err != nil {
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrUploadParse,
			Message: "Erro ao ler o arquivo enviado: " + err.Error(),
		}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrUploadParse,
			Message: "Erro ao ler o arquivo enviado: " + err.Error(),
		}
	}

	return &domain.DatasetSource{
		Type:   domain.SourceUpload,
		Upload: data,
	}, nil
}

func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		categories = append(categories, strings.TrimSpace(part))
	}

	return categories
}

// writePipelineError traduz as falhas do pipeline para a taxonomia de erros
// da API
func writePipelineError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("dashboard: falha na execução do pipeline")

	var schemaErr *normalizing.SchemaError
	if errors.As(err, &schemaErr) {
		apiErrors.WriteError(w, apiErrors.ErrSchemaMissing,
			fmt.Sprintf("Nenhuma coluna relacionada a %q encontrada", schemaErr.Field),
			map[string]any{
				"missing_field":     schemaErr.Field,
				"available_columns": schemaErr.AvailableColumns,
			})
		return
	}

	var coercionErr *normalizing.CoercionError
	if errors.As(err, &coercionErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, coercionErr.Error(),
			map[string]any{
				"row":    coercionErr.Row,
				"column": coercionErr.Column,
				"value":  coercionErr.Value,
			})
		return
	}

	switch {
	case errors.Is(err, ingesting.ErrInputUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrInputUnavailable, err.Error(), nil)
	case errors.Is(err, ingesting.ErrMalformedUpload), errors.Is(err, ingesting.ErrEmptyUpload):
		apiErrors.WriteError(w, apiErrors.ErrUploadParse, err.Error(), nil)
	case errors.Is(err, repository.ErrInvalidTableName):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrConnectionFailure):
		apiErrors.WriteError(w, apiErrors.ErrConnectionFailure, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

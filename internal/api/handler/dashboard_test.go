package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/domain"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/normalizing"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/rendering/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.Upload{MaxBytes: 1 << 20},
		Forecast: config.Forecast{
			MinHorizonDays:     7,
			MaxHorizonDays:     365,
			DefaultHorizonDays: 30,
		},
	}
}

type formField struct {
	name  string
	value string
}

func multipartBody(t *testing.T, csvContent string, fields ...formField) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if csvContent != "" {
		part, err := writer.CreateFormFile("file", "sales.csv")
		require.NoError(t, err)
		_, err = io.WriteString(part, csvContent)
		require.NoError(t, err)
	}

	for _, field := range fields {
		require.NoError(t, writer.WriteField(field.name, field.value))
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestRenderDashboard(t *testing.T) {
	csvContent := "date,category,sales\n2023-01-01,Dresses,10\n"

	tests := []struct {
		name       string
		csv        string
		fields     []formField
		setup      func(mock *mocks.MockRenderer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Upload sem filtros usa os padrões dos widgets",
			csv:  csvContent,
			setup: func(mock *mocks.MockRenderer) {
				mock.EXPECT().
					RenderDashboard(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.DashboardRequest) (*domain.DashboardResponse, error) {
						assert.Equal(t, domain.SourceUpload, req.Source.Type)
						assert.Nil(t, req.Categories)
						assert.Equal(t, 30, req.HorizonDays)
						return &domain.DashboardResponse{RunID: "abc123"}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"run_id":"abc123"`,
		},
		{
			name: "Campo de categorias vazio significa nenhuma selecionada",
			csv:  csvContent,
			fields: []formField{
				{name: "categories", value: ""},
				{name: "horizon_days", value: "7"},
			},
			setup: func(mock *mocks.MockRenderer) {
				mock.EXPECT().
					RenderDashboard(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.DashboardRequest) (*domain.DashboardResponse, error) {
						require.NotNil(t, req.Categories)
						assert.Empty(t, req.Categories)
						assert.Equal(t, 7, req.HorizonDays)
						return &domain.DashboardResponse{RunID: "abc123"}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Lista de categorias separada por vírgula",
			csv:  csvContent,
			fields: []formField{
				{name: "categories", value: "Dresses, Shoes"},
			},
			setup: func(mock *mocks.MockRenderer) {
				mock.EXPECT().
					RenderDashboard(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.DashboardRequest) (*domain.DashboardResponse, error) {
						assert.Equal(t, []string{"Dresses", "Shoes"}, req.Categories)
						return &domain.DashboardResponse{RunID: "abc123"}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Horizonte abaixo do mínimo é rejeitado",
			csv:  csvContent,
			fields: []formField{
				{name: "horizon_days", value: "0"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"VAL_001"`,
		},
		{
			name: "Horizonte acima do máximo é rejeitado",
			csv:  csvContent,
			fields: []formField{
				{name: "horizon_days", value: "366"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"VAL_001"`,
		},
		{
			name:       "Sem arquivo e sem banco de dados",
			csv:        "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"ING_001"`,
		},
		{
			name: "Banco de dados sem tabela informada",
			csv:  "",
			fields: []formField{
				{name: "use_database", value: "true"},
				{name: "db_host", value: "localhost"},
				{name: "db_name", value: "fashion"},
				{name: "db_user", value: "analyst"},
				{name: "db_password", value: "secret"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"VAL_002"`,
		},
		{
			name: "Coluna semântica ausente vira erro de esquema",
			csv:  "date,sales\n2023-01-01,10\n",
			setup: func(mock *mocks.MockRenderer) {
				mock.EXPECT().
					RenderDashboard(gomock.Any(), gomock.Any()).
					Return(nil, &normalizing.SchemaError{
						Field:            "Category",
						AvailableColumns: []string{"date", "sales"},
					})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"VAL_004"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRenderer := mocks.NewMockRenderer(ctrl)
			if tt.setup != nil {
				tt.setup(mockRenderer)
			}

			body, contentType := multipartBody(t, tt.csv, tt.fields...)
			req := httptest.NewRequest(http.MethodPost, "/v1/dashboard", body)
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()

			RenderDashboard(mockRenderer, testConfig()).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestDiscoverCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRenderer := mocks.NewMockRenderer(ctrl)
	mockRenderer.EXPECT().
		DiscoverCategories(gomock.Any(), gomock.Any()).
		Return(&domain.CategoriesResponse{
			SourceType: domain.SourceUpload,
			Categories: []string{"Dresses", "Shoes"},
			TotalRows:  3,
		}, nil)

	body, contentType := multipartBody(t, "date,category,sales\n2023-01-01,Dresses,10\n")
	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/categories", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	DiscoverCategories(mockRenderer, testConfig()).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Dresses"`)
}

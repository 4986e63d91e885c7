package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fashion-forecast-api/infrastructure/repository"
	"github.com/vfg2006/fashion-forecast-api/internal/api"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/filtering"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/ingesting"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/normalizing"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/rendering"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Nenhuma conexão de banco é aberta aqui: as credenciais chegam no
	// estado dos widgets de cada requisição e a conexão vive só dentro dela
	salesRepo := repository.NewSalesRepository(cfg.Database)

	renderService := rendering.NewService(
		ingesting.NewService(salesRepo),
		normalizing.NewService(),
		filtering.NewService(),
		reporting.NewService(),
		forecasting.NewService(cfg.Forecast),
	)

	server, err := api.New(cfg, renderService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

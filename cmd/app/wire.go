//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Aditya10bit/UpTrends-sub001/internal/bootstrap"
	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/config"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/llm/gemini"
	httpiface "github.com/Aditya10bit/UpTrends-sub001/internal/interface/http"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideStylistConfig,
		provideGeminiClient,
		provideLimiters,
		provideCatalogSource,
		stylist.NewService,
		wire.Bind(new(stylist.ModelClient), new(*gemini.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/catalog"
	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/catalogrepo"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/config"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/llm/gemini"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/ratelimit"
)

func provideStylistConfig(cfg *config.Config) stylist.Config {
	return stylist.Config{
		PrimaryModel:  cfg.Gemini.PrimaryModel,
		FallbackModel: cfg.Gemini.FallbackModel,
		Temperature:   cfg.Gemini.Temperature,
		MaxAttempts:   cfg.Stylist.Retry.MaxAttempts,
		RetryBase:     cfg.Stylist.Retry.BaseBackoff,
	}
}

func provideGeminiClient(cfg *config.Config, logger *slog.Logger) (*gemini.Client, error) {
	return gemini.NewClient(context.Background(), cfg.Gemini.APIKey, logger)
}

func provideLimiters(cfg *config.Config) stylist.Limiters {
	return stylist.Limiters{
		Generation: ratelimit.New(cfg.Stylist.Generation.MaxCalls, cfg.Stylist.Generation.Window),
		Validation: ratelimit.New(cfg.Stylist.Validation.MaxCalls, cfg.Stylist.Validation.Window),
	}
}

func provideCatalogSource(cfg *config.Config, logger *slog.Logger) catalog.Source {
	path := strings.TrimSpace(cfg.Catalog.Path)
	if path == "" {
		logger.Info("catalog path not set, using built-in catalog")
		return catalogrepo.NewMemorySource()
	}
	source, err := catalogrepo.NewFileSource(path)
	if err != nil {
		logger.Warn("catalog file unavailable, using built-in catalog", "path", path, "error", err)
		return catalogrepo.NewMemorySource()
	}
	logger.Info("catalog loaded", "path", path, "entries", len(source.List()))
	return source
}

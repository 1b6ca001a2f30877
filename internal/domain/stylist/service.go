// Package stylist implements the outfit recommendation pipeline: rate-limited
// model calls with bounded retries, response extraction, and a rule-based
// fallback that guarantees the caller always receives a complete result.
package stylist

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/llm/gemini"
	apperrors "github.com/Aditya10bit/UpTrends-sub001/pkg/errors"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/metrics"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/ratelimit"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/retry"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/util"
)

// Service exposes the recommendation capabilities.
type Service interface {
	Generate(ctx context.Context, req RecommendationRequest) (RecommendationSet, error)
	ValidateImages(ctx context.Context, images []ImageAttachment) ([]ImageValidation, error)
}

// ModelClient is the slice of the Gemini client this domain depends on.
type ModelClient interface {
	GenerateContent(ctx context.Context, req gemini.Request) (gemini.Response, error)
}

// Limiters holds the per-call-site admission controls. Generation and image
// validation draw from separate quotas.
type Limiters struct {
	Generation *ratelimit.Limiter
	Validation *ratelimit.Limiter
}

type service struct {
	cfg      Config
	client   ModelClient
	limiters Limiters
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the stylist domain.
func NewService(cfg Config, client ModelClient, limiters Limiters, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		client:   client,
		limiters: limiters,
		logger:   logger.With("component", "stylist.service"),
		now:      util.NowUTC,
	}
}

// Generate produces a recommendation set. The only error it ever returns is
// rate_limit_exceeded; every failure past admission falls back to the rule
// engine so the caller still gets outfits.
func (s *service) Generate(ctx context.Context, req RecommendationRequest) (RecommendationSet, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return RecommendationSet{}, apperrors.Wrap("invalid_input", "prompt cannot be empty", nil)
	}

	if !s.limiters.Generation.Allow() {
		wait := s.limiters.Generation.RetryAfter()
		s.logger.Warn("generation rate limit hit", "retry_after", wait)
		return RecommendationSet{}, apperrors.Wrap("rate_limit_exceeded", "too many generation requests", &RateLimitError{Wait: wait})
	}

	var usage metrics.TokenUsage
	outfits, err := retry.Do(ctx, retry.Config{
		MaxAttempts: s.cfg.MaxAttempts,
		Base:        s.cfg.RetryBase,
		Retryable:   isRetryable,
	}, func(ctx context.Context, attempt int) ([]OutfitRecommendation, error) {
		out, attemptUsage, err := s.generateOnce(ctx, req, attempt)
		usage = usage.Add(attemptUsage)
		return out, err
	})
	if !usage.IsZero() {
		s.logger.Info("generation tokens used",
			"prompt_tokens", usage.PromptTokens, "total_tokens", usage.TotalTokens)
	}
	if err != nil {
		s.logger.Warn("ai generation failed, using rule engine", "error", err)
		set := fallbackSet(req.Prompt, req.Profile, req.Context)
		return s.finalize(set, req), nil
	}

	set := RecommendationSet{
		Source:  SourceAI,
		Outfits: outfits,
		Tips:    stylingTips(req.Profile),
	}
	if req.Context != nil && req.Context.Location != nil {
		set.LocationNote = locationNote(req.Context.Location)
	}
	return s.finalize(set, req), nil
}

// generateOnce performs a single model attempt. The first attempt uses the
// primary model; later attempts downgrade to the fallback model, trading
// quality for availability.
func (s *service) generateOnce(ctx context.Context, req RecommendationRequest, attempt int) ([]OutfitRecommendation, metrics.TokenUsage, error) {
	model := s.cfg.PrimaryModel
	if attempt > 1 {
		model = s.cfg.FallbackModel
	}

	genReq := gemini.Request{
		Model:       model,
		Prompt:      s.buildGenerationPrompt(req),
		Temperature: s.cfg.Temperature,
	}
	if req.Image != nil {
		genReq.Images = []gemini.Image{{MIMEType: req.Image.MIMEType, Data: req.Image.Data}}
	}

	resp, err := s.client.GenerateContent(ctx, genReq)
	if err != nil {
		s.logger.Warn("generation attempt failed", "attempt", attempt, "model", model, "error", err)
		return nil, resp.Usage, err
	}

	outfits, err := parseOutfits(resp.Text)
	if err != nil {
		s.logger.Warn("generation response malformed", "attempt", attempt, "model", model, "error", err)
		return nil, resp.Usage, apperrors.Wrap("parse_error", "model response malformed", err)
	}
	return outfits, resp.Usage, nil
}

// finalize stamps identity and attaches the derived extras shared by both
// paths: shopping links per outfit and the color palette.
func (s *service) finalize(set RecommendationSet, req RecommendationRequest) RecommendationSet {
	for i := range set.Outfits {
		set.Outfits[i].Links = buildLinks(set.Outfits[i].Outfit, req.Prompt)
	}
	if len(set.Palette) == 0 {
		set.Palette = collectPalette(set.Outfits, 4)
	}
	set.ID = uuid.NewString()
	set.CreatedAt = s.now().UTC()
	return set
}

// isRetryable: transient upstream trouble and malformed payloads earn another
// attempt, hard rejections do not.
func isRetryable(err error) bool {
	return apperrors.IsCode(err, "service_overloaded") || apperrors.IsCode(err, "parse_error")
}

type validationWire struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason"`
}

// ValidateImages checks every image concurrently and reports per-image
// outcomes in input order. Verification trouble is never fatal: an image that
// cannot be checked is passed through as valid with an explanatory reason.
func (s *service) ValidateImages(ctx context.Context, images []ImageAttachment) ([]ImageValidation, error) {
	if len(images) == 0 {
		return nil, apperrors.Wrap("invalid_input", "at least one image is required", nil)
	}

	results := make([]ImageValidation, len(images))
	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(idx int, img ImageAttachment) {
			defer wg.Done()
			results[idx] = s.validateOne(ctx, idx, img)
		}(i, img)
	}
	wg.Wait()
	return results, nil
}

func (s *service) validateOne(ctx context.Context, idx int, img ImageAttachment) ImageValidation {
	permissive := ImageValidation{Index: idx, IsValid: true, Reason: "could not verify image, accepting as-is"}

	if !s.limiters.Validation.Allow() {
		s.logger.Warn("validation rate limit hit, skipping check", "index", idx)
		return permissive
	}

	resp, err := s.client.GenerateContent(ctx, gemini.Request{
		Model:  s.cfg.FallbackModel,
		Prompt: imageValidationPrompt,
		Images: []gemini.Image{{MIMEType: img.MIMEType, Data: img.Data}},
	})
	if err != nil {
		s.logger.Warn("image validation call failed", "index", idx, "error", err)
		return permissive
	}

	payload, err := extractJSON(resp.Text)
	if err != nil {
		return permissive
	}
	var wire validationWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		s.logger.Warn("image validation response malformed", "index", idx, "error", err)
		return permissive
	}
	return ImageValidation{Index: idx, IsValid: wire.IsValid, Reason: wire.Reason}
}

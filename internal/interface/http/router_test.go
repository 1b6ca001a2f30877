package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/catalog"
	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
	"github.com/Aditya10bit/UpTrends-sub001/internal/infra/config"
	apperrors "github.com/Aditya10bit/UpTrends-sub001/pkg/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func TestRouter_GenerateSuccess(t *testing.T) {
	set := stylist.RecommendationSet{
		ID:     "rec-1",
		Source: stylist.SourceAI,
		Outfits: []stylist.OutfitRecommendation{
			{Style: "Casual", Colors: []string{"Navy"}, Outfit: "Navy tee", Reasoning: "Simple"},
		},
		Palette: []string{"Navy"},
		Tips:    []string{"Keep it simple"},
	}
	svc := &stubStylist{
		generateFn: func(ctx context.Context, req stylist.RecommendationRequest) (stylist.RecommendationSet, error) {
			require.Equal(t, "weekend look", req.Prompt)
			require.Equal(t, stylist.GenderMale, req.Profile.Gender)
			return set, nil
		},
	}

	recorder := performRequest("/api/v1/recommendations",
		`{"prompt":"weekend look","profile":{"heightCm":170,"gender":"male"}}`,
		newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got stylist.RecommendationSet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, set.ID, got.ID)
	require.Equal(t, set.Source, got.Source)
	require.Len(t, got.Outfits, 1)
}

func TestRouter_GenerateRateLimited(t *testing.T) {
	svc := &stubStylist{
		generateFn: func(ctx context.Context, req stylist.RecommendationRequest) (stylist.RecommendationSet, error) {
			return stylist.RecommendationSet{}, apperrors.Wrap("rate_limit_exceeded", "too many generation requests",
				&stylist.RateLimitError{Wait: 42 * time.Second})
		},
	}

	recorder := performRequest("/api/v1/recommendations", `{"prompt":"anything"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	require.Equal(t, "42", recorder.Header().Get("Retry-After"))

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "rate_limit_exceeded", body["error"]["code"])
	require.Equal(t, float64(42), body["error"]["waitSeconds"])
}

func TestRouter_GenerateInvalidJSON(t *testing.T) {
	recorder := performRequest("/api/v1/recommendations", `{"prompt":123}`, newRouterUnderTest(t, &stubStylist{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_ValidateImages(t *testing.T) {
	svc := &stubStylist{
		validateFn: func(ctx context.Context, images []stylist.ImageAttachment) ([]stylist.ImageValidation, error) {
			require.Len(t, images, 2)
			return []stylist.ImageValidation{
				{Index: 0, IsValid: true},
				{Index: 1, IsValid: false, Reason: "not clothing"},
			}, nil
		},
	}

	recorder := performRequest("/api/v1/recommendations/images/validate",
		`{"images":[{"mimeType":"image/jpeg","data":"AQ=="},{"mimeType":"image/png","data":"Ag=="}]}`,
		newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Results []stylist.ImageValidation `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	require.True(t, body.Results[0].IsValid)
	require.False(t, body.Results[1].IsValid)
}

func TestRouter_FilterCatalogUsesConfiguredSource(t *testing.T) {
	recorder := performRequest("/api/v1/catalog/filter",
		`{"profile":{"heightCm":170,"bodyType":"Slim","skinTone":"Fair","gender":"male"},"category":"casual"}`,
		newRouterUnderTest(t, &stubStylist{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Candidates []catalog.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Candidates)
	for _, candidate := range body.Candidates {
		require.Equal(t, body.Candidates[0].Score, candidate.Score)
	}
}

func TestRouter_FilterCatalogWithInlineEntries(t *testing.T) {
	payload := `{
		"profile":{"heightCm":170,"bodyType":"Slim","skinTone":"Fair","gender":"male"},
		"category":"casual",
		"entries":[{"category":"casual","heights":["average"],"bodies":["slim"],"tones":["fair"],"audiences":["male"]}]
	}`
	recorder := performRequest("/api/v1/catalog/filter", payload, newRouterUnderTest(t, &stubStylist{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Candidates []catalog.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Candidates, 1)
	require.Equal(t, 4, body.Candidates[0].Score)
}

func performRequest(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc stylist.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, stubCatalogSource{}, newTestLogger())
	cfg := testConfig()
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubStylist struct {
	generateFn func(ctx context.Context, req stylist.RecommendationRequest) (stylist.RecommendationSet, error)
	validateFn func(ctx context.Context, images []stylist.ImageAttachment) ([]stylist.ImageValidation, error)
}

func (s *stubStylist) Generate(ctx context.Context, req stylist.RecommendationRequest) (stylist.RecommendationSet, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, req)
	}
	return stylist.RecommendationSet{}, nil
}

func (s *stubStylist) ValidateImages(ctx context.Context, images []stylist.ImageAttachment) ([]stylist.ImageValidation, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, images)
	}
	return nil, nil
}

type stubCatalogSource struct{}

func (stubCatalogSource) List() []catalog.Entry {
	return []catalog.Entry{
		{Category: "casual", Heights: []string{"average"}, Bodies: []string{"slim"}, Tones: []string{"fair"}, Audiences: []string{"male"}},
		{Category: "versatile", Heights: []string{"any"}, Bodies: []string{"any"}, Tones: []string{"any"}, Audiences: []string{"any"}},
	}
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

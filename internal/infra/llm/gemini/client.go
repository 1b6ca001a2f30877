// Package gemini wraps the Google generative AI SDK behind the small surface
// the recommendation domain needs.
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/Aditya10bit/UpTrends-sub001/pkg/errors"
	"github.com/Aditya10bit/UpTrends-sub001/pkg/metrics"
)

// Image is an inline attachment sent alongside the prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Request describes one content-generation call.
type Request struct {
	Model       string
	Prompt      string
	Images      []Image
	Temperature float32
}

// Response carries the raw model text plus token accounting.
type Response struct {
	Text  string
	Usage metrics.TokenUsage
}

// Client performs Gemini generation calls.
type Client struct {
	genai  *genai.Client
	logger *slog.Logger
}

// NewClient constructs a Gemini client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	inner, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{genai: inner, logger: logger.With("component", "gemini.client")}, nil
}

// Close releases the underlying SDK client.
func (c *Client) Close() error {
	return c.genai.Close()
}

// GenerateContent runs a single generation call and flattens the first
// candidate into plain text. Overload signals from the far end are surfaced
// with the service_overloaded code so callers can retry them.
func (c *Client) GenerateContent(ctx context.Context, req Request) (Response, error) {
	model := c.genai.GenerativeModel(req.Model)
	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}

	parts := make([]genai.Part, 0, 1+len(req.Images))
	parts = append(parts, genai.Text(req.Prompt))
	for _, img := range req.Images {
		if len(img.Data) == 0 {
			continue
		}
		parts = append(parts, genai.ImageData(imageFormat(img.MIMEType), img.Data))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return Response{}, classifyError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Response{}, apperrors.Wrap("llm_error", "gemini returned no candidates", nil)
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return Response{}, apperrors.Wrap("llm_error", "gemini returned no text parts", nil)
	}

	out := Response{Text: text}
	if resp.UsageMetadata != nil {
		out.Usage = metrics.TokenUsage{
			PromptTokens:    resp.UsageMetadata.PromptTokenCount,
			CandidateTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:     resp.UsageMetadata.TotalTokenCount,
		}
	}
	c.logger.Debug("gemini response received", "model", req.Model, "chars", len(text))
	return out, nil
}

// imageFormat converts a MIME type into the bare format label the SDK expects.
func imageFormat(mimeType string) string {
	format := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
	if format == "" {
		return "jpeg"
	}
	return format
}

func classifyError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
			return apperrors.Wrap("service_overloaded", "gemini signalled overload", err)
		}
		return apperrors.Wrap("llm_error", "gemini request rejected", err)
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.ResourceExhausted, codes.Unavailable, codes.Internal:
			return apperrors.Wrap("service_overloaded", "gemini signalled overload", err)
		}
	}
	return apperrors.Wrap("llm_error", "gemini request failed", err)
}

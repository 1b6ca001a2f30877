package stylist

import (
	"fmt"
	"strings"
	"time"
)

// Gender selects which template vocabulary the engine may draw from. The male
// and female sets are disjoint; unknown maps to the neutral set.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender normalizes free-form gender input, defaulting to unknown.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "man":
		return GenderMale
	case "female", "f", "woman":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// UserProfile carries the caller-owned appearance attributes. It is passed by
// value and never mutated by this package.
type UserProfile struct {
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg,omitempty"`
	BodyType string  `json:"bodyType"`
	SkinTone string  `json:"skinTone"`
	Gender   Gender  `json:"gender"`
}

// Weather is an optional situational input supplied by the caller.
type Weather struct {
	TempC     float64           `json:"tempC"`
	Condition string            `json:"condition"`
	Humidity  int               `json:"humidity,omitempty"`
	WindKph   float64           `json:"windKph,omitempty"`
	Forecast  map[string]string `json:"forecast,omitempty"`
}

// LocationInfo describes the place the outfit is for.
type LocationInfo struct {
	Place         string   `json:"place"`
	Region        string   `json:"region"`
	Climate       string   `json:"climate,omitempty"`
	Terrain       string   `json:"terrain,omitempty"`
	CulturalStyle string   `json:"culturalStyle,omitempty"`
	Trends        []string `json:"trends,omitempty"`
}

// SituationalContext bundles the optional weather and location inputs. Either,
// both, or neither may be present.
type SituationalContext struct {
	Weather  *Weather      `json:"weather,omitempty"`
	Location *LocationInfo `json:"location,omitempty"`
}

// ImageAttachment is an opaque image handle passed through to the model.
type ImageAttachment struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// RecommendationRequest is the full input to Generate.
type RecommendationRequest struct {
	Prompt  string              `json:"prompt"`
	Image   *ImageAttachment    `json:"image,omitempty"`
	Profile UserProfile         `json:"profile"`
	Context *SituationalContext `json:"context,omitempty"`
}

// ShoppingLink points at a platform search for part of an outfit.
type ShoppingLink struct {
	Platform    string `json:"platform"`
	Query       string `json:"query"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// OutfitRecommendation is one complete styled look.
type OutfitRecommendation struct {
	Style       string         `json:"style"`
	Colors      []string       `json:"colors"`
	Outfit      string         `json:"outfit"`
	Accessories string         `json:"accessories"`
	Mood        string         `json:"mood"`
	Reasoning   string         `json:"reasoning"`
	Links       []ShoppingLink `json:"links"`
}

// Source tags which path produced a recommendation set.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// RecommendationSet is the render-ready result handed back to the caller.
// Both the AI path and the rule-based fallback produce this same shape.
type RecommendationSet struct {
	ID           string                 `json:"id"`
	Source       Source                 `json:"source"`
	Outfits      []OutfitRecommendation `json:"outfits"`
	Palette      []string               `json:"palette"`
	Tips         []string               `json:"tips"`
	LocationNote string                 `json:"locationNote,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// ImageValidation is the structured, non-exceptional outcome of checking one
// uploaded image.
type ImageValidation struct {
	Index   int    `json:"index"`
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

// RateLimitError reports how long the caller should wait before retrying. It
// travels wrapped inside the rate_limit_exceeded AppError.
type RateLimitError struct {
	Wait time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("retry after %s", e.Wait.Round(time.Second))
}

// WaitSeconds rounds the wait up to whole seconds for API responses.
func (e *RateLimitError) WaitSeconds() int {
	secs := int((e.Wait + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

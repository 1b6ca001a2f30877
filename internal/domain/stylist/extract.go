package stylist

import (
	"encoding/json"
	"errors"
	"strings"
)

// Prefixes the model likes to prepend despite being told to answer with bare
// JSON. Matched case-insensitively before locating the JSON payload.
var narrativePrefixes = []string{
	"i'll create",
	"i will create",
	"here is",
	"here's",
	"here are",
	"sure",
	"certainly",
	"of course",
	"below is",
	"okay",
}

// extractJSON strips markdown fences and narrative prose around the JSON value
// embedded in a raw model response. It returns the substring spanning the
// first opening bracket through the last bracket of the same kind.
func extractJSON(raw string) (string, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.ReplaceAll(sanitized, "```json", "")
	sanitized = strings.ReplaceAll(sanitized, "```", "")
	sanitized = strings.TrimSpace(sanitized)

	lowered := strings.ToLower(sanitized)
	for _, prefix := range narrativePrefixes {
		if strings.HasPrefix(lowered, prefix) {
			sanitized = sanitized[len(prefix):]
			break
		}
	}

	start := strings.IndexAny(sanitized, "[{")
	if start == -1 {
		return "", errors.New("no JSON value found in response")
	}

	var closer string
	if sanitized[start] == '[' {
		closer = "]"
	} else {
		closer = "}"
	}
	end := strings.LastIndex(sanitized, closer)
	if end <= start {
		return "", errors.New("unterminated JSON value in response")
	}

	return sanitized[start : end+1], nil
}

type outfitWire struct {
	Style       string          `json:"style"`
	Colors      json.RawMessage `json:"colors"`
	Outfit      string          `json:"outfit"`
	Accessories string          `json:"accessories"`
	Mood        string          `json:"mood"`
	Reasoning   string          `json:"reasoning"`
}

// parseOutfits turns a raw model response into validated recommendations.
// Any structural failure is a hard error for the current attempt; there is no
// partial recovery.
func parseOutfits(raw string) ([]OutfitRecommendation, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var wires []outfitWire
	if strings.HasPrefix(payload, "[") {
		if err := json.Unmarshal([]byte(payload), &wires); err != nil {
			return nil, err
		}
	} else {
		var single outfitWire
		if err := json.Unmarshal([]byte(payload), &single); err != nil {
			return nil, err
		}
		wires = []outfitWire{single}
	}
	if len(wires) == 0 {
		return nil, errors.New("response contained no outfits")
	}

	outfits := make([]OutfitRecommendation, 0, len(wires))
	for _, wire := range wires {
		colors, err := coerceStringArray(wire.Colors)
		if err != nil {
			return nil, err
		}
		outfit := OutfitRecommendation{
			Style:       strings.TrimSpace(wire.Style),
			Colors:      colors,
			Outfit:      strings.TrimSpace(wire.Outfit),
			Accessories: strings.TrimSpace(wire.Accessories),
			Mood:        strings.TrimSpace(wire.Mood),
			Reasoning:   strings.TrimSpace(wire.Reasoning),
		}
		if outfit.Style == "" || outfit.Outfit == "" {
			return nil, errors.New("outfit missing style or items")
		}
		if len(outfit.Colors) == 0 {
			return nil, errors.New("outfit missing colors")
		}
		if outfit.Reasoning == "" {
			return nil, errors.New("outfit missing reasoning")
		}
		outfits = append(outfits, outfit)
	}
	return outfits, nil
}

// coerceStringArray accepts either a JSON array of strings or a single string,
// since models occasionally collapse one-element arrays.
func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		if strings.TrimSpace(single) == "" {
			return nil, nil
		}
		return []string{single}, nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		out := make([]string, 0, len(many))
		for _, item := range many {
			if clean := strings.TrimSpace(item); clean != "" {
				out = append(out, clean)
			}
		}
		return out, nil
	default:
		return nil, errors.New("unsupported colors format")
	}
}

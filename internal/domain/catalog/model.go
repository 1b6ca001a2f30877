// Package catalog scores a static outfit catalog against a user profile. It
// runs entirely locally and is independent of the AI recommendation path.
package catalog

import (
	"strings"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
)

// Wildcard marks an attribute set that accepts any value. Entries carrying it
// are boosted so they survive as general-purpose fallback candidates.
const Wildcard = "any"

// Entry is one catalog record. Attribute sets hold the acceptable values for
// each user attribute; any set may contain the wildcard.
type Entry struct {
	Category  string   `json:"category" yaml:"category"`
	Heights   []string `json:"heights" yaml:"heights"`
	Bodies    []string `json:"bodies" yaml:"bodies"`
	Tones     []string `json:"tones" yaml:"tones"`
	Audiences []string `json:"audiences" yaml:"audiences"`
	City      string   `json:"city,omitempty" yaml:"city,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Candidate is an entry annotated with its match score for one filter pass.
type Candidate struct {
	Entry Entry `json:"entry"`
	Score int   `json:"score"`
}

// Source supplies the catalog contents. Implementations live in infra.
type Source interface {
	List() []Entry
}

// CategorySelector is a parsed category string such as "male-gym": an
// optional gender qualifier followed by the category proper.
type CategorySelector struct {
	Category string
	Gender   stylist.Gender
}

// ParseCategory splits an optional gender prefix off a category tag.
// "male-gym" selects gym entries for men; a bare "gym" leaves the gender to
// the profile.
func ParseCategory(raw string) CategorySelector {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if prefix, rest, ok := strings.Cut(normalized, "-"); ok {
		if gender := stylist.ParseGender(prefix); gender != stylist.GenderUnknown {
			return CategorySelector{Category: rest, Gender: gender}
		}
	}
	return CategorySelector{Category: normalized, Gender: stylist.GenderUnknown}
}

// Package catalogrepo supplies outfit catalog entries from static sources.
package catalogrepo

import (
	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/catalog"
)

// MemorySource is a built-in catalog used when no catalog file is configured.
type MemorySource struct {
	entries []catalog.Entry
}

// NewMemorySource constructs a source seeded with the default catalog.
func NewMemorySource() *MemorySource {
	return &MemorySource{entries: defaultEntries()}
}

// List implements catalog.Source.
func (s *MemorySource) List() []catalog.Entry {
	out := make([]catalog.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func defaultEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Category:  "casual",
			Heights:   []string{"short", "average"},
			Bodies:    []string{"slim", "athletic"},
			Tones:     []string{"fair", "wheatish"},
			Audiences: []string{"male"},
			Tags:      []string{"streetwear", "daily"},
		},
		{
			Category:  "casual",
			Heights:   []string{"average", "tall"},
			Bodies:    []string{"hourglass", "pear"},
			Tones:     []string{"wheatish", "dusky"},
			Audiences: []string{"female"},
			Tags:      []string{"daily"},
		},
		{
			Category:  "formal",
			Heights:   []string{"average", "tall"},
			Bodies:    []string{"athletic", "rectangle"},
			Tones:     []string{"fair", "dusky", "dark"},
			Audiences: []string{"male", "formal"},
			Tags:      []string{"office", "interview"},
		},
		{
			Category:  "formal",
			Heights:   []string{"short", "average"},
			Bodies:    []string{"hourglass", "apple"},
			Tones:     []string{"fair", "wheatish", "dusky"},
			Audiences: []string{"female", "formal"},
			Tags:      []string{"office"},
		},
		{
			Category:  "party",
			Heights:   []string{"any"},
			Bodies:    []string{"any"},
			Tones:     []string{"any"},
			Audiences: []string{"male", "female", "party"},
			Tags:      []string{"festive", "evening"},
		},
		{
			Category:  "gym",
			Heights:   []string{"any"},
			Bodies:    []string{"slim", "athletic", "heavy"},
			Tones:     []string{"any"},
			Audiences: []string{"gym"},
			Tags:      []string{"activewear"},
		},
		{
			Category:  "ethnic",
			Heights:   []string{"short", "average", "tall"},
			Bodies:    []string{"any"},
			Tones:     []string{"wheatish", "dusky", "dark"},
			Audiences: []string{"male", "female", "ethnic"},
			City:      "jaipur",
			Tags:      []string{"traditional", "festive"},
		},
		{
			Category:  "versatile",
			Heights:   []string{"any"},
			Bodies:    []string{"any"},
			Tones:     []string{"any"},
			Audiences: []string{"any"},
			Tags:      []string{"capsule"},
		},
	}
}

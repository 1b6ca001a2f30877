package catalog

import (
	"strings"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
)

// Height buckets used for matching: short under 165 cm, tall over 180 cm.
const (
	bucketShort   = "short"
	bucketAverage = "average"
	bucketTall    = "tall"
)

func heightBucket(heightCm float64) string {
	switch {
	case heightCm < 165:
		return bucketShort
	case heightCm > 180:
		return bucketTall
	default:
		return bucketAverage
	}
}

// Filter scores every entry against the profile and category, then keeps the
// best matches. When the top score is below 2, the pass loosens to wildcard
// entries; an empty result means "no confident match", never an error.
func Filter(entries []Entry, profile stylist.UserProfile, category string) []Candidate {
	selector := ParseCategory(category)
	gender := profile.Gender
	if selector.Gender != stylist.GenderUnknown {
		gender = selector.Gender
	}

	scored := make([]Candidate, 0, len(entries))
	maxScore := 0
	for _, entry := range entries {
		score := scoreEntry(entry, profile, gender, selector.Category)
		scored = append(scored, Candidate{Entry: entry, Score: score})
		if score > maxScore {
			maxScore = score
		}
	}

	if maxScore >= 2 {
		best := make([]Candidate, 0, len(scored))
		for _, candidate := range scored {
			if candidate.Score == maxScore {
				best = append(best, candidate)
			}
		}
		return best
	}

	loose := make([]Candidate, 0, len(scored))
	for _, candidate := range scored {
		if hasWildcard(candidate.Entry) {
			loose = append(loose, candidate)
		}
	}
	return loose
}

func scoreEntry(entry Entry, profile stylist.UserProfile, gender stylist.Gender, category string) int {
	score := 0
	if setContains(entry.Heights, heightBucket(profile.HeightCm)) {
		score++
	}
	if setContains(entry.Bodies, profile.BodyType) {
		score++
	}
	if setContains(entry.Tones, profile.SkinTone) {
		score++
	}
	if setContains(entry.Audiences, string(gender)) || setContains(entry.Audiences, category) {
		score++
	}
	if hasWildcard(entry) {
		score += 2
	}
	return score
}

func setContains(set []string, value string) bool {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return false
	}
	for _, item := range set {
		if strings.ToLower(strings.TrimSpace(item)) == needle {
			return true
		}
	}
	return false
}

func hasWildcard(entry Entry) bool {
	for _, set := range [][]string{entry.Heights, entry.Bodies, entry.Tones, entry.Audiences} {
		if setContains(set, Wildcard) {
			return true
		}
	}
	return false
}

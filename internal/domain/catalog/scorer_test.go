package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
)

var testProfile = stylist.UserProfile{
	HeightCm: 170,
	BodyType: "Slim",
	SkinTone: "Fair",
	Gender:   stylist.GenderMale,
}

func TestFilterKeepsOnlyTopScorers(t *testing.T) {
	entryA := Entry{
		Category: "casual",
		Heights:  []string{"average"},
		Bodies:   []string{"slim"},
		Tones:    []string{"dusky"},
	}
	entryB := Entry{
		Category:  "casual",
		Heights:   []string{"average"},
		Bodies:    []string{"slim"},
		Tones:     []string{"fair"},
		Audiences: []string{"male"},
	}
	entryC := Entry{
		Category: "casual",
		Heights:  []string{"tall"},
		Bodies:   []string{"slim"},
	}

	candidates := Filter([]Entry{entryA, entryB, entryC}, testProfile, "casual")
	require.Len(t, candidates, 1)
	require.Equal(t, entryB, candidates[0].Entry)
	require.Equal(t, 4, candidates[0].Score)
}

func TestFilterTiesAllIncluded(t *testing.T) {
	entryA := Entry{Heights: []string{"average"}, Bodies: []string{"slim"}}
	entryB := Entry{Tones: []string{"fair"}, Audiences: []string{"male"}}

	candidates := Filter([]Entry{entryA, entryB}, testProfile, "gym")
	require.Len(t, candidates, 2)
}

func TestFilterLowScoresFallBackToWildcards(t *testing.T) {
	mismatched := Entry{Heights: []string{"tall"}, Bodies: []string{"heavy"}}
	general := Entry{Heights: []string{Wildcard}, Bodies: []string{"heavy"}}

	candidates := Filter([]Entry{mismatched, general}, testProfile, "casual")
	require.Len(t, candidates, 1)
	require.Equal(t, general, candidates[0].Entry)
}

func TestFilterNoConfidentMatchReturnsEmpty(t *testing.T) {
	mismatched := Entry{Heights: []string{"tall"}, Bodies: []string{"heavy"}}

	candidates := Filter([]Entry{mismatched}, testProfile, "casual")
	require.Empty(t, candidates)
}

func TestFilterCategoryAudienceMatch(t *testing.T) {
	gymEntry := Entry{Audiences: []string{"gym"}, Heights: []string{"average"}}

	candidates := Filter([]Entry{gymEntry}, testProfile, "gym")
	require.Len(t, candidates, 1)
	require.Equal(t, 2, candidates[0].Score)
}

func TestFilterGenderPrefixOverridesProfile(t *testing.T) {
	womens := Entry{Audiences: []string{"female"}, Heights: []string{"average"}}

	// Explicit "female-party" selects the female audience even for a male
	// profile, matching how shared accounts browse.
	candidates := Filter([]Entry{womens}, testProfile, "female-party")
	require.Len(t, candidates, 1)
	require.Equal(t, 2, candidates[0].Score)
}

func TestParseCategory(t *testing.T) {
	sel := ParseCategory("Male-Gym")
	require.Equal(t, "gym", sel.Category)
	require.Equal(t, stylist.GenderMale, sel.Gender)

	sel = ParseCategory("party")
	require.Equal(t, "party", sel.Category)
	require.Equal(t, stylist.GenderUnknown, sel.Gender)

	// Unrecognized prefixes stay part of the category.
	sel = ParseCategory("street-wear")
	require.Equal(t, "street-wear", sel.Category)
	require.Equal(t, stylist.GenderUnknown, sel.Gender)
}

func TestHeightBuckets(t *testing.T) {
	require.Equal(t, "short", heightBucket(150))
	require.Equal(t, "average", heightBucket(165))
	require.Equal(t, "average", heightBucket(180))
	require.Equal(t, "tall", heightBucket(185))
}

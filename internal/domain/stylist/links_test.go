package stylist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLinksInspirationCarriesFullText(t *testing.T) {
	links := buildLinks("White oxford shirt paired with navy chinos", "smart casual for work")
	require.Len(t, links, 4)

	pinterest := links[0]
	require.Equal(t, "Pinterest", pinterest.Platform)
	require.Contains(t, pinterest.Query, "white oxford shirt")
	require.Contains(t, pinterest.Query, "navy chinos")
	require.Contains(t, pinterest.Query, "smart casual for work")
	require.Contains(t, pinterest.URL, "pinterest.com/search/pins/?q=")
	// Queries must be escaped into the URL.
	require.NotContains(t, pinterest.URL, " ")
}

func TestBuildLinksPurchaseUsesKeyItemsOnly(t *testing.T) {
	links := buildLinks("Navy chinos paired with brown loafers and a leather strap watch", "anything")

	for _, link := range links[1:] {
		require.Contains(t, []string{"Myntra", "Amazon", "Flipkart"}, link.Platform)
		// At most two color+garment phrases, prompt text excluded.
		require.Equal(t, "navy chinos brown loafers", link.Query)
		require.NotContains(t, link.Query, "anything")
		require.NotContains(t, link.Query, "watch")
	}
	require.Contains(t, links[1].URL, "myntra.com/search?q=navy+chinos+brown+loafers")
}

func TestExtractKeyItemsAdjacency(t *testing.T) {
	require.Equal(t, []string{"navy chinos"}, extractKeyItems("stylish navy chinos"))
	// Noun-then-color order also counts.
	require.Equal(t, []string{"chinos navy"}, extractKeyItems("chinos navy something"))
	require.Len(t, extractKeyItems("black jeans olive jacket grey hoodie"), 2)
}

func TestExtractKeyItemsFallbackChain(t *testing.T) {
	// No adjacent pair: first clothing noun wins.
	require.Equal(t, []string{"jeans"}, extractKeyItems("ripped faded jeans"))
	// No noun: first color wins.
	require.Equal(t, []string{"navy"}, extractKeyItems("something navy themed"))
	// Neither: first token wins.
	require.Equal(t, []string{"avant-garde"}, extractKeyItems("avant-garde look"))
}

func TestNormalizeOutfitStripsConnectors(t *testing.T) {
	normalized := normalizeOutfit("Black tee, paired with grey jeans and white sneakers")
	require.Equal(t, "black tee grey jeans white sneakers", normalized)
	require.False(t, strings.Contains(normalized, ","))
}

func TestBuildLinksEmptyOutfit(t *testing.T) {
	require.Nil(t, buildLinks("   ", "prompt"))
}

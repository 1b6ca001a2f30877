package stylist

import (
	"fmt"
	"net/url"
	"strings"
)

const maxPromptTokens = 8

type platformSpec struct {
	name        string
	urlTemplate string
	description string
}

var inspirationPlatform = platformSpec{
	name:        "Pinterest",
	urlTemplate: "https://www.pinterest.com/search/pins/?q=%s",
	description: "Outfit inspiration and styling ideas",
}

var purchasePlatforms = []platformSpec{
	{name: "Myntra", urlTemplate: "https://www.myntra.com/search?q=%s", description: "Shop this look on Myntra"},
	{name: "Amazon", urlTemplate: "https://www.amazon.in/s?k=%s", description: "Shop this look on Amazon"},
	{name: "Flipkart", urlTemplate: "https://www.flipkart.com/search?q=%s", description: "Shop this look on Flipkart"},
}

var clothingNouns = map[string]struct{}{
	"shirt": {}, "tshirt": {}, "t-shirt": {}, "tee": {}, "top": {}, "blouse": {},
	"kurta": {}, "kurti": {}, "saree": {}, "lehenga": {}, "dupatta": {}, "kaftan": {},
	"dress": {}, "sundress": {}, "gown": {}, "skirt": {}, "jeans": {}, "denim": {},
	"trousers": {}, "pants": {}, "chinos": {}, "joggers": {}, "leggings": {},
	"shorts": {}, "culottes": {}, "palazzo": {}, "churidar": {},
	"jacket": {}, "blazer": {}, "coat": {}, "overcoat": {}, "trench": {},
	"hoodie": {}, "sweater": {}, "sweatshirt": {}, "cardigan": {}, "turtleneck": {},
	"henley": {}, "overshirt": {}, "parka": {}, "anorak": {}, "poncho": {},
	"vest": {}, "bomber": {}, "puffer": {}, "suit": {}, "sherwani": {}, "bandhgala": {},
	"sneakers": {}, "shoes": {}, "boots": {}, "loafers": {}, "heels": {},
	"sandals": {}, "flats": {}, "espadrilles": {}, "juttis": {}, "mojari": {},
	"oxfords": {}, "pumps": {}, "slides": {},
}

var colorWords = map[string]struct{}{
	"black": {}, "white": {}, "grey": {}, "gray": {}, "navy": {}, "blue": {},
	"red": {}, "green": {}, "olive": {}, "yellow": {}, "mustard": {}, "orange": {},
	"pink": {}, "purple": {}, "lavender": {}, "plum": {}, "brown": {}, "tan": {},
	"beige": {}, "cream": {}, "ivory": {}, "khaki": {}, "camel": {}, "sand": {},
	"maroon": {}, "burgundy": {}, "rust": {}, "terracotta": {}, "coral": {},
	"teal": {}, "turquoise": {}, "aqua": {}, "emerald": {}, "charcoal": {},
	"gold": {}, "silver": {}, "sage": {},
}

var outfitConnectors = []string{"paired with", "with", "and"}

// normalizeOutfit lowercases the outfit text and strips connector phrases so
// that only descriptive tokens remain.
func normalizeOutfit(text string) string {
	normalized := strings.ToLower(text)
	normalized = strings.ReplaceAll(normalized, ",", " ")
	for _, connector := range outfitConnectors {
		normalized = strings.ReplaceAll(normalized, " "+connector+" ", " ")
	}
	return strings.Join(strings.Fields(normalized), " ")
}

// extractKeyItems pulls at most two shoppable phrases out of normalized outfit
// text. A phrase is a color adjacent to a clothing noun, in either order.
// When no such pair exists the fallback chain is: first noun, first color,
// first token.
func extractKeyItems(normalized string) []string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return nil
	}

	items := make([]string, 0, 2)
	used := make(map[int]struct{})
	for i := 0; i < len(tokens)-1 && len(items) < 2; i++ {
		if _, taken := used[i]; taken {
			continue
		}
		_, aColor := colorWords[tokens[i]]
		_, aNoun := clothingNouns[tokens[i]]
		_, bColor := colorWords[tokens[i+1]]
		_, bNoun := clothingNouns[tokens[i+1]]
		if (aColor && bNoun) || (aNoun && bColor) {
			items = append(items, tokens[i]+" "+tokens[i+1])
			used[i] = struct{}{}
			used[i+1] = struct{}{}
			i++
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, token := range tokens {
		if _, ok := clothingNouns[token]; ok {
			return []string{token}
		}
	}
	for _, token := range tokens {
		if _, ok := colorWords[token]; ok {
			return []string{token}
		}
	}
	return []string{tokens[0]}
}

// promptTokens returns the first few words of the user prompt, used to bias
// the inspiration query toward the user's own phrasing.
func promptTokens(prompt string) string {
	tokens := strings.Fields(strings.ToLower(prompt))
	if len(tokens) > maxPromptTokens {
		tokens = tokens[:maxPromptTokens]
	}
	return strings.Join(tokens, " ")
}

// buildLinks produces one inspiration link carrying the full outfit text and
// one purchase link per marketplace carrying only the key item phrases.
func buildLinks(outfitText, prompt string) []ShoppingLink {
	normalized := normalizeOutfit(outfitText)
	if normalized == "" {
		return nil
	}

	links := make([]ShoppingLink, 0, len(purchasePlatforms)+1)

	inspirationQuery := strings.TrimSpace(normalized + " " + promptTokens(prompt))
	links = append(links, ShoppingLink{
		Platform:    inspirationPlatform.name,
		Query:       inspirationQuery,
		URL:         fmt.Sprintf(inspirationPlatform.urlTemplate, url.QueryEscape(inspirationQuery)),
		Description: inspirationPlatform.description,
	})

	purchaseQuery := strings.Join(extractKeyItems(normalized), " ")
	for _, platform := range purchasePlatforms {
		links = append(links, ShoppingLink{
			Platform:    platform.name,
			Query:       purchaseQuery,
			URL:         fmt.Sprintf(platform.urlTemplate, url.QueryEscape(purchaseQuery)),
			Description: platform.description,
		})
	}
	return links
}

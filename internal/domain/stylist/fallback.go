package stylist

import (
	"fmt"
	"strings"
)

// theme is the situational bucket a request is classified into. Classification
// priority: weather signals, then occasion, then season, then versatile.
type theme int

const (
	themeVersatile theme = iota
	themeRainy
	themeSummer
	themeWinter
	themeFormal
	themeParty
	themeCasual
)

var (
	rainKeywords   = []string{"rain", "rainy", "monsoon", "drizzle", "storm", "downpour"}
	snowKeywords   = []string{"snow", "snowfall", "freezing", "frost", "icy"}
	heatKeywords   = []string{"heatwave", "scorching", "sweltering", "humid"}
	formalKeywords = []string{"formal", "business", "office", "interview", "meeting", "wedding"}
	partyKeywords  = []string{"party", "event", "club", "festive", "celebration", "night out"}
	casualKeywords = []string{"casual", "everyday", "daily", "weekend", "errand"}
	summerKeywords = []string{"summer", "hot", "warm", "beach"}
	winterKeywords = []string{"winter", "cold", "chilly"}
)

func classifyTheme(prompt string, sc *SituationalContext) theme {
	lowered := strings.ToLower(prompt)

	// Weather family first: structured readings beat prompt keywords.
	if sc != nil && sc.Weather != nil {
		w := sc.Weather
		condition := strings.ToLower(w.Condition)
		switch {
		case containsAny(condition, rainKeywords):
			return themeRainy
		case containsAny(condition, snowKeywords):
			return themeWinter
		case w.TempC >= 30:
			return themeSummer
		case w.TempC <= 15:
			return themeWinter
		}
	}
	switch {
	case containsAny(lowered, rainKeywords):
		return themeRainy
	case containsAny(lowered, snowKeywords):
		return themeWinter
	case containsAny(lowered, heatKeywords):
		return themeSummer
	}

	// Occasion family.
	switch {
	case containsAny(lowered, formalKeywords):
		return themeFormal
	case containsAny(lowered, partyKeywords):
		return themeParty
	case containsAny(lowered, casualKeywords):
		return themeCasual
	}

	// Season family.
	switch {
	case containsAny(lowered, summerKeywords):
		return themeSummer
	case containsAny(lowered, winterKeywords):
		return themeWinter
	}

	return themeVersatile
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

type template struct {
	style       string
	colors      []string
	outfit      string
	accessories string
	mood        string
	reasoning   string
}

// Pre-authored outfit templates. The male and female vocabularies are
// disjoint; the unknown-gender set sticks to unisex pieces.
var themeTemplates = map[Gender]map[theme][2]template{
	GenderMale: {
		themeVersatile: {
			{style: "Smart Casual", colors: []string{"Navy", "White"}, outfit: "White oxford shirt, navy chinos, brown leather loafers", accessories: "Leather strap watch, slim brown belt", mood: "Effortless and put-together", reasoning: "Navy and white is the most forgiving pairing for any setting."},
			{style: "Minimal Street", colors: []string{"Black", "Grey"}, outfit: "Black crew-neck t-shirt, grey slim jeans, white low-top sneakers", accessories: "Black cap, minimal chain", mood: "Relaxed and modern", reasoning: "A monochrome base keeps the look sharp without trying hard."},
		},
		themeRainy: {
			{style: "Monsoon Smart", colors: []string{"Charcoal", "Navy"}, outfit: "Water-resistant navy shell jacket, charcoal tapered joggers, dark trail sneakers", accessories: "Compact umbrella, waterproof backpack", mood: "Practical and sharp", reasoning: "Dark quick-drying layers stay presentable through sudden showers."},
			{style: "Wet Weather Layers", colors: []string{"Olive", "Black"}, outfit: "Olive rain parka, black slim jeans, rubber-soled chelsea boots", accessories: "Waterproof watch, foldable cap", mood: "Ready for anything", reasoning: "Grippy soles and sealed outerwear beat slick streets and drizzle."},
		},
		themeSummer: {
			{style: "Breeze Casual", colors: []string{"Sky Blue", "Beige"}, outfit: "Sky blue linen shirt, beige cotton shorts, canvas espadrilles", accessories: "Sunglasses, woven bracelet", mood: "Cool and unhurried", reasoning: "Linen and light cotton breathe through the worst of the heat."},
			{style: "Heat-Proof Minimal", colors: []string{"White", "Olive"}, outfit: "White cotton t-shirt, olive lightweight chinos, white slip-on sneakers", accessories: "Straw hat, aviator sunglasses", mood: "Fresh and easy", reasoning: "Light colors reflect sun while breathable fabric prevents overheating."},
		},
		themeWinter: {
			{style: "Layered Classic", colors: []string{"Camel", "Charcoal"}, outfit: "Camel overcoat, charcoal turtleneck, dark wool trousers, leather boots", accessories: "Wool scarf, leather gloves", mood: "Warm and commanding", reasoning: "A long coat over a turtleneck layers warmth without bulk."},
			{style: "Cold Snap Casual", colors: []string{"Navy", "Grey"}, outfit: "Navy puffer jacket, grey hoodie, dark denim, high-top sneakers", accessories: "Knit beanie, insulated gloves", mood: "Cozy and street-ready", reasoning: "A puffer over fleece traps heat while staying easy to move in."},
		},
		themeFormal: {
			{style: "Boardroom Sharp", colors: []string{"Charcoal", "White"}, outfit: "Charcoal two-piece suit, crisp white dress shirt, black oxford shoes", accessories: "Silk tie, steel watch", mood: "Confident and precise", reasoning: "Charcoal reads authoritative while staying softer than black."},
			{style: "Business Smart", colors: []string{"Navy", "Light Blue"}, outfit: "Navy blazer, light blue shirt, grey dress trousers, brown derby shoes", accessories: "Pocket square, leather belt", mood: "Polished and approachable", reasoning: "Separates in navy and grey flex from meetings to dinners."},
		},
		themeParty: {
			{style: "Night Out Edge", colors: []string{"Black", "Burgundy"}, outfit: "Black fitted shirt, burgundy bomber jacket, black jeans, chelsea boots", accessories: "Chain bracelet, bold watch", mood: "Sharp and magnetic", reasoning: "A dark base with one rich color pop owns low-light venues."},
			{style: "Festive Statement", colors: []string{"Maroon", "Gold"}, outfit: "Maroon bandhgala kurta, slim churidar, ethnic mojari shoes", accessories: "Gold-tone brooch, pocket watch", mood: "Celebratory and refined", reasoning: "A structured kurta brings festive polish without a full sherwani."},
		},
		themeCasual: {
			{style: "Weekend Standard", colors: []string{"Grey", "White"}, outfit: "Grey henley, white straight-fit jeans, retro sneakers", accessories: "Canvas belt, simple watch", mood: "Laid-back and clean", reasoning: "A henley adds just enough texture to elevate basic jeans."},
			{style: "Everyday Utility", colors: []string{"Olive", "Tan"}, outfit: "Olive overshirt, tan cargo trousers, suede desert boots", accessories: "Field watch, crossbody sling", mood: "Capable and relaxed", reasoning: "Earth tones and utility pockets handle an unplanned day."},
		},
	},
	GenderFemale: {
		themeVersatile: {
			{style: "Effortless Chic", colors: []string{"Beige", "White"}, outfit: "White silk blouse, beige high-waist trousers, nude block heels", accessories: "Gold hoops, structured tote", mood: "Graceful and capable", reasoning: "Neutral tailoring moves from desk to dinner without a change."},
			{style: "Modern Minimal", colors: []string{"Black", "Cream"}, outfit: "Cream knit top, black straight-leg jeans, white leather sneakers", accessories: "Delicate pendant, crossbody bag", mood: "Clean and current", reasoning: "A cream-and-black base makes every accessory count."},
		},
		themeRainy: {
			{style: "Monsoon Polish", colors: []string{"Navy", "Mustard"}, outfit: "Navy trench coat, mustard midi dress, ankle rain boots", accessories: "Printed umbrella, waterproof tote", mood: "Bright against the grey", reasoning: "A trench keeps the dress dry while mustard lifts a dull sky."},
			{style: "Drizzle Ready", colors: []string{"Charcoal", "Teal"}, outfit: "Teal hooded raincoat, charcoal leggings, slip-resistant loafers", accessories: "Quick-dry scrunchie, zip pouch", mood: "Practical and playful", reasoning: "Fitted quick-dry layers skip the soggy hemline problem entirely."},
		},
		themeSummer: {
			{style: "Sunlit Breeze", colors: []string{"Pastel Pink", "White"}, outfit: "Pastel pink cotton sundress, white flat sandals", accessories: "Straw tote, cat-eye sunglasses", mood: "Light and radiant", reasoning: "A loose cotton dress is the coolest silhouette under hard sun."},
			{style: "Heat Smart", colors: []string{"Lavender", "Beige"}, outfit: "Lavender linen co-ord set, beige espadrille flats", accessories: "Claw clip, canvas tote", mood: "Breezy and composed", reasoning: "A matched linen set looks deliberate while barely touching the skin."},
		},
		themeWinter: {
			{style: "Winter Luxe", colors: []string{"Camel", "Brown"}, outfit: "Camel wrap coat, brown knit sweater dress, knee-high boots", accessories: "Chunky scarf, leather gloves", mood: "Warm and elegant", reasoning: "A long wrap coat over knits keeps the silhouette long and warm."},
			{style: "Cozy Layered", colors: []string{"Burgundy", "Grey"}, outfit: "Burgundy turtleneck, grey wool skirt, opaque tights, ankle boots", accessories: "Beret, tote bag", mood: "Snug and stylish", reasoning: "Tights under wool let a skirt survive a real cold snap."},
		},
		themeFormal: {
			{style: "Power Tailoring", colors: []string{"Black", "White"}, outfit: "Black blazer, white shell top, black cigarette trousers, pointed pumps", accessories: "Slim watch, stud earrings", mood: "Commanding and composed", reasoning: "Monochrome tailoring reads senior in any boardroom."},
			{style: "Elegant Ethnic", colors: []string{"Teal", "Gold"}, outfit: "Teal silk saree with gold border, fitted blouse, kitten heels", accessories: "Jhumka earrings, clutch", mood: "Regal and assured", reasoning: "A silk saree carries formal weight with unmatched grace."},
		},
		themeParty: {
			{style: "Evening Glow", colors: []string{"Emerald", "Black"}, outfit: "Emerald satin slip dress, black strappy heels", accessories: "Statement earrings, box clutch", mood: "Luminous and bold", reasoning: "Satin catches low light, so the dress does the talking."},
			{style: "Festive Sparkle", colors: []string{"Maroon", "Gold"}, outfit: "Maroon embroidered lehenga, matching dupatta, embellished flats", accessories: "Maang tikka, bangles", mood: "Celebratory and radiant", reasoning: "Deep maroon with gold work anchors any festive gathering."},
		},
		themeCasual: {
			{style: "Weekend Ease", colors: []string{"Denim Blue", "White"}, outfit: "White relaxed tee, blue mom jeans, canvas sneakers", accessories: "Baseball cap, tote bag", mood: "Unbothered and fresh", reasoning: "Relaxed denim and a clean tee never miss on an off day."},
			{style: "Everyday Flow", colors: []string{"Olive", "Cream"}, outfit: "Olive shirt dress, cream slip-on flats", accessories: "Hair scarf, mini backpack", mood: "Easy and pulled-together", reasoning: "A shirt dress is one decision that still looks styled."},
		},
	},
	GenderUnknown: {
		themeVersatile: {
			{style: "Clean Neutral", colors: []string{"Grey", "White"}, outfit: "White crew-neck tee, grey relaxed trousers, white sneakers", accessories: "Minimal watch, canvas tote", mood: "Balanced and easy", reasoning: "A neutral uniform fits any body and any plan."},
			{style: "Soft Monochrome", colors: []string{"Black", "Charcoal"}, outfit: "Charcoal sweatshirt, black tapered pants, black slip-ons", accessories: "Beanie, simple backpack", mood: "Quiet and confident", reasoning: "Tonal dark layers always read intentional."},
		},
		themeRainy: {
			{style: "Rain Shell", colors: []string{"Navy", "Grey"}, outfit: "Navy waterproof anorak, grey joggers, waterproof sneakers", accessories: "Compact umbrella, dry bag", mood: "Undeterred", reasoning: "A sealed shell and fast-dry layers shrug off the monsoon."},
			{style: "Storm Casual", colors: []string{"Black", "Olive"}, outfit: "Olive rain jacket, black track pants, rubber-soled boots", accessories: "Bucket hat, zip pouch", mood: "Grounded and prepared", reasoning: "Grip soles and a hood beat wind-flipped umbrellas."},
		},
		themeSummer: {
			{style: "Airy Basics", colors: []string{"White", "Sand"}, outfit: "White linen shirt, sand drawstring shorts, canvas slides", accessories: "Sunglasses, woven tote", mood: "Sun-ready", reasoning: "Loose linen is the universal answer to 35 degrees."},
			{style: "Shade Seeker", colors: []string{"Pastel Blue", "White"}, outfit: "Pastel blue oversized tee, white linen pants, white sandals", accessories: "Bucket hat, water bottle sling", mood: "Cool and calm", reasoning: "Pale shades and airflow keep midday walks comfortable."},
		},
		themeWinter: {
			{style: "Thermal Layers", colors: []string{"Charcoal", "Navy"}, outfit: "Navy padded jacket, charcoal thermal top, dark straight pants, lined boots", accessories: "Knit beanie, thermal socks", mood: "Insulated and easy", reasoning: "Three thin layers trap more heat than one heavy one."},
			{style: "Winter Neutral", colors: []string{"Brown", "Cream"}, outfit: "Cream fleece pullover, brown corduroy pants, suede boots", accessories: "Wool scarf, gloves", mood: "Warm and soft", reasoning: "Warm earth textures take the edge off grey winter light."},
		},
		themeFormal: {
			{style: "Sharp Neutral", colors: []string{"Black", "White"}, outfit: "Black tailored blazer, white shirt, black straight trousers, leather derbies", accessories: "Slim leather belt, classic watch", mood: "Precise", reasoning: "Black-and-white tailoring is formality distilled."},
			{style: "Soft Formal", colors: []string{"Navy", "Grey"}, outfit: "Navy knit blazer, grey mock-neck top, grey wool trousers, polished loafers", accessories: "Leather folio, subtle pin", mood: "Composed", reasoning: "Knit tailoring keeps formal structure comfortable all day."},
		},
		themeParty: {
			{style: "After Dark", colors: []string{"Black", "Silver"}, outfit: "Black satin shirt, black slim trousers, polished boots", accessories: "Silver chain, bold ring", mood: "Electric", reasoning: "All-black with one metallic accent thrives under party lights."},
			{style: "Festive Neutral", colors: []string{"Burgundy", "Black"}, outfit: "Burgundy velvet overshirt, black tapered trousers, black loafers", accessories: "Dress watch, pocket square", mood: "Celebratory", reasoning: "Velvet signals occasion without committing to costume."},
		},
		themeCasual: {
			{style: "Daily Driver", colors: []string{"Blue", "White"}, outfit: "Light blue overshirt, white tee, blue relaxed jeans, sneakers", accessories: "Canvas cap, tote", mood: "Easygoing", reasoning: "Double denim in different washes is casual done on purpose."},
			{style: "Comfort First", colors: []string{"Green", "Grey"}, outfit: "Sage green hoodie, grey cargo pants, chunky sneakers", accessories: "Sling bag, sports watch", mood: "Unhurried", reasoning: "Soft layers and pockets for days with no fixed plan."},
		},
	},
}

// Regional templates replace the occasion table when the request carries
// location data matching a known region.
var regionTemplates = map[string]map[Gender][2]template{
	"mountain": {
		GenderMale: {
			{style: "Alpine Trek", colors: []string{"Forest Green", "Charcoal"}, outfit: "Forest green fleece jacket, charcoal trekking trousers, hiking boots", accessories: "Wool cap, polarized sunglasses", mood: "Rugged and ready", reasoning: "Windproof fleece and grippy soles handle steep, shifting weather."},
			{style: "Hill Station Smart", colors: []string{"Brown", "Cream"}, outfit: "Brown quilted vest, cream flannel shirt, dark jeans, leather boots", accessories: "Knit scarf, field watch", mood: "Warm and composed", reasoning: "Layers peel off as mountain mornings warm toward noon."},
		},
		GenderFemale: {
			{style: "Mountain Cozy", colors: []string{"Rust", "Cream"}, outfit: "Rust puffer jacket, cream ribbed sweater, fleece-lined leggings, hiking boots", accessories: "Pom beanie, thermal flask sling", mood: "Snug and adventurous", reasoning: "Insulated fitted layers keep warmth without slowing the climb."},
			{style: "Valley Stroll", colors: []string{"Plum", "Grey"}, outfit: "Plum wool poncho, grey turtleneck, dark skinny jeans, ankle boots", accessories: "Knit headband, crossbody bag", mood: "Soft and scenic", reasoning: "A poncho layers over everything when temperatures swing."},
		},
		GenderUnknown: {
			{style: "Trail Neutral", colors: []string{"Olive", "Black"}, outfit: "Olive softshell jacket, black hiking pants, trail shoes", accessories: "Beanie, daypack", mood: "Steady", reasoning: "Technical layers work from trailhead to tea house."},
			{style: "Summit Layers", colors: []string{"Navy", "Grey"}, outfit: "Navy down vest, grey merino base layer, dark joggers, boots", accessories: "Buff scarf, gloves", mood: "Prepared", reasoning: "Merino regulates heat through climbs and cold stops alike."},
		},
	},
	"coastal": {
		GenderMale: {
			{style: "Shoreline Easy", colors: []string{"White", "Aqua"}, outfit: "White linen shirt, aqua swim-ready shorts, leather sandals", accessories: "Straw hat, sunglasses", mood: "Salt-air relaxed", reasoning: "Linen dries fast and shrugs off sea-breeze humidity."},
			{style: "Beach Evening", colors: []string{"Coral", "Beige"}, outfit: "Coral camp-collar shirt, beige drawstring trousers, espadrilles", accessories: "Shell bracelet, canvas tote", mood: "Golden hour", reasoning: "Warm coral flatters sunset light along the promenade."},
		},
		GenderFemale: {
			{style: "Seaside Flow", colors: []string{"Turquoise", "White"}, outfit: "Turquoise flowy maxi dress, white flat sandals", accessories: "Shell pendant, straw bag", mood: "Breezy and bright", reasoning: "A maxi dress moves with the sea wind instead of fighting it."},
			{style: "Boardwalk Chic", colors: []string{"Coral", "Cream"}, outfit: "Coral wrap top, cream linen culottes, slide sandals", accessories: "Oversized sunglasses, anklet", mood: "Sunlit and light", reasoning: "Breathable separates survive humidity and still photograph well."},
		},
		GenderUnknown: {
			{style: "Coast Neutral", colors: []string{"Sand", "White"}, outfit: "White cotton tee, sand linen pants, canvas slip-ons", accessories: "Bucket hat, tote", mood: "Unhurried", reasoning: "Sand tones hide beach dust and stay cool past noon."},
			{style: "Harbor Casual", colors: []string{"Navy", "White"}, outfit: "Navy striped tee, white shorts, boat shoes", accessories: "Sunglasses, rope bracelet", mood: "Nautical", reasoning: "Stripes and boat soles are coastal shorthand everywhere."},
		},
	},
	"desert": {
		GenderMale: {
			{style: "Dune Utility", colors: []string{"Khaki", "Terracotta"}, outfit: "Khaki loose shirt, terracotta cargo trousers, suede boots", accessories: "Cotton scarf, aviators", mood: "Sun-hardened", reasoning: "Loose woven cotton blocks sun while letting heat escape."},
			{style: "Oasis Evening", colors: []string{"Ivory", "Brown"}, outfit: "Ivory pathani kurta, relaxed trousers, leather sandals", accessories: "Woven bracelet, shaded cap", mood: "Calm after sundown", reasoning: "Light full-cover layers handle desert sun and the evening chill."},
		},
		GenderFemale: {
			{style: "Desert Bloom", colors: []string{"Terracotta", "Ivory"}, outfit: "Terracotta cotton maxi dress, ivory dupatta-style scarf, flat sandals", accessories: "Oxidised jewelry, woven bag", mood: "Earthy and radiant", reasoning: "Full-length breathable cotton beats sun exposure and blown sand."},
			{style: "Caravan Chic", colors: []string{"Mustard", "Brown"}, outfit: "Mustard kaftan top, brown palazzo pants, embellished juttis", accessories: "Statement earrings, head scarf", mood: "Free and warm-toned", reasoning: "Desert palettes echo the landscape and hide the dust."},
		},
		GenderUnknown: {
			{style: "Arid Neutral", colors: []string{"Sand", "Olive"}, outfit: "Sand loose overshirt, olive wide-leg trousers, closed sandals", accessories: "Wide-brim hat, water sling", mood: "Shaded", reasoning: "Cover-everything layers in pale shades are desert survival style."},
			{style: "Dusk Layers", colors: []string{"Rust", "Cream"}, outfit: "Cream long-sleeve tee, rust overshirt, relaxed pants, desert boots", accessories: "Scarf, canvas bag", mood: "Ember-warm", reasoning: "An overshirt bridges scorching days and cold desert nights."},
		},
	},
}

var regionAliases = map[string][]string{
	"mountain": {"mountain", "himalay", "hill", "alpine", "highland"},
	"coastal":  {"coast", "beach", "island", "seaside", "shore"},
	"desert":   {"desert", "arid", "dune"},
}

// matchRegion maps free-form region/terrain text onto a template table key.
func matchRegion(loc *LocationInfo) (string, bool) {
	haystack := strings.ToLower(loc.Region + " " + loc.Terrain)
	for key, aliases := range regionAliases {
		if containsAny(haystack, aliases) {
			return key, true
		}
	}
	return "", false
}

var bodyTypeClauses = map[string]string{
	"slim":      "Slim frames carry layered and structured pieces well, so feel free to add volume up top.",
	"athletic":  "An athletic build suits fitted cuts that follow the shoulder line without squeezing it.",
	"heavy":     "Straight, softly structured silhouettes in darker tones streamline a heavier build.",
	"hourglass": "An hourglass shape shines with pieces that define the waist rather than hide it.",
	"pear":      "A pear shape balances best with detail up top and clean, darker lines below.",
	"apple":     "An apple shape benefits from open necklines and fabric that skims the midsection.",
	"rectangle": "A rectangle frame gains shape from belts, layers, and contrast at the waist.",
}

var skinToneClauses = map[string]string{
	"fair":     "Fair skin lights up against jewel tones and deeper contrasts.",
	"wheatish": "Wheatish tones pair beautifully with earthy shades and warm pastels.",
	"dusky":    "Dusky skin glows in rich, saturated colors like mustard, rust, and emerald.",
	"dark":     "Dark skin carries bright, bold colors and crisp whites with striking effect.",
}

// enrichReasoning appends profile-specific clauses after the base reasoning.
// Base reasoning is never replaced.
func enrichReasoning(base string, profile UserProfile) string {
	parts := []string{base}
	if clause, ok := bodyTypeClauses[strings.ToLower(strings.TrimSpace(profile.BodyType))]; ok {
		parts = append(parts, clause)
	}
	switch {
	case profile.HeightCm > 0 && profile.HeightCm < 160:
		parts = append(parts, "High-waisted bottoms and vertical lines will lengthen a petite frame.")
	case profile.HeightCm > 175:
		parts = append(parts, "A taller frame can break up its height with contrasting layers and cuffs.")
	}
	if clause, ok := skinToneClauses[strings.ToLower(strings.TrimSpace(profile.SkinTone))]; ok {
		parts = append(parts, clause)
	}
	return strings.Join(parts, " ")
}

var baselineTips = []string{
	"Invest in well-fitted basics before statement pieces",
	"Keep footwear clean; it anchors the whole look",
	"Limit each outfit to three colors or fewer",
	"Dress for the occasion first and the trend second",
}

var bodyTypeTips = map[string]string{
	"slim":      "Layering adds visual weight; try overshirts and textured knits",
	"athletic":  "Pick stretch fabrics so fitted cuts stay comfortable",
	"heavy":     "Monochrome vertical looks are slimming without feeling restrictive",
	"hourglass": "Wrap styles and tucked tops highlight your natural waist",
	"pear":      "Draw the eye upward with brighter tops and statement collars",
	"apple":     "A-line and empire cuts flow from the narrowest point",
	"rectangle": "Belts and peplum shapes create curves where you want them",
}

var skinToneTips = map[string]string{
	"fair":     "Deep jewel tones give fair skin the strongest contrast",
	"wheatish": "Mustard, olive, and terracotta sit naturally on wheatish skin",
	"dusky":    "Skip washed-out pastels; saturated shades do you more justice",
	"dark":     "Crisp whites and vivid brights are your easiest wins",
}

// stylingTips combines the baseline tip set with at most two profile-specific
// additions, capped at six.
func stylingTips(profile UserProfile) []string {
	tips := append([]string(nil), baselineTips...)

	extras := make([]string, 0, 3)
	if tip, ok := bodyTypeTips[strings.ToLower(strings.TrimSpace(profile.BodyType))]; ok {
		extras = append(extras, tip)
	}
	switch {
	case profile.HeightCm > 0 && profile.HeightCm < 160:
		extras = append(extras, "Cropped jackets and high-rise bottoms elongate your silhouette")
	case profile.HeightCm > 175:
		extras = append(extras, "Longline coats and wide-leg cuts balance your height")
	}
	if tip, ok := skinToneTips[strings.ToLower(strings.TrimSpace(profile.SkinTone))]; ok {
		extras = append(extras, tip)
	}

	if len(extras) > 2 {
		extras = extras[:2]
	}
	tips = append(tips, extras...)
	if len(tips) > 6 {
		tips = tips[:6]
	}
	return tips
}

// collectPalette gathers the union of outfit colors in first-appearance order.
func collectPalette(outfits []OutfitRecommendation, max int) []string {
	palette := make([]string, 0, max)
	seen := make(map[string]struct{})
	for _, outfit := range outfits {
		for _, color := range outfit.Colors {
			key := strings.ToLower(strings.TrimSpace(color))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			palette = append(palette, color)
			if len(palette) >= max {
				return palette
			}
		}
	}
	return palette
}

func locationNote(loc *LocationInfo) string {
	clauses := make([]string, 0, 4)
	if loc.Climate != "" {
		clauses = append(clauses, fmt.Sprintf("the %s climate", strings.ToLower(loc.Climate)))
	}
	if loc.Terrain != "" {
		clauses = append(clauses, fmt.Sprintf("%s terrain", strings.ToLower(loc.Terrain)))
	}
	if loc.CulturalStyle != "" {
		clauses = append(clauses, fmt.Sprintf("the local %s aesthetic", strings.ToLower(loc.CulturalStyle)))
	}
	if len(loc.Trends) > 0 {
		clauses = append(clauses, fmt.Sprintf("the current %s trend", strings.ToLower(loc.Trends[0])))
	}
	if len(clauses) == 0 {
		if loc.Place == "" {
			return ""
		}
		return fmt.Sprintf("Styled with %s in mind.", loc.Place)
	}
	place := loc.Place
	if place == "" {
		place = "your destination"
	}
	return fmt.Sprintf("For %s, these picks account for %s.", place, strings.Join(clauses, ", "))
}

// fallbackSet deterministically builds a complete recommendation set. It never
// fails, which is what lets Generate absorb every AI-path failure.
func fallbackSet(prompt string, profile UserProfile, sc *SituationalContext) RecommendationSet {
	gender := profile.Gender
	if gender != GenderMale && gender != GenderFemale {
		gender = GenderUnknown
	}

	var picks [2]template
	var note string
	usedRegion := false
	if sc != nil && sc.Location != nil {
		note = locationNote(sc.Location)
		if region, ok := matchRegion(sc.Location); ok {
			picks = regionTemplates[region][gender]
			usedRegion = true
		}
	}
	if !usedRegion {
		picks = themeTemplates[gender][classifyTheme(prompt, sc)]
	}

	outfits := make([]OutfitRecommendation, 0, len(picks))
	for _, tpl := range picks {
		outfits = append(outfits, OutfitRecommendation{
			Style:       tpl.style,
			Colors:      append([]string(nil), tpl.colors...),
			Outfit:      tpl.outfit,
			Accessories: tpl.accessories,
			Mood:        tpl.mood,
			Reasoning:   enrichReasoning(tpl.reasoning, profile),
		})
	}

	return RecommendationSet{
		Source:       SourceFallback,
		Outfits:      outfits,
		Palette:      collectPalette(outfits, 4),
		Tips:         stylingTips(profile),
		LocationNote: note,
	}
}

package stylist

import (
	"fmt"
	"strings"
)

const responseContract = `Respond with ONLY a JSON array (no markdown, no prose) where each element has exactly these string fields: "style", "colors" (array of color names), "outfit", "accessories", "mood", "reasoning". Produce exactly 2 outfit recommendations.`

func (s *service) buildGenerationPrompt(req RecommendationRequest) string {
	var b strings.Builder
	b.WriteString("You are an expert fashion stylist for the Indian market.\n")
	fmt.Fprintf(&b, "The user asks: %s\n\n", strings.TrimSpace(req.Prompt))

	b.WriteString("User profile:\n")
	if req.Profile.HeightCm > 0 {
		fmt.Fprintf(&b, "- Height: %.0f cm\n", req.Profile.HeightCm)
	}
	if req.Profile.WeightKg > 0 {
		fmt.Fprintf(&b, "- Weight: %.0f kg\n", req.Profile.WeightKg)
	}
	if req.Profile.BodyType != "" {
		fmt.Fprintf(&b, "- Body type: %s\n", req.Profile.BodyType)
	}
	if req.Profile.SkinTone != "" {
		fmt.Fprintf(&b, "- Skin tone: %s\n", req.Profile.SkinTone)
	}
	fmt.Fprintf(&b, "- Gender: %s\n", req.Profile.Gender)

	if req.Context != nil {
		if w := req.Context.Weather; w != nil {
			fmt.Fprintf(&b, "\nCurrent weather: %.0f°C, %s", w.TempC, w.Condition)
			if w.Humidity > 0 {
				fmt.Fprintf(&b, ", %d%% humidity", w.Humidity)
			}
			b.WriteString("\nDress appropriately for these conditions.\n")
		}
		if loc := req.Context.Location; loc != nil {
			fmt.Fprintf(&b, "\nLocation: %s", loc.Place)
			if loc.Climate != "" {
				fmt.Fprintf(&b, " (%s climate)", loc.Climate)
			}
			if loc.CulturalStyle != "" {
				fmt.Fprintf(&b, "\nLocal style sensibility: %s", loc.CulturalStyle)
			}
			if len(loc.Trends) > 0 {
				fmt.Fprintf(&b, "\nTrending locally: %s", strings.Join(loc.Trends, ", "))
			}
			b.WriteString("\nRespect the local culture and climate in your picks.\n")
		}
	}
	if req.Image != nil {
		b.WriteString("\nAn image of the user or a garment is attached; factor it into fit and color advice.\n")
	}

	b.WriteString("\n")
	b.WriteString(responseContract)
	return b.String()
}

const imageValidationPrompt = `Examine the attached image and decide whether it is usable for fashion styling advice: it should show a person, an outfit, or a garment clearly. Respond with ONLY a JSON object: {"isValid": true or false, "reason": "short explanation"}.`

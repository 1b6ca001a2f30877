package stylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutfitsStripsFencesAndPreamble(t *testing.T) {
	raw := "I'll create the following outfits for you:\n```json\n[{\"style\":\"Casual\",\"colors\":[\"Navy\",\"White\"],\"outfit\":\"Navy tee and white jeans\",\"accessories\":\"Cap\",\"mood\":\"Relaxed\",\"reasoning\":\"Easy pairing\"}]\n```\nHope you like them!"

	outfits, err := parseOutfits(raw)
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	require.Equal(t, "Casual", outfits[0].Style)
	require.Equal(t, []string{"Navy", "White"}, outfits[0].Colors)
	require.Equal(t, "Navy tee and white jeans", outfits[0].Outfit)
}

func TestParseOutfitsAcceptsSingleObject(t *testing.T) {
	raw := `{"style":"Formal","colors":["Black"],"outfit":"Black suit","accessories":"Tie","mood":"Sharp","reasoning":"Classic choice"}`

	outfits, err := parseOutfits(raw)
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	require.Equal(t, "Formal", outfits[0].Style)
}

func TestParseOutfitsCoercesSingleColorString(t *testing.T) {
	raw := `[{"style":"Minimal","colors":"Black","outfit":"Black everything","accessories":"Watch","mood":"Quiet","reasoning":"Monochrome works"}]`

	outfits, err := parseOutfits(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Black"}, outfits[0].Colors)
}

func TestParseOutfitsRejectsMalformedJSON(t *testing.T) {
	_, err := parseOutfits("Sure! Here are some great outfit ideas for your trip.")
	require.Error(t, err)

	_, err = parseOutfits(`[{"style":"Broken","colors":[`)
	require.Error(t, err)
}

func TestParseOutfitsRejectsMissingFields(t *testing.T) {
	_, err := parseOutfits(`[{"style":"","colors":["Red"],"outfit":"Red dress","reasoning":"Bold"}]`)
	require.Error(t, err)

	_, err = parseOutfits(`[{"style":"Bold","colors":[],"outfit":"Red dress","reasoning":"Bold"}]`)
	require.Error(t, err)

	_, err = parseOutfits(`[{"style":"Bold","colors":["Red"],"outfit":"Red dress","reasoning":""}]`)
	require.Error(t, err)
}

func TestExtractJSONFindsArrayBounds(t *testing.T) {
	payload, err := extractJSON(`Here is the result: [{"a":1}] and some trailing prose`)
	require.NoError(t, err)
	require.Equal(t, `[{"a":1}]`, payload)
}

func TestCoerceStringArrayDropsBlanks(t *testing.T) {
	out, err := coerceStringArray([]byte(`["Navy"," ","White"]`))
	require.NoError(t, err)
	require.Equal(t, []string{"Navy", "White"}, out)

	_, err = coerceStringArray([]byte(`42`))
	require.Error(t, err)
}

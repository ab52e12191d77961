package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
)

func sampleProducts() []catalogclient.Product {
	return []catalogclient.Product{
		{ID: 1, Name: "Abbey Road", Artist: "The Beatles", Price: 29.99},
		{ID: 3, Name: "Wish You Were Here", Artist: "Pink Floyd", Price: 31.99},
		{ID: 5, Name: "The Dark Side of the Moon", Artist: "Pink Floyd", Price: 34.99},
	}
}

func TestCleanMarkdown(t *testing.T) {
	in := "## Рекомендации\n\n1. **Abbey Road** - *классика* жанра\n- отличный звук\n\n\n«цитата»"
	out := CleanMarkdown(in)
	require.Equal(t, "Рекомендации\nAbbey Road - классика жанра\nотличный звук\n\"цитата\"", out)
}

func TestCleanMarkdownNestedBold(t *testing.T) {
	require.Equal(t, "text", CleanMarkdown("****text****"))
	require.Equal(t, "", CleanMarkdown(""))
}

func TestRecommendationsByID(t *testing.T) {
	text := "Советую пластинку ID: 3 - идеально подходит для тихого вечера"
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 1)
	require.Equal(t, uint(3), recs[0].VinylID)
	require.Equal(t, "Wish You Were Here", recs[0].Title)
	require.Equal(t, "Pink Floyd", recs[0].Artist)
	require.NotEmpty(t, recs[0].Reason)
	require.Equal(t, DefaultMatchScore, recs[0].MatchScore)
}

func TestRecommendationsIDVariants(t *testing.T) {
	for _, text := range []string{
		"лучший выбор (ID: 5)",
		"лучший выбор ID = 5",
		"лучший выбор, пластинка 5",
		"лучший выбор #5",
	} {
		recs := Recommendations(text, sampleProducts())
		require.Len(t, recs, 1, "text %q", text)
		require.Equal(t, uint(5), recs[0].VinylID, "text %q", text)
	}
}

func TestRecommendationsDeduplicatesIDs(t *testing.T) {
	text := "ID: 1 и снова ID: 1, а ещё #3"
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 2)
	require.Equal(t, uint(1), recs[0].VinylID)
	require.Equal(t, uint(3), recs[1].VinylID)
}

func TestRecommendationsIgnoresUnknownIDs(t *testing.T) {
	recs := Recommendations("попробуйте ID: 999", sampleProducts())
	require.Empty(t, recs)
}

func TestRecommendationsByQuotedTitle(t *testing.T) {
	text := `Рекомендую альбом "Abbey Road" - великая запись The Beatles`
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 1)
	require.Equal(t, uint(1), recs[0].VinylID)
}

func TestRecommendationsByBoldPartialTitle(t *testing.T) {
	text := "Обратите внимание на **Dark Side of the Moon** от Pink Floyd"
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 1)
	require.Equal(t, uint(5), recs[0].VinylID)
}

func TestRecommendationsReasonAndScore(t *testing.T) {
	text := `"Wish You Were Here" - меланхоличный шедевр для долгих осенних вечеров. Оценка: 0.9`
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 1)
	require.Contains(t, recs[0].Reason, "меланхоличный шедевр")
	require.InDelta(t, 0.9, recs[0].MatchScore, 0.001)
}

func TestRecommendationsScoreNormalization(t *testing.T) {
	text := `"Abbey Road" подойдёт вам. Соответствие: 85`
	recs := Recommendations(text, sampleProducts())

	require.Len(t, recs, 1)
	require.InDelta(t, 0.085, recs[0].MatchScore, 0.001)
}

func TestRecommendationsDefaultReason(t *testing.T) {
	recs := Recommendations("ID: 1", sampleProducts())

	require.Len(t, recs, 1)
	require.Equal(t, DefaultReason, recs[0].Reason)
}

func TestRecommendationsEmptyInputs(t *testing.T) {
	require.Empty(t, Recommendations("", sampleProducts()))
	require.Empty(t, Recommendations("ID: 1", nil))
	require.Empty(t, Recommendations("ничего похожего тут нет", sampleProducts()))
}

func TestConfidence(t *testing.T) {
	require.InDelta(t, 0.8, Confidence("уверенность: 0.8", 0.5), 0.001)
	require.InDelta(t, 0.75, Confidence("Confidence: 75", 0.5), 0.001)
	require.InDelta(t, 0.5, Confidence("никаких чисел", 0.5), 0.001)
}

func TestClamp01(t *testing.T) {
	require.Equal(t, 0.0, Clamp01(-1))
	require.Equal(t, 1.0, Clamp01(2))
	require.Equal(t, 0.3, Clamp01(0.3))
}

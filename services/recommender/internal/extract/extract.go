package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
)

// Recommendation is a single vinyl record pulled out of model text. The
// wire names id/name are what the web client has always read.
type Recommendation struct {
	VinylID    uint    `json:"id"`
	Title      string  `json:"name"`
	Artist     string  `json:"artist"`
	Reason     string  `json:"reason"`
	MatchScore float64 `json:"match_score"`
}

const (
	// DefaultReason is used when no explanation can be located near a match.
	DefaultReason = "Подходит под ваши предпочтения"
	// DefaultMatchScore is used when no score can be located near a match.
	DefaultMatchScore = 0.7
	maxReasonLen      = 300
)

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(ID[:\s]+(\d+)\)`),
	regexp.MustCompile(`(?i)ID[:\s]+(\d+)`),
	regexp.MustCompile(`(?i)ID\s*=\s*(\d+)`),
	regexp.MustCompile(`(?i)пластинка\s+(\d+)`),
	regexp.MustCompile(`#(\d+)`),
}

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`["«»“”]([^"«»“”\n]{2,})["«»“”]`),
	regexp.MustCompile(`\*\*([^*\n]+)\*\*`),
}

var (
	reasonInlineRe = regexp.MustCompile(`(?i)[-–—]\s*([^\n]+?)(?:оценка|совпадение|$)`)
	reasonLabelRe  = regexp.MustCompile(`(?i)(?:причина|reason)[:\s]+([^\n]+)`)
	scoreLabelRe   = regexp.MustCompile(`(?i)(?:соответствие|совпадение|match|score|оценка)[:\s]+([0-9]+(?:\.[0-9]+)?)`)
	scoreUnitRe    = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:из\s*1|%|балл)`)
	confidenceRe   = regexp.MustCompile(`(?i)(?:уверенность|confidence)[:\s]+([0-9]+(?:\.[0-9]+)?)`)
)

// Recommendations scans free text for references to catalog products, first
// by explicit ids and then by quoted or bold titles, and builds
// recommendations enriched with a nearby reason and match score.
func Recommendations(text string, products []catalogclient.Product) []Recommendation {
	if text == "" || len(products) == 0 {
		return nil
	}

	byID := make(map[uint]catalogclient.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var found []catalogclient.Product
	seen := make(map[uint]bool)

	for _, re := range idPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			id, err := strconv.ParseUint(m[1], 10, 32)
			if err != nil {
				continue
			}
			p, ok := byID[uint(id)]
			if !ok || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			found = append(found, p)
		}
	}

	if len(found) == 0 {
		found = matchByTitle(text, products, seen)
	}

	recs := make([]Recommendation, 0, len(found))
	for _, p := range found {
		recs = append(recs, Recommendation{
			VinylID:    p.ID,
			Title:      p.Name,
			Artist:     p.Artist,
			Reason:     reasonFor(text, p.Name),
			MatchScore: scoreFor(text, p.Name),
		})
	}
	return recs
}

// Confidence looks for an explicit confidence mention in the text and
// normalizes it to [0,1], returning def when none is present.
func Confidence(text string, def float64) float64 {
	m := confidenceRe.FindStringSubmatch(text)
	if m == nil {
		return def
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return def
	}
	if v > 1 {
		v /= 100
	}
	return Clamp01(v)
}

// Clamp01 bounds a score into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func matchByTitle(text string, products []catalogclient.Product, seen map[uint]bool) []catalogclient.Product {
	var candidates []string
	for _, re := range titlePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidates = append(candidates, strings.TrimSpace(m[1]))
		}
	}

	var found []catalogclient.Product
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		for _, p := range products {
			if seen[p.ID] {
				continue
			}
			name := strings.ToLower(p.Name)
			if name == lower || wordOverlap(name, lower) >= 0.4 {
				seen[p.ID] = true
				found = append(found, p)
			}
		}
	}
	return found
}

// wordOverlap measures how many significant words (longer than two runes)
// the two titles share, relative to the larger word set.
func wordOverlap(a, b string) float64 {
	wa := significantWords(a)
	wb := significantWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	shared := 0
	for w := range wa {
		if wb[w] {
			shared++
		}
	}
	larger := len(wa)
	if len(wb) > larger {
		larger = len(wb)
	}
	return float64(shared) / float64(larger)
}

func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, `"'().,!?:;`)
		if utf8.RuneCountInString(w) > 2 {
			words[w] = true
		}
	}
	return words
}

func reasonFor(text, title string) string {
	window := windowAfter(text, title, 400)
	if window == "" {
		return DefaultReason
	}
	for _, re := range []*regexp.Regexp{reasonInlineRe, reasonLabelRe} {
		m := re.FindStringSubmatch(window)
		if m == nil {
			continue
		}
		reason := CleanMarkdown(strings.TrimSpace(m[1]))
		if utf8.RuneCountInString(reason) < 10 {
			continue
		}
		if runes := []rune(reason); len(runes) > maxReasonLen {
			reason = string(runes[:maxReasonLen])
		}
		return reason
	}
	return DefaultReason
}

func scoreFor(text, title string) float64 {
	window := windowAround(text, title, 100, 500)
	if window == "" {
		return DefaultMatchScore
	}
	for _, re := range []*regexp.Regexp{scoreLabelRe, scoreUnitRe} {
		m := re.FindStringSubmatch(window)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > 1 {
			v /= 10
		}
		if v > 1 {
			v /= 100
		}
		return Clamp01(v)
	}
	return DefaultMatchScore
}

func windowAfter(text, title string, size int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(title))
	if idx < 0 {
		return ""
	}
	start := idx + len(title)
	end := runeBoundary(text, start+size)
	if start > len(text) {
		return ""
	}
	return text[runeBoundary(text, start):end]
}

func windowAround(text, title string, before, after int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(title))
	if idx < 0 {
		return ""
	}
	start := idx - before
	if start < 0 {
		start = 0
	}
	return text[runeBoundary(text, start):runeBoundary(text, idx+len(title)+after)]
}

// runeBoundary clamps the index into the string and backs it up to the
// start of a rune so slicing never splits a code point.
func runeBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	if i < 0 {
		return 0
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// Package extract recovers structured recommendations from free-form
// model output when it does not come back as valid JSON.
package extract

import (
	"regexp"
	"strings"
)

var (
	boldRe     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe   = regexp.MustCompile(`\*([^*]+)\*`)
	headingRe  = regexp.MustCompile(`#{1,6}\s+`)
	bulletRe   = regexp.MustCompile(`(?m)^[\s]*[-*+]\s+`)
	numberedRe = regexp.MustCompile(`(?m)^\d+\.\s+`)
	quotesRe   = regexp.MustCompile("[«»“”„]")
	starsRe    = regexp.MustCompile(`\*+`)
	spacesRe   = regexp.MustCompile(` +`)
)

// CleanMarkdown strips markdown decoration out of model text so the result
// reads as plain prose.
func CleanMarkdown(text string) string {
	if text == "" {
		return ""
	}

	// Bold can nest, keep unwrapping until nothing matches.
	for boldRe.MatchString(text) {
		text = boldRe.ReplaceAllString(text, "$1")
	}
	text = italicRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	text = numberedRe.ReplaceAllString(text, "")
	text = quotesRe.ReplaceAllString(text, `"`)
	text = starsRe.ReplaceAllString(text, "")

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	text = strings.Join(lines, "\n")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

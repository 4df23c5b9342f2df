package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Reading speed used for derived read times.
const wordsPerMinute = 200

// excerptMaxLen is the character budget for derived excerpts.
const excerptMaxLen = 200

// ReadTime derives a "<n> min read" label from the body word count,
// rounding minutes up so a 201-word article reads as 2 minutes.
func ReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// ShortReadTime is the short-form variant used for glossary entries: bodies
// of a minute or less are rendered in seconds instead.
func ShortReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes > 1 {
		return fmt.Sprintf("%d min read", minutes)
	}
	seconds := (words*60 + wordsPerMinute - 1) / wordsPerMinute
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("%d sec read", seconds)
}

var (
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	emphasisRe   = regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`)
	codeSpanRe   = regexp.MustCompile("`([^`]*)`")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Excerpt derives a plain-text excerpt from a markdown body: heading markers,
// bold/italic and inline-code markup are stripped, links collapse to their
// visible text, and the result is truncated to maxLen characters with an
// ellipsis appended when anything was cut.
func Excerpt(body string, maxLen int) string {
	text := headingRe.ReplaceAllString(body, "")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = boldRe.ReplaceAllString(text, "$1$2")
	text = emphasisRe.ReplaceAllString(text, "$1$2")
	text = codeSpanRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

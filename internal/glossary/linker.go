// Package glossary rewrites article bodies so the first occurrence of each
// known glossary term links to that term's detail page. The rewritten body
// is derived state for rendering only; the underlying record is never
// mutated.
package glossary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledgerhall/site/internal/content"
)

// excludedTerms lists term slugs that must never be linked inside a specific
// article, keyed by article id. Handles homonyms: a term can mean something
// unrelated in one article's context.
var excludedTerms = map[string][]string{
	// "Oracle" here is the database vendor, not a price oracle.
	"enterprise-treasury-integration": {"oracle"},
	// The mempool explainer would link its own subject in the first line.
	"inside-the-mempool": {"mempool"},
	// "Halving" used throughout in the arithmetic sense.
	"position-sizing-for-allocators": {"halving"},
}

// Exclusions returns the term slugs excluded from linking in the given
// article. Articles without an entry get an empty set.
func Exclusions(articleID string) []string {
	return excludedTerms[articleID]
}

// CrossLink returns body with the first occurrence of each glossary term
// replaced by a markdown link to the term's page, carrying the short
// definition as the link title. Longer terms are attempted first so a
// multi-word term is never partially consumed by a shorter one, and text
// inside an inserted link is never matched again.
func CrossLink(articleID, body string, terms []content.GlossaryTerm) string {
	excluded := make(map[string]bool)
	for _, slug := range excludedTerms[articleID] {
		excluded[slug] = true
	}
	return crossLink(body, terms, excluded)
}

// segment is a run of body text. Frozen segments hold already-inserted
// links and are skipped during matching.
type segment struct {
	text   string
	frozen bool
}

func crossLink(body string, terms []content.GlossaryTerm, excluded map[string]bool) string {
	// Longest term first. Attempt order only; match safety comes from the
	// linked set and the frozen segments.
	sorted := make([]content.GlossaryTerm, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Term) > len(sorted[j].Term)
	})

	segments := []segment{{text: body}}
	linked := make(map[string]bool)

	for _, t := range sorted {
		if t.Term == "" || linked[t.Slug] || excluded[t.Slug] {
			continue
		}
		re, err := compileTermPattern(t.Term)
		if err != nil {
			continue
		}
		if next := replaceFirst(segments, re, t); next != nil {
			segments = next
			linked[t.Slug] = true
		}
	}

	var out strings.Builder
	for _, s := range segments {
		out.WriteString(s.text)
	}
	return out.String()
}

// compileTermPattern builds a whole-word, case-insensitive pattern matching
// the term literally. Regex metacharacters in the term are escaped.
func compileTermPattern(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// replaceFirst links the first match of re across the unfrozen segments,
// returning the new segment slice, or nil when nothing matched.
func replaceFirst(segments []segment, re *regexp.Regexp, t content.GlossaryTerm) []segment {
	for i, seg := range segments {
		if seg.frozen {
			continue
		}
		loc := re.FindStringIndex(seg.text)
		if loc == nil {
			continue
		}

		link := fmt.Sprintf("[%s](/glossary/%s \"%s\")",
			seg.text[loc[0]:loc[1]], t.Slug, sanitizeTitle(t.ShortDefinition))

		out := make([]segment, 0, len(segments)+2)
		out = append(out, segments[:i]...)
		if loc[0] > 0 {
			out = append(out, segment{text: seg.text[:loc[0]]})
		}
		out = append(out, segment{text: link, frozen: true})
		if loc[1] < len(seg.text) {
			out = append(out, segment{text: seg.text[loc[1]:]})
		}
		out = append(out, segments[i+1:]...)
		return out
	}
	return nil
}

// sanitizeTitle keeps the tooltip text from breaking the markdown link
// title attribute.
func sanitizeTitle(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\'')
		case '\n', '\r':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

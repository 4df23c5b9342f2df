package glossary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerhall/site/internal/content"
)

func term(name, slug, def string) content.GlossaryTerm {
	return content.GlossaryTerm{Term: name, Slug: slug, ShortDefinition: def}
}

func TestCrossLink_FirstOccurrenceOnly(t *testing.T) {
	terms := []content.GlossaryTerm{
		term("Proof of Work", "proof-of-work", "The consensus mechanism."),
	}
	body := "Proof of Work secures Bitcoin. Proof of Work is expensive."

	got := CrossLink("some-article", body, terms)
	want := `[Proof of Work](/glossary/proof-of-work "The consensus mechanism.") secures Bitcoin. Proof of Work is expensive.`
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "/glossary/proof-of-work"))
}

func TestCrossLink_CaseInsensitivePreservesOriginalCase(t *testing.T) {
	terms := []content.GlossaryTerm{term("halving", "halving", "The subsidy cut.")}
	got := CrossLink("a", "The Halving approaches.", terms)
	assert.Equal(t, `The [Halving](/glossary/halving "The subsidy cut.") approaches.`, got)
}

func TestCrossLink_LongestTermWins(t *testing.T) {
	terms := []content.GlossaryTerm{
		term("Work", "work", "Short one."),
		term("Proof of Work", "proof-of-work", "Long one."),
	}
	got := CrossLink("a", "Proof of Work secures the chain.", terms)

	// The longer term consumes the phrase; "Work" must not be linked inside
	// the inserted link's text or URL.
	assert.Contains(t, got, `[Proof of Work](/glossary/proof-of-work`)
	assert.NotContains(t, got, "/glossary/work")
}

func TestCrossLink_WordBoundaries(t *testing.T) {
	terms := []content.GlossaryTerm{term("Bit", "bit", "A binary digit.")}
	got := CrossLink("a", "Bitcoin is not a Bit.", terms)
	assert.Equal(t, `Bitcoin is not a [Bit](/glossary/bit "A binary digit.").`, got)
}

func TestCrossLink_RegexMetacharactersLiteral(t *testing.T) {
	terms := []content.GlossaryTerm{term("Web 3.0", "web-3-0", "A marketing label.")}

	// The dot must match literally, not any character.
	assert.Equal(t, "No link for Web 3x0 here.",
		CrossLink("a", "No link for Web 3x0 here.", terms))

	got := CrossLink("a", "The Web 3.0 narrative faded.", terms)
	assert.Equal(t, `The [Web 3.0](/glossary/web-3-0 "A marketing label.") narrative faded.`, got)
}

func TestCrossLink_ExclusionsSuppressLinking(t *testing.T) {
	terms := []content.GlossaryTerm{term("Oracle", "oracle", "A price feed.")}
	body := "We integrated with Oracle databases."

	got := CrossLink("enterprise-treasury-integration", body, terms)
	assert.Equal(t, body, got)

	// Same body under any other article id does get linked.
	linked := CrossLink("another-article", body, terms)
	assert.Contains(t, linked, "/glossary/oracle")
}

func TestCrossLink_NoMatchesLeavesBodyUntouched(t *testing.T) {
	terms := []content.GlossaryTerm{term("mempool", "mempool", "Pending transactions.")}
	body := "Nothing here mentions it."
	assert.Equal(t, body, CrossLink("a", body, terms))
}

func TestCrossLink_TitleSanitized(t *testing.T) {
	terms := []content.GlossaryTerm{
		term("UTXO", "utxo", "An \"unspent\" output,\nper node."),
	}
	got := CrossLink("a", "Every UTXO counts.", terms)
	assert.Equal(t, `Every [UTXO](/glossary/utxo "An 'unspent' output, per node.") counts.`, got)
}

func TestCrossLink_MultipleTermsAllLinkedOnce(t *testing.T) {
	terms := []content.GlossaryTerm{
		term("mempool", "mempool", "Pending transactions."),
		term("halving", "halving", "The subsidy cut."),
	}
	body := "The mempool empties after the halving. The mempool refills."
	got := CrossLink("a", body, terms)
	assert.Equal(t, 1, strings.Count(got, "/glossary/mempool"))
	assert.Equal(t, 1, strings.Count(got, "/glossary/halving"))
}

func TestExclusions(t *testing.T) {
	assert.Equal(t, []string{"oracle"}, Exclusions("enterprise-treasury-integration"))
	assert.Empty(t, Exclusions("unlisted-article"))
}

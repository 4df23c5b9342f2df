package content

import (
	"sort"
	"strings"
)

// Domain is one of the six fixed taxonomy labels used to group glossary
// terms on the site. The keyword list is only consulted by SuggestDomains,
// an authoring-time aid, never on a request path.
type Domain struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Gradient string   `json:"gradient"`
	Keywords []string `json:"-"`
}

// Domains is the static taxonomy. Not file-backed.
var Domains = []Domain{
	{
		Name:     "Markets & Geopolitics",
		Icon:     "globe",
		Gradient: "from-amber-500 to-red-600",
		Keywords: []string{"market", "geopolitic", "sanction", "reserve", "trade", "sovereign"},
	},
	{
		Name:     "Finance & Economics",
		Icon:     "trending-up",
		Gradient: "from-emerald-500 to-teal-600",
		Keywords: []string{"inflation", "monetary", "currency", "asset", "yield", "treasury", "economy"},
	},
	{
		Name:     "Energy & Mining",
		Icon:     "zap",
		Gradient: "from-yellow-400 to-orange-600",
		Keywords: []string{"mining", "miner", "hashrate", "energy", "grid", "proof of work"},
	},
	{
		Name:     "Technology & Protocol",
		Icon:     "cpu",
		Gradient: "from-sky-500 to-indigo-600",
		Keywords: []string{"protocol", "node", "block", "transaction", "lightning", "wallet", "key"},
	},
	{
		Name:     "Law & Policy",
		Icon:     "scale",
		Gradient: "from-slate-500 to-slate-700",
		Keywords: []string{"regulation", "legal", "compliance", "tax", "custody", "etf"},
	},
	{
		Name:     "Philosophy & Society",
		Icon:     "book-open",
		Gradient: "from-purple-500 to-fuchsia-600",
		Keywords: []string{"freedom", "society", "trust", "history", "austrian", "time preference"},
	},
}

// categoryDomains back-fills domain labels for glossary terms whose
// frontmatter declares a category but no domains.
var categoryDomains = map[string][]string{
	"General":         {"Philosophy & Society"},
	"Monetary Theory": {"Finance & Economics"},
	"Mining":          {"Energy & Mining", "Technology & Protocol"},
	"Protocol":        {"Technology & Protocol"},
	"Markets":         {"Markets & Geopolitics", "Finance & Economics"},
	"Regulation":      {"Law & Policy"},
	"Security":        {"Technology & Protocol"},
}

// DomainsForCategory returns the fallback domain labels for a category.
// Unknown categories yield an empty (non-nil) slice.
func DomainsForCategory(category string) []string {
	if d, ok := categoryDomains[category]; ok {
		out := make([]string, len(d))
		copy(out, d)
		return out
	}
	return []string{}
}

// SuggestDomains scans a term name and definition against each domain's
// keyword list and returns matching domain names, most hits first. This is
// an offline authoring helper for the `suggest` command.
func SuggestDomains(term, definition string) []string {
	text := strings.ToLower(term + " " + definition)

	type hit struct {
		name  string
		count int
	}
	var hits []hit
	for _, d := range Domains {
		n := 0
		for _, kw := range d.Keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, hit{d.Name, n})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.name)
	}
	return names
}

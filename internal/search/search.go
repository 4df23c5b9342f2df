// Package search answers free-text queries against a flat list of static
// pages, articles, and glossary terms. The index is rebuilt from the content
// store on every call: no ranking, no stemming, no persistence.
package search

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/content"
)

// Item categories.
const (
	CategoryPage     = "Page"
	CategoryArticle  = "Article"
	CategoryGlossary = "Glossary"
)

// Item is the uniform projection every searchable thing flattens into.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
}

// staticPages is the fixed descriptor list for non-content pages. Listed
// first so they win insertion-order ties.
var staticPages = []Item{
	{ID: "page-home", Title: "Home", Description: "Ledger Hall Institute, independent bitcoin and markets research", URL: "/", Category: CategoryPage},
	{ID: "page-research", Title: "Research", Description: "Articles and long-form analysis", URL: "/research", Category: CategoryPage},
	{ID: "page-glossary", Title: "Glossary", Description: "Plain-language definitions of key terms", URL: "/glossary", Category: CategoryPage},
	{ID: "page-courses", Title: "Executive Courses", Description: "Courses for boards, executives, and allocators", URL: "/courses", Category: CategoryPage, Tags: []string{"education", "training"}},
	{ID: "page-speaking", Title: "Speaking", Description: "Keynotes and briefings", URL: "/speaking", Category: CategoryPage},
	{ID: "page-team", Title: "Team", Description: "Researchers and fellows", URL: "/team", Category: CategoryPage},
	{ID: "page-contact", Title: "Contact", Description: "Get in touch", URL: "/contact", Category: CategoryPage},
}

// Index answers queries over the static pages plus the live content store.
type Index struct {
	store *content.Store
	log   *zap.Logger
}

// NewIndex creates an Index over the given store.
func NewIndex(store *content.Store, log *zap.Logger) *Index {
	if log == nil {
		log = zap.NewNop()
	}
	return &Index{store: store, log: log}
}

// Build flattens static pages, published articles, and published glossary
// terms into one list, in that order. Content-source errors degrade to the
// static subset, so Build never fails.
func (ix *Index) Build() []Item {
	items := make([]Item, 0, len(staticPages))
	items = append(items, staticPages...)

	articles, err := ix.store.Articles()
	if err != nil {
		ix.log.Warn("search index: articles unavailable", zap.Error(err))
	}
	for _, a := range articles {
		items = append(items, Item{
			ID:          "article-" + a.Slug,
			Title:       a.Title,
			Description: a.Excerpt,
			URL:         "/research/" + a.Slug,
			Category:    CategoryArticle,
			Tags:        a.Tags,
		})
	}

	terms, err := ix.store.GlossaryTerms()
	if err != nil {
		ix.log.Warn("search index: glossary unavailable", zap.Error(err))
	}
	for _, t := range terms {
		items = append(items, Item{
			ID:          "glossary-" + t.Slug,
			Title:       t.Term,
			Description: t.ShortDefinition,
			URL:         "/glossary/" + t.Slug,
			Category:    CategoryGlossary,
			Tags:        t.Domains,
		})
	}

	return items
}

// Query returns every item whose title, description, any tag, or url
// contains the query, case-insensitively. Fields are OR'd. An empty query
// returns the whole index. Order is index order.
func (ix *Index) Query(q string) []Item {
	items := ix.Build()
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	if it.Description != "" && strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(it.URL), q)
}

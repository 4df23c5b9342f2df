package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerhall/site/internal/content"
)

func testStore(t *testing.T) *content.Store {
	t.Helper()
	dir := t.TempDir()
	write := func(kind, name, data string) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, kind), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, kind, name), []byte(data), 0o644))
	}
	write("articles", "halving-cycle.md", `---
title: The Halving Cycle
date: 2024-04-20
tags:
  - halving
  - markets
---
Supply issuance drops every four years.
`)
	write("articles", "mining-margins.md", `---
title: Mining Margins
date: 2024-03-01
---
Hashprice and energy costs.
`)
	write("glossary", "difficulty.md", `---
term: Difficulty
category: Mining
shortDefinition: How hard it is to find a valid block.
---
Adjusted every 2016 blocks.
`)
	return content.NewStore(dir, nil)
}

func TestBuild_Order(t *testing.T) {
	ix := NewIndex(testStore(t), nil)
	items := ix.Build()
	require.Len(t, items, len(staticPages)+3)

	// Static pages first, then articles newest first, then glossary terms.
	assert.Equal(t, "page-home", items[0].ID)
	assert.Equal(t, "article-halving-cycle", items[len(staticPages)].ID)
	assert.Equal(t, "article-mining-margins", items[len(staticPages)+1].ID)
	assert.Equal(t, "glossary-difficulty", items[len(staticPages)+2].ID)

	assert.Equal(t, "/research/halving-cycle", items[len(staticPages)].URL)
	assert.Equal(t, "/glossary/difficulty", items[len(staticPages)+2].URL)
}

func TestQuery_EmptyReturnsEverything(t *testing.T) {
	ix := NewIndex(testStore(t), nil)
	assert.Len(t, ix.Query(""), len(staticPages)+3)
	assert.Len(t, ix.Query("   "), len(staticPages)+3)
}

func TestQuery_TagOnlyMatch(t *testing.T) {
	ix := NewIndex(testStore(t), nil)

	// "markets" appears only in the article's tags, not its title or excerpt.
	var ids []string
	for _, it := range ix.Query("markets") {
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, "article-halving-cycle")
}

func TestQuery_CaseInsensitiveTitle(t *testing.T) {
	ix := NewIndex(testStore(t), nil)
	items := ix.Query("DIFFICULTY")
	require.Len(t, items, 1)
	assert.Equal(t, "glossary-difficulty", items[0].ID)
	assert.Equal(t, CategoryGlossary, items[0].Category)
}

func TestQuery_URLMatch(t *testing.T) {
	ix := NewIndex(testStore(t), nil)
	var ids []string
	for _, it := range ix.Query("/research/halving") {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"article-halving-cycle"}, ids)
}

func TestQuery_NoMatches(t *testing.T) {
	ix := NewIndex(testStore(t), nil)
	items := ix.Query("zzz-no-such-thing")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBuild_DegradesToStaticPages(t *testing.T) {
	// A store over an empty directory has no content sources at all.
	ix := NewIndex(content.NewStore(t.TempDir(), nil), nil)
	items := ix.Build()
	require.Len(t, items, len(staticPages))
	for _, it := range items {
		assert.Equal(t, CategoryPage, it.Category)
	}
}

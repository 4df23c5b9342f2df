package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Validate walks every record kind and returns human-readable warnings for
// anything the resolver would silently skip or default at request time:
// malformed frontmatter, missing titles, dangling author references, and
// glossary terms that end up with no domains. Used by `lhsite check` and the
// content watcher; never called on a request path.
func (s *Store) Validate() []string {
	var warnings []string

	for _, kind := range []string{articlesDir, glossaryDir, authorsDir} {
		if _, err := os.Stat(filepath.Join(s.dir, kind)); os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("%s: directory missing, pages will render empty", kind))
		}
	}

	authorSlugs := map[string]bool{}
	if authors, err := s.Authors(); err == nil {
		for _, a := range authors {
			authorSlugs[a.Slug] = true
		}
	}

	files, err := s.list(articlesDir)
	if err == nil {
		now := time.Now()
		for _, f := range files {
			name := filepath.Base(f)
			raw, readErr := os.ReadFile(f)
			if readErr != nil {
				warnings = append(warnings, fmt.Sprintf("articles/%s: %v", name, readErr))
				continue
			}
			var meta articleMeta
			body, parseErr := parseRecord(string(raw), &meta)
			if parseErr != nil {
				warnings = append(warnings, fmt.Sprintf("articles/%s: %v", name, parseErr))
				continue
			}
			a, normErr := normalizeArticle(slugFromPath(f), meta, body, now)
			if errors.Is(normErr, errMissingTitle) {
				warnings = append(warnings, fmt.Sprintf("articles/%s: missing title, record will be skipped", name))
				continue
			}
			if !defaultTrue(meta.Published) {
				continue
			}
			if a.Author != "Unknown" && !authorSlugs[a.Author] {
				if alias, ok := authorAliases[a.Author]; !ok || !authorSlugs[alias] {
					warnings = append(warnings, fmt.Sprintf("articles/%s: unknown author %q", name, a.Author))
				}
			}
		}
	}

	terms, err := s.GlossaryTerms()
	if err == nil {
		for _, t := range terms {
			if len(t.Domains) == 0 {
				warnings = append(warnings,
					fmt.Sprintf("glossary/%s: no domains and category %q has no mapping", t.Slug, t.Category))
			}
			if strings.TrimSpace(t.ShortDefinition) == "" {
				warnings = append(warnings,
					fmt.Sprintf("glossary/%s: empty shortDefinition, term will link without a tooltip", t.Slug))
			}
		}
	}

	return warnings
}

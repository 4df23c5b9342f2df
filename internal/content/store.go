package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Subdirectories of the content root, one per record kind.
const (
	articlesDir = "articles"
	glossaryDir = "glossary"
	authorsDir  = "authors"
)

// ErrSourceMissing is returned when a content subdirectory does not exist.
// Callers must treat it as a warning and render with zero records.
var ErrSourceMissing = errors.New("content source missing")

// ErrNotFound is returned for slugs that do not resolve to a published
// record. Unpublished records are not found as far as public callers know.
var ErrNotFound = errors.New("record not found")

// Store reads records from the content directory. It keeps no cache: every
// call re-reads the files, so concurrent readers never interact.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates a Store rooted at dir. A nil logger disables logging.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the content root directory.
func (s *Store) Dir() string { return s.dir }

// Articles returns all published articles, newest first.
func (s *Store) Articles() ([]Article, error) {
	files, err := s.list(articlesDir)
	if err != nil {
		return []Article{}, err
	}

	now := time.Now()
	out := make([]Article, 0, len(files))
	for _, f := range files {
		a, ok := s.loadArticle(f, now)
		if ok {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// ArticleBySlug resolves a single published article. The published filter is
// not bypassed: an unpublished slug is ErrNotFound.
func (s *Store) ArticleBySlug(slug string) (Article, error) {
	path, err := s.recordPath(articlesDir, slug)
	if err != nil {
		return Article{}, err
	}
	a, ok := s.loadArticle(path, time.Now())
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) loadArticle(path string, now time.Time) (Article, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("skipping unreadable article", zap.String("file", path), zap.Error(err))
		}
		return Article{}, false
	}

	var meta articleMeta
	body, err := parseRecord(string(raw), &meta)
	if err != nil {
		s.log.Warn("skipping malformed article", zap.String("file", path), zap.Error(err))
		return Article{}, false
	}
	if !defaultTrue(meta.Published) {
		return Article{}, false
	}

	a, err := normalizeArticle(slugFromPath(path), meta, body, now)
	if err != nil {
		s.log.Warn("skipping article", zap.String("file", path), zap.Error(err))
		return Article{}, false
	}
	return a, true
}

// GlossaryTerms returns all published glossary terms, alphabetical by term.
func (s *Store) GlossaryTerms() ([]GlossaryTerm, error) {
	files, err := s.list(glossaryDir)
	if err != nil {
		return []GlossaryTerm{}, err
	}

	out := make([]GlossaryTerm, 0, len(files))
	for _, f := range files {
		t, ok := s.loadTerm(f)
		if ok {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].Term), strings.ToLower(out[j].Term)
		if li != lj {
			return li < lj
		}
		return out[i].Term < out[j].Term
	})
	return out, nil
}

// TermBySlug resolves a single published glossary term.
func (s *Store) TermBySlug(slug string) (GlossaryTerm, error) {
	path, err := s.recordPath(glossaryDir, slug)
	if err != nil {
		return GlossaryTerm{}, err
	}
	t, ok := s.loadTerm(path)
	if !ok {
		return GlossaryTerm{}, ErrNotFound
	}
	return t, nil
}

func (s *Store) loadTerm(path string) (GlossaryTerm, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("skipping unreadable glossary term", zap.String("file", path), zap.Error(err))
		}
		return GlossaryTerm{}, false
	}

	var meta glossaryMeta
	body, err := parseRecord(string(raw), &meta)
	if err != nil {
		s.log.Warn("skipping malformed glossary term", zap.String("file", path), zap.Error(err))
		return GlossaryTerm{}, false
	}
	if !defaultTrue(meta.Published) {
		return GlossaryTerm{}, false
	}

	t, err := normalizeTerm(slugFromPath(path), meta, body)
	if err != nil {
		s.log.Warn("skipping glossary term", zap.String("file", path), zap.Error(err))
		return GlossaryTerm{}, false
	}
	return t, true
}

// Authors returns all published author bios, alphabetical by name.
func (s *Store) Authors() ([]Author, error) {
	files, err := s.list(authorsDir)
	if err != nil {
		return []Author{}, err
	}

	out := make([]Author, 0, len(files))
	for _, f := range files {
		a, ok := s.loadAuthor(f)
		if ok {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AuthorBySlug resolves a single published author.
func (s *Store) AuthorBySlug(slug string) (Author, error) {
	path, err := s.recordPath(authorsDir, slug)
	if err != nil {
		return Author{}, err
	}
	a, ok := s.loadAuthor(path)
	if !ok {
		return Author{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) loadAuthor(path string) (Author, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("skipping unreadable author", zap.String("file", path), zap.Error(err))
		}
		return Author{}, false
	}

	var meta authorMeta
	body, err := parseRecord(string(raw), &meta)
	if err != nil {
		s.log.Warn("skipping malformed author", zap.String("file", path), zap.Error(err))
		return Author{}, false
	}
	if !defaultTrue(meta.Published) {
		return Author{}, false
	}

	a, err := normalizeAuthor(slugFromPath(path), meta, body)
	if err != nil {
		s.log.Warn("skipping author", zap.String("file", path), zap.Error(err))
		return Author{}, false
	}
	return a, true
}

// list returns the markdown files of one content kind, sorted by filename so
// repeated calls over an unchanged store yield identical output.
func (s *Store) list(kind string) ([]string, error) {
	dir := filepath.Join(s.dir, kind)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("content source missing", zap.String("dir", dir))
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, dir)
		}
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// recordPath maps a slug to its file, rejecting slugs that would escape the
// content directory.
func (s *Store) recordPath(kind, slug string) (string, error) {
	if slug == "" || strings.ContainsAny(slug, "/\\") || strings.Contains(slug, "..") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, kind, slug+".md"), nil
}

func slugFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}

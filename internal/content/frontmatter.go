package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// errMissingTitle marks records without a title (or term, for glossary
// entries). Such records are skipped and logged, never fatal to the batch.
var errMissingTitle = errors.New("record has no title")

// stringList unmarshals a YAML sequence of strings. A scalar or mapping in
// its place is treated as absent rather than failing the whole record.
type stringList []string

func (s *stringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items []string
	if err := unmarshal(&items); err != nil {
		*s = nil
		return nil
	}
	*s = items
	return nil
}

// scalarString unmarshals any YAML scalar into a string, so that authors can
// write blockHeight: 840000 or date: 2024-04-20 without quotes.
type scalarString string

func (v *scalarString) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = scalarString(t)
	case time.Time:
		*v = scalarString(t.Format("2006-01-02"))
	default:
		*v = scalarString(fmt.Sprint(t))
	}
	return nil
}

type articleMeta struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Author      string       `yaml:"author"`
	Date        scalarString `yaml:"date"`
	BlockHeight scalarString `yaml:"blockHeight"`
	Excerpt     string       `yaml:"excerpt"`
	Tags        stringList   `yaml:"tags"`
	ReadTime    string       `yaml:"readTime"`
	Featured    bool         `yaml:"featured"`
	Published   *bool        `yaml:"published"`
	HeaderImage string       `yaml:"headerImage"`
}

type glossaryMeta struct {
	Term            string     `yaml:"term"`
	Category        string     `yaml:"category"`
	Domains         stringList `yaml:"domains"`
	ShortDefinition string     `yaml:"shortDefinition"`
	RelatedArticle  int        `yaml:"relatedArticle"`
	ReadTime        string     `yaml:"readTime"`
	Published       *bool      `yaml:"published"`
}

type authorMeta struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Role      string            `yaml:"role"`
	Bio       string            `yaml:"bio"`
	Avatar    string            `yaml:"avatar"`
	Social    map[string]string `yaml:"social"`
	Expertise stringList        `yaml:"expertise"`
	Published *bool             `yaml:"published"`
}

// parseRecord splits a raw markdown record into frontmatter and body.
// meta must be a pointer to one of the *Meta structs above.
func parseRecord(raw string, meta interface{}) (body string, err error) {
	rest, err := frontmatter.Parse(strings.NewReader(raw), meta)
	if err != nil {
		return "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return string(rest), nil
}

// defaultTrue resolves an optional published flag. Records are
// default-published: hiding one requires an explicit `published: false`.
func defaultTrue(v *bool) bool {
	return v == nil || *v
}

// normalizeArticle applies the defaulting rules for articles. now supplies
// the fallback publication date.
func normalizeArticle(slug string, meta articleMeta, body string, now time.Time) (Article, error) {
	if strings.TrimSpace(meta.Title) == "" {
		return Article{}, errMissingTitle
	}

	a := Article{
		ID:          meta.ID,
		Slug:        slug,
		Title:       meta.Title,
		Author:      meta.Author,
		Date:        string(meta.Date),
		BlockHeight: string(meta.BlockHeight),
		Excerpt:     meta.Excerpt,
		Tags:        meta.Tags,
		ReadTime:    meta.ReadTime,
		Featured:    meta.Featured,
		HeaderImage: meta.HeaderImage,
		Body:        body,
	}

	if a.ID == "" {
		a.ID = slug
	}
	if a.Author == "" {
		a.Author = "Unknown"
	}
	if a.Date == "" {
		a.Date = now.Format("2006-01-02")
	}
	if a.BlockHeight == "" {
		a.BlockHeight = "0"
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.ReadTime == "" {
		a.ReadTime = ReadTime(body)
	}
	if a.Excerpt == "" {
		a.Excerpt = Excerpt(body, excerptMaxLen)
	}
	return a, nil
}

// normalizeTerm applies the defaulting rules for glossary terms, including
// the category → domains back-fill for entries without explicit domains.
func normalizeTerm(slug string, meta glossaryMeta, body string) (GlossaryTerm, error) {
	if strings.TrimSpace(meta.Term) == "" {
		return GlossaryTerm{}, errMissingTitle
	}

	t := GlossaryTerm{
		Term:            meta.Term,
		Slug:            slug,
		Category:        meta.Category,
		Domains:         meta.Domains,
		ShortDefinition: meta.ShortDefinition,
		RelatedArticle:  meta.RelatedArticle,
		ReadTime:        meta.ReadTime,
		Body:            body,
	}

	if t.Category == "" {
		t.Category = "General"
	}
	if len(t.Domains) == 0 {
		t.Domains = DomainsForCategory(t.Category)
	}
	if t.ReadTime == "" {
		t.ReadTime = ShortReadTime(body)
	}
	return t, nil
}

// normalizeAuthor applies the defaulting rules for author bios.
func normalizeAuthor(slug string, meta authorMeta, body string) (Author, error) {
	if strings.TrimSpace(meta.Name) == "" {
		return Author{}, errMissingTitle
	}

	a := Author{
		ID:        meta.ID,
		Slug:      slug,
		Name:      meta.Name,
		Role:      meta.Role,
		Bio:       meta.Bio,
		Avatar:    meta.Avatar,
		Social:    meta.Social,
		Expertise: meta.Expertise,
	}

	if a.ID == "" {
		a.ID = slug
	}
	if a.Bio == "" {
		a.Bio = strings.TrimSpace(body)
	}
	if a.Expertise == nil {
		a.Expertise = []string{}
	}
	return a, nil
}

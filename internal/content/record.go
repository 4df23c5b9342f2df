// Package content loads markdown records (articles, glossary terms, authors)
// from the content directory, applies defaults, derives computed fields, and
// filters out unpublished records. Nothing is cached: every call re-reads
// the store, which is written out-of-band by content authors.
package content

// Article is a resolved research article.
type Article struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	BlockHeight string   `json:"blockHeight"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
	Featured    bool     `json:"featured"`
	HeaderImage string   `json:"headerImage,omitempty"`
	Body        string   `json:"-"`
}

// ArticleMeta is the listing projection of an Article (no body).
type ArticleMeta struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	BlockHeight string   `json:"blockHeight"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
	Featured    bool     `json:"featured"`
	HeaderImage string   `json:"headerImage,omitempty"`
}

// Meta returns the listing projection of the article.
func (a Article) Meta() ArticleMeta {
	return ArticleMeta{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Author:      a.Author,
		Date:        a.Date,
		BlockHeight: a.BlockHeight,
		Excerpt:     a.Excerpt,
		Tags:        a.Tags,
		ReadTime:    a.ReadTime,
		Featured:    a.Featured,
		HeaderImage: a.HeaderImage,
	}
}

// GlossaryTerm is a resolved glossary entry.
type GlossaryTerm struct {
	Term            string   `json:"term"`
	Slug            string   `json:"slug"`
	Category        string   `json:"category"`
	Domains         []string `json:"domains"`
	ShortDefinition string   `json:"shortDefinition"`
	RelatedArticle  int      `json:"relatedArticle,omitempty"`
	ReadTime        string   `json:"readTime"`
	Body            string   `json:"-"`
}

// Author is a resolved team member bio.
type Author struct {
	ID        string            `json:"id"`
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	Role      string            `json:"role"`
	Bio       string            `json:"bio"`
	Avatar    string            `json:"avatar,omitempty"`
	Social    map[string]string `json:"social,omitempty"`
	Expertise []string          `json:"expertise"`
}

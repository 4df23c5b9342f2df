package content

// authorAliases maps author slugs as they appear inside article frontmatter
// to the slug of the stored author record. Some older articles credit
// authors under an honorific slug that never existed as a record.
var authorAliases = map[string]string{
	"dr-elena-vasquez": "elena-vasquez",
	"dr-marcus-hale":   "marcus-hale",
}

// AuthorForArticle resolves the author referenced by an article. The direct
// slug is checked first, then the alias table. ErrNotFound means the
// reference is dangling.
func (s *Store) AuthorForArticle(ref string) (Author, error) {
	a, err := s.AuthorBySlug(ref)
	if err == nil {
		return a, nil
	}
	if alias, ok := authorAliases[ref]; ok {
		return s.AuthorBySlug(alias)
	}
	return Author{}, err
}

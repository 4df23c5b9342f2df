package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerhall/site/internal/config"
	"github.com/ledgerhall/site/internal/content"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [term-slug]",
		Short: "Suggest domains for glossary terms",
		Long: `Match glossary terms against the domain taxonomy's keyword lists and
print suggested domain assignments. An authoring aid: nothing is written.

Without arguments, every published term missing explicit domains is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			store := content.NewStore(cfg.Content.Dir, nil)

			if len(args) == 1 {
				term, err := store.TermBySlug(args[0])
				if err != nil {
					return fmt.Errorf("term %q: %w", args[0], err)
				}
				printSuggestion(term)
				return nil
			}

			terms, err := store.GlossaryTerms()
			if err != nil {
				return err
			}
			for _, t := range terms {
				printSuggestion(t)
			}
			return nil
		},
	}
	return cmd
}

func printSuggestion(t content.GlossaryTerm) {
	suggested := content.SuggestDomains(t.Term, t.ShortDefinition+" "+t.Body)
	current := strings.Join(t.Domains, ", ")
	if current == "" {
		current = "(none)"
	}
	if len(suggested) == 0 {
		fmt.Printf("%-30s current: %-40s no keyword matches\n", t.Slug, current)
		return
	}
	fmt.Printf("%-30s current: %-40s suggested: %s\n", t.Slug, current, strings.Join(suggested, ", "))
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerhall/site/internal/config"
	"github.com/ledgerhall/site/internal/content"
	"github.com/ledgerhall/site/internal/watcher"
)

func checkCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the content directory",
		Long: `Resolve every article, glossary term, and author and report anything
the server would silently skip or default: malformed frontmatter, missing
titles, dangling author references, unmapped glossary categories.

Exits non-zero when warnings are found, so it can gate CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			store := content.NewStore(cfg.Content.Dir, nil)
			warnings := store.Validate()
			for _, msg := range warnings {
				fmt.Fprintf(os.Stderr, "  [WARN] %s\n", msg)
			}

			if watch {
				log, err := newLogger(cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer log.Sync()
				return watcher.Watch(context.Background(), content.NewStore(cfg.Content.Dir, log), log)
			}

			if len(warnings) > 0 {
				return fmt.Errorf("%d content warning(s)", len(warnings))
			}
			fmt.Println("content ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep watching and re-validate on change")
	return cmd
}

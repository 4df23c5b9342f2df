package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/config"
	"github.com/ledgerhall/site/internal/content"
	"github.com/ledgerhall/site/internal/mailer"
	"github.com/ledgerhall/site/internal/newsletter"
	"github.com/ledgerhall/site/internal/storage"
	"github.com/ledgerhall/site/internal/watcher"
	"github.com/ledgerhall/site/internal/web"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site API",
		Long: `Start the HTTP server for the content API and form endpoints.

Examples:
  lhsite serve                    # Serve on the configured address
  lhsite serve --addr :9090       # Override the listen address
  lhsite serve --watch            # Also re-validate content on change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			store := content.NewStore(cfg.Content.Dir, log)

			// Inquiry storage is best-effort: without a working backend the
			// server still runs, inquiries just aren't persisted.
			inquiries := openInquiryStore(cfg, log)
			if inquiries != nil {
				defer inquiries.Close()
			}

			mail := mailer.New(cfg.SMTP, log)
			news := newsletter.NewClient(cfg.Newsletter.BaseURL, cfg.Newsletter.APIKey)

			if watch {
				go func() {
					if err := watcher.Watch(context.Background(), store, log); err != nil && err != context.Canceled {
						log.Warn("content watcher stopped", zap.Error(err))
					}
				}()
			}

			srv := web.NewServer(store, inquiries, mail, news, log)
			return web.Serve(cfg.Server.Addr, srv)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate content on change")
	return cmd
}

// openInquiryStore picks Postgres when a DATABASE_URL is configured, the
// local SQLite file otherwise. Returns nil when neither can be opened.
func openInquiryStore(cfg *config.Config, log *zap.Logger) storage.InquiryStore {
	if cfg.Database.URL != "" {
		st, err := storage.NewPostgres(cfg.Database.URL)
		if err != nil {
			log.Warn("postgres unavailable, inquiries will not be persisted", zap.Error(err))
			return nil
		}
		log.Info("inquiry storage: postgres")
		return st
	}

	st, err := storage.NewSQLite(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn("sqlite unavailable, inquiries will not be persisted", zap.Error(err))
		return nil
	}
	log.Info("inquiry storage: sqlite", zap.String("path", cfg.Database.SQLitePath))
	return st
}

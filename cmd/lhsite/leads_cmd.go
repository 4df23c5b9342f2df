package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/config"
)

func leadsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List recent inquiries with their triage scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			store := openInquiryStore(cfg, zap.NewNop())
			if store == nil {
				return fmt.Errorf("no inquiry storage available")
			}
			defer store.Close()

			inquiries, err := store.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(inquiries) == 0 {
				fmt.Println("no inquiries recorded")
				return nil
			}

			for _, inq := range inquiries {
				fmt.Printf("%s  score %3d  %-10s %-25s %s\n",
					inq.CreatedAt.Format("2006-01-02 15:04"), inq.Score,
					inq.ServiceType, inq.Email, inq.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of inquiries to list")
	return cmd
}

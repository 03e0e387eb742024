package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"momgyeot-ai/internal/app"
)

func newStatsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show conversation and knowledge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			stats, err := a.Admin.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				return printJSON(out, stats)
			}
			fmt.Fprintf(out, "Knowledge records:   %d\n", stats.TotalKnowledge)
			fmt.Fprintf(out, "Conversations:       %d\n", stats.TotalConversations)
			fmt.Fprintf(out, "  today:             %d\n", stats.TodayConversations)
			fmt.Fprintf(out, "  last 7 days:       %d\n", stats.WeekConversations)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text or json)")

	return cmd
}

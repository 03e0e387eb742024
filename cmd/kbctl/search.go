package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"momgyeot-ai/internal/app"
	"momgyeot-ai/internal/rag"
)

func newSearchCmd() *cobra.Command {
	var (
		persona   string
		category  string
		limit     int
		minLength int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a knowledge search",
		Long:  "Run the same keyword retrieval the API uses and print the ranked records",
		Args:  cobra.MaximumNArgs(1),
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

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			result, err := a.Engine.Search(ctx, rag.SearchRequest{
				Query:            query,
				Persona:          persona,
				Category:         category,
				Limit:            limit,
				MinContentLength: minLength,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				return printJSON(out, result)
			}

			if len(result.ExpandedKeywords) > 0 {
				fmt.Fprintf(out, "Expanded: %s\n", strings.Join(result.ExpandedKeywords, ", "))
			}
			if len(result.Records) == 0 {
				fmt.Fprintln(out, "No results")
				return nil
			}
			for i, r := range result.Records {
				fmt.Fprintf(out, "%d. [%s] %s (score %d)\n", i+1, r.ID, r.Title, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&persona, "persona", "", "Persona name or alias (prep, preg, parent)")
	cmd.Flags().StringVar(&category, "category", "", "Restrict to an exact category")
	cmd.Flags().IntVarP(&limit, "limit", "n", rag.DefaultLimit, "Maximum number of results")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Drop records with shorter content")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text or json)")

	return cmd
}

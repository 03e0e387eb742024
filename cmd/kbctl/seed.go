package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momgyeot-ai/internal/app"
	"momgyeot-ai/internal/importer"
)

func newSeedCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "seed <path>...",
		Short: "Import knowledge files into the record store",
		Long: "Import YAML or JSON record lists and markdown documents into the record store.\n" +
			"Directories are scanned recursively. Records replace existing ones with the same id.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := app.OpenStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
			}
			if store == nil {
				return errors.New("record store not configured")
			}
			defer func() {
				_ = store.Close()
			}()

			report, importErr := importer.New(store).Import(ctx, args...)
			if output == "json" {
				if err := printJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %d files (%d failed)\n", report.Records, report.Files, report.Failed)
			}
			return importErr
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text or json)")

	return cmd
}

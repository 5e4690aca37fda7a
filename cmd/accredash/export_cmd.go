package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"accredash/internal/export"
)

func newExportRosterCmd(envFiles *[]string) *cobra.Command {
	var (
		orgID string
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "export-roster",
		Short: "Export an organization's roster to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			return withEnv(cmd.Context(), *envFiles, func(ctx context.Context, e *env) error {
				store := e.exports
				if dir != "" {
					s, err := export.NewStore(dir)
					if err != nil {
						return err
					}
					store = s
				}
				org, err := e.client.GetOrganization(ctx, orgID)
				if err != nil {
					return err
				}
				rec, err := e.client.GetRoster(ctx, orgID)
				if err != nil {
					return err
				}
				path, err := store.WriteRoster(org.DisplayName(), rec.Members)
				if err != nil {
					return fmt.Errorf("export %s: %w", org.DisplayName(), err)
				}
				e.logger.WithField("path", path).Info("roster exported")
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "organization ID")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default ACCREDASH_EXPORT_DIR)")
	return cmd
}

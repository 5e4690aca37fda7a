package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"accredash/internal/analytics"
	"accredash/internal/ui/textutil"
)

func newStatsCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print accomplishment aggregates across all organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), *envFiles, func(ctx context.Context, e *env) error {
				bundles, err := e.client.ListAccomplishments(ctx)
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), analytics.Summarize(bundles))
				return nil
			})
		},
	}
}

func printSummary(w io.Writer, s analytics.Summary) {
	switch s.State() {
	case analytics.StateNoOrganizations:
		fmt.Fprintln(w, "No organizations have been registered yet.")
		return
	case analytics.StateNoAccomplishments:
		fmt.Fprintf(w, "%d organizations, no accomplishments logged yet.\n", s.Organizations)
		return
	}
	fmt.Fprintf(w, "%d organizations · %d accomplishments · %d points\n",
		s.Organizations, s.Accomplishments, s.TotalPoints)
	printCounts(w, "By category", s.ByCategory)
	printCounts(w, "Points by organization", s.PointsByOrganization)
	printCounts(w, "Documents by label", s.DocumentsByLabel)
	printCounts(w, "Organizations by points", s.Histogram)
}

func printCounts(w io.Writer, title string, counts []analytics.Count) {
	fmt.Fprintf(w, "\n%s\n", title)
	labels := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
	}
	lw := textutil.LabelWidth(labels, 24)
	top := analytics.Max(counts)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s %4d %s\n", textutil.PadRight(c.Label, lw), c.Value, textutil.Bar(c.Value, top, 30))
	}
}

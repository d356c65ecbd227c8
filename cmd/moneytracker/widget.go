package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moneytracker/internal/kvstore"
	"moneytracker/internal/widget"
)

var flagJSON bool

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Print the home-screen widget summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		kv, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()
		return writeWidget(cmd.Context(), kv, cmd.OutOrStdout(), flagJSON)
	},
}

func init() {
	widgetCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the summary as JSON")
	rootCmd.AddCommand(widgetCmd)
}

func writeWidget(ctx context.Context, kv kvstore.Store, w io.Writer, asJSON bool) error {
	summary, err := widget.NewReader(kv).Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintf(w, "%s\n", summary.ListName)
	fmt.Fprintf(w, "  Last 30 days: %.2f", summary.Spent30Days)
	if summary.BudgetLimit != nil {
		fmt.Fprintf(w, " of %.2f (%.0f%%, %s)", *summary.BudgetLimit, summary.Progress*100, *summary.Status)
	}
	fmt.Fprintln(w)

	if len(summary.Categories) > 0 {
		fmt.Fprintln(w, "  Categories:")
		for _, c := range summary.Categories {
			fmt.Fprintf(w, "    %-16s %8.2f / %8.2f  %s\n", c.Name, c.Spent, c.Limit, c.Status)
		}
	}
	if len(summary.Cards) > 0 {
		fmt.Fprintln(w, "  Cards:")
		for _, c := range summary.Cards {
			fmt.Fprintf(w, "    %-16s %8.2f left of %8.2f  %s\n", c.Name, c.Remaining, c.Limit, c.Status)
		}
	}
	return nil
}

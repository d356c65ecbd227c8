package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moneytracker/internal/export"
	"moneytracker/internal/kvstore"
	"moneytracker/internal/ledger"
	"moneytracker/internal/snapshot"
)

var (
	flagList   string
	flagWindow string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses as CSV",
	Long:  "Export expenses as CSV, newest first. --list takes a list id or name; omit it to export every list.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		kv, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		out := cmd.OutOrStdout()
		if flagOutput != "" {
			f, err := os.Create(flagOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		total, err := writeExport(cmd.Context(), kv, out, flagList, flagWindow, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Total: %s\n", total)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagList, "list", "l", "", "List id or name")
	exportCmd.Flags().StringVarP(&flagWindow, "window", "w", "all", "Window: 7d, 30d or all")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// writeExport writes the matching expenses to w and returns their total.
func writeExport(ctx context.Context, kv kvstore.Store, w io.Writer, list, window string, now time.Time) (string, error) {
	win, err := ledger.ParseWindow(window)
	if err != nil {
		return "", err
	}

	st, err := snapshot.Load(ctx, kv)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}

	filter := ledger.Filter{Since: win.Since(now)}
	if list != "" {
		listID, ok := resolveList(st, list)
		if !ok {
			return "", fmt.Errorf("list %q not found", list)
		}
		filter.ListID = listID
	}

	rows := export.Rows(st, filter)
	if err := export.Write(w, rows); err != nil {
		return "", err
	}
	total, err := export.Total(rows)
	if err != nil {
		return "", err
	}
	return total.StringFixed(2), nil
}

// resolveList matches by id first, then by case-insensitive name.
func resolveList(st *snapshot.State, list string) (string, bool) {
	if l := st.List(list); l != nil {
		return l.ID, true
	}
	for _, l := range st.Lists {
		if strings.EqualFold(l.Name, list) {
			return l.ID, true
		}
	}
	return "", false
}

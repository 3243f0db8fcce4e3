package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alpkeskin/gotoon"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aparfeno/smartdirs/internal/config"
	"github.com/aparfeno/smartdirs/internal/dirlog"
	"github.com/aparfeno/smartdirs/internal/namer"
)

var (
	historyToday bool
	historySince string
	historyLimit int
	historyJSON  bool
	historyToon  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the directory creation log",
	Long: `List logged directory creations, newest first.

Examples:
  smartdirs history
  smartdirs history --today
  smartdirs history --since 2025-05-01 --limit 10
  smartdirs history --json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyToday, "today", false, "Show only today's creations")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Show creations since date (YYYY-MM-DD)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most this many rows (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	historyCmd.Flags().BoolVar(&historyToon, "toon", false, "Output in LLM-friendly toon format")
}

func runHistory(cmd *cobra.Command, args []string) error {
	settings := config.Load(appViper)
	logPath := settings.LogPath()
	if logPath == "" {
		return fmt.Errorf("no log_dir configured (set log_dir in %s)", config.DefaultFileName)
	}

	records, err := dirlog.ReadAll(appFS, logPath)
	if err != nil {
		return fmt.Errorf("failed to read creation log: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No directory creations logged")
		return nil
	}

	loc, err := namer.ResolveLocation(settings.Timezone)
	if err != nil {
		return err
	}

	if historySince != "" {
		since, err := time.ParseInLocation("2006-01-02", historySince, loc)
		if err != nil {
			return fmt.Errorf("invalid --since date format (use YYYY-MM-DD): %w", err)
		}
		records = filterRecords(records, loc, func(t time.Time) bool {
			return !t.Before(since)
		})
	}

	if historyToday {
		today := time.Now().In(loc).Format("2006-01-02")
		records = filterRecords(records, loc, func(t time.Time) bool {
			return t.Format("2006-01-02") == today
		})
	}

	// Newest first; the log itself is in creation order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if historyLimit > 0 && len(records) > historyLimit {
		records = records[:historyLimit]
	}

	if len(records) == 0 {
		fmt.Println("No creations match the filter criteria")
		return nil
	}

	if historyJSON {
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if historyToon {
		output, err := gotoon.Encode(records)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Printf("Found %d creation(s):\n\n", len(records))
	for _, r := range records {
		fmt.Printf("  %s\n", r.Directory)
		fmt.Printf("    Created: %s\n", r.Timestamp)
		fmt.Printf("    Path:    %s\n", r.Path)
		fmt.Println()
	}

	return nil
}

// filterRecords keeps rows whose timestamp parses and satisfies keep.
func filterRecords(records []dirlog.Record, loc *time.Location, keep func(time.Time) bool) []dirlog.Record {
	var out []dirlog.Record
	for _, r := range records {
		t, err := time.ParseInLocation(dirlog.TimestampLayout, r.Timestamp, loc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping row with unparseable timestamp %q\n", r.Timestamp)
			continue
		}
		if keep(t) {
			out = append(out, r)
		}
	}
	return out
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aparfeno/smartdirs/internal/config"
	"github.com/aparfeno/smartdirs/internal/namer"
	"github.com/aparfeno/smartdirs/internal/smartdirs"
)

var (
	createParent     string
	createDate       bool
	createTime       bool
	createDateFormat string
	createTimeFormat string
	createSeconds    bool
	createTimezone   string
	createSeparator  string
	createSuffix     bool
)

var createCmd = &cobra.Command{
	Use:   "create <base-name>",
	Short: "Create the next numbered directory for a base name",
	Long: `Create a directory named after the base name, prefixed with the smallest
sequence number not already used by a sibling entry, and optionally suffixed
with the current date and time in the configured timezone.

The creation is appended to {log_dir}/smartdirs.log when log_dir is set. A
failed log write is reported as a warning; the directory stands either way.

Examples:
  smartdirs create data
  smartdirs create data --date --time --timezone America/New_York
  smartdirs create export --date --date-format %Y%m%d --suffix`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createParent, "parent", ".", "Parent directory for the new directory")
	createCmd.Flags().BoolVar(&createDate, "date", false, "Append the current date to the name")
	createCmd.Flags().BoolVar(&createTime, "time", false, "Append the current time to the name")
	createCmd.Flags().StringVar(&createDateFormat, "date-format", "", "Date format directives (default %Y-%m-%d)")
	createCmd.Flags().StringVar(&createTimeFormat, "time-format", "", "Time format directives (default %I:%M%p)")
	createCmd.Flags().BoolVar(&createSeconds, "seconds", false, "Include seconds in the time part")
	createCmd.Flags().StringVar(&createTimezone, "timezone", "", "IANA timezone for date/time parts (default from config)")
	createCmd.Flags().StringVar(&createSeparator, "separator", "-", "Separator between name parts")
	createCmd.Flags().BoolVar(&createSuffix, "suffix", false, "Place the sequence number after the name instead of before")
}

func runCreate(cmd *cobra.Command, args []string) error {
	settings := config.Load(appViper)
	if createSeconds {
		settings.WithSeconds = true
	}

	position := namer.Prefix
	if createSuffix {
		position = namer.Suffix
	}

	creator := smartdirs.New(appFS, namer.SystemClock(), settings, logger)
	result, err := creator.Create(smartdirs.Options{
		BaseName:   args[0],
		ParentDir:  createParent,
		UseDate:    createDate,
		UseTime:    createTime,
		DateFormat: createDateFormat,
		TimeFormat: createTimeFormat,
		Timezone:   createTimezone,
		Separator:  createSeparator,
		Position:   position,
	})
	if err != nil {
		return err
	}

	if result.LogErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: directory created but not logged: %v\n", result.LogErr)
	}

	fmt.Println(result.Path)
	return nil
}

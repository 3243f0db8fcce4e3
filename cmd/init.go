package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aparfeno/smartdirs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default smartdirs config file",
	Long: `Write a commented default config to ~/.smartdirs.ini.

An existing config file is left untouched.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

const defaultConfig = `[smartdirs]
; IANA timezone used for date/time name parts and log timestamps.
; Empty means the process-local timezone.
timezone =

; Include seconds in the time part (8:08:32PM instead of 8:08PM).
time_format_with_seconds = false

; Directory for smartdirs.log. Empty disables creation logging.
log_dir =
`

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	configPath := filepath.Join(home, config.DefaultFileName)

	exists, err := afero.Exists(appFS, configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	if err := afero.WriteFile(appFS, configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("✓ Created default config: %s\n", configPath)
	return nil
}

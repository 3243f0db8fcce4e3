// Package config loads smartdirs settings from the INI config file into an
// explicit Settings struct. Nothing here holds process-wide state; callers
// build a viper instance, extract Settings, and pass them along.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aparfeno/smartdirs/internal/dirlog"
)

// Section is the INI section all smartdirs keys live under.
const Section = "smartdirs"

// DefaultFileName is the config file looked up in the home directory.
const DefaultFileName = ".smartdirs.ini"

// Settings carries the configuration consumed by the Creator.
type Settings struct {
	// Timezone is an IANA zone name; empty means the process-local zone.
	Timezone string
	// WithSeconds includes seconds in default-formatted time parts.
	WithSeconds bool
	// LogDir is where smartdirs.log lives; empty disables creation logging.
	LogDir string
}

// LogPath returns the full log file path, or "" when logging is disabled.
func (s Settings) LogPath() string {
	if s.LogDir == "" {
		return ""
	}
	return filepath.Join(s.LogDir, dirlog.FileName)
}

// NewViper returns a viper instance configured for the smartdirs INI file.
// Search order when configFile is empty: $HOME/.smartdirs.ini. A missing
// file is not an error; defaults apply.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(Section+".timezone", "")
	v.SetDefault(Section+".time_format_with_seconds", false)
	v.SetDefault(Section+".log_dir", "")

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("ini")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return v, nil
	}

	v.SetConfigName(".smartdirs")
	v.SetConfigType("ini")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, err
	}

	return v, nil
}

// Load extracts Settings from a viper instance, expanding a leading ~ in
// log_dir.
func Load(v *viper.Viper) Settings {
	return Settings{
		Timezone:    v.GetString(Section + ".timezone"),
		WithSeconds: v.GetBool(Section + ".time_format_with_seconds"),
		LogDir:      expandHome(v.GetString(Section + ".log_dir")),
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

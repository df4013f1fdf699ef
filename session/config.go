// Package session: YAML configuration for the solve loop.
package session

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds session settings loaded from YAML, with log-file knobs for
// the executable's rotating output.
type Config struct {
	// Address is the puzzle endpoint: "host:port" for TCP,
	// a full "ws://..." URL for WebSocket.
	Address string `yaml:"address"`
	// Transport selects the wire transport: "tcp" (default) or "ws".
	Transport string `yaml:"transport"`
	// CellWidth is the tag width of the wire format.
	CellWidth int `yaml:"cell_width"`
	// WinBanner marks the final congratulation round from the server.
	WinBanner string `yaml:"win_banner"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	// Level is a logrus level name; empty means "info".
	Level string `yaml:"level"`
	// FilePath, when set, mirrors logs to a rotating file.
	FilePath string `yaml:"file_path"`
	// FileMaxSizeMB caps a single log file before rotation.
	FileMaxSizeMB int `yaml:"file_max_size_mb"`
	// FileMaxBackups caps how many rotated files are kept.
	FileMaxBackups int `yaml:"file_max_backups"`
}

// DefaultConfig returns the settings of the original puzzle endpoint.
func DefaultConfig() Config {
	return Config{
		Address:   "tasks.open.kksctf.ru:31397",
		Transport: "tcp",
		CellWidth: DefaultCellWidth,
		WinBanner: "Gratz",
		Log: LogConfig{
			Level:          "info",
			FileMaxSizeMB:  10,
			FileMaxBackups: 3,
		},
	}
}

// LoadConfig reads a YAML config file, overlaying it on DefaultConfig.
// A missing file is not an error: defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

package calc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains interactive-mode settings, loaded from an optional YAML rc
// file. Batch behavior is not configurable.
type Config struct {
	// Prompt shown before each interactive input line.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where interactive history is loaded from and saved to.
	// An empty value disables history persistence.
	HistoryFile string `yaml:"history-file"`
}

func defaultConfig() Config {
	cfg := Config{Prompt: "polyc> "}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".polyc_history")
	}
	return cfg
}

func defaultRCPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "polyc", "rc.yaml")
}

// loadConfig reads the rc file at path, or the default rc path if path is
// empty. A missing file is not an error; a malformed one is reported to
// stderr and ignored.
func loadConfig(path string, stderr io.Writer) Config {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultRCPath()
	}
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			fmt.Fprintln(stderr, "Warning: cannot read rc file:", err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(stderr, "Warning: malformed rc file %v: %v\n", path, err)
		return defaultConfig()
	}
	return cfg
}

package calc

import (
	"path/filepath"
	"strings"
	"testing"

	"src.polyc.dev/pkg/must"
	"src.polyc.dev/pkg/testutil"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	must.WriteFile(path, testutil.Dedent(`
		prompt: "% "
		history-file: /tmp/hist
		`))

	var stderr strings.Builder
	cfg := loadConfig(path, &stderr)
	if cfg.Prompt != "% " {
		t.Errorf("got prompt %q, want %q", cfg.Prompt, "% ")
	}
	if cfg.HistoryFile != "/tmp/hist" {
		t.Errorf("got history file %q, want /tmp/hist", cfg.HistoryFile)
	}
	if stderr.Len() > 0 {
		t.Errorf("got warnings %q, want none", stderr.String())
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	must.WriteFile(path, "prompt: \"> \"\n")

	var stderr strings.Builder
	cfg := loadConfig(path, &stderr)
	if cfg.Prompt != "> " {
		t.Errorf("got prompt %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.HistoryFile != defaultConfig().HistoryFile {
		t.Errorf("got history file %q, want default", cfg.HistoryFile)
	}
}

func TestLoadConfig_MissingExplicitFileWarns(t *testing.T) {
	var stderr strings.Builder
	cfg := loadConfig(filepath.Join(t.TempDir(), "nonexistent"), &stderr)
	if cfg != defaultConfig() {
		t.Errorf("got config %v, want defaults", cfg)
	}
	if !strings.Contains(stderr.String(), "cannot read rc file") {
		t.Errorf("got warnings %q, want read warning", stderr.String())
	}
}

func TestLoadConfig_MalformedFileWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.yaml")
	must.WriteFile(path, "prompt: [unterminated\n")

	var stderr strings.Builder
	cfg := loadConfig(path, &stderr)
	if cfg != defaultConfig() {
		t.Errorf("got config %v, want defaults", cfg)
	}
	if !strings.Contains(stderr.String(), "malformed rc file") {
		t.Errorf("got warnings %q, want malformed warning", stderr.String())
	}
}

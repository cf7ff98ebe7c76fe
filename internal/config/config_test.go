package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bethropolis/slices/internal/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

var ignoreLoggerInternals = cmpopts.IgnoreUnexported(logger.Config{})

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(NewDefaultConfig(), res.Config, ignoreLoggerInternals); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if res.Path != path {
		t.Fatalf("path: got %q, want %q", res.Path, path)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
log_file_path = "-"
disabled_tags = ["buffer"]

[demo]
text = "NoSpacesHere"
graphemes = true
`)
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := NewDefaultConfig()
	want.Logger.LogLevel = "debug"
	want.Logger.LogFilePath = "-"
	want.Logger.DisabledTags = []string{"buffer"}
	want.Demo.Text = "NoSpacesHere"
	want.Demo.Graphemes = true
	if diff := cmp.Diff(want, res.Config, ignoreLoggerInternals); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if len(res.Undecoded) != 0 {
		t.Fatalf("unexpected undecoded keys: %v", res.Undecoded)
	}
}

func TestLoadConfig_EmptyTextIsKept(t *testing.T) {
	path := writeConfig(t, "[demo]\ntext = \"\"\n")
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Demo.Text != "" {
		t.Fatalf("text: got %q, want empty", res.Config.Demo.Text)
	}
}

func TestLoadConfig_ReportsUndecodedKeys(t *testing.T) {
	path := writeConfig(t, "[demo]\ntext = \"a b\"\ncolour = \"red\"\n")
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"demo.colour"}, res.Undecoded); diff != "" {
		t.Fatalf("undecoded mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "[demo\ntext = ")
	_, err := LoadConfig(path, nil)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfig_InvalidLevelFallsBack(t *testing.T) {
	path := writeConfig(t, "[logger]\nlog_level = \"loud\"\n")
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := res.Config.Logger.LogLevel, "info"; got != want {
		t.Fatalf("log level: got %q, want %q", got, want)
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[logger]\nlog_level = \"warn\"\n\n[demo]\ntext = \"from file\"\n")

	var flags Flags
	rest, err := flags.ParseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-config", path,
		"-text", "from flag",
		"-copy",
		"-log-tags", "demo, buffer,",
		"extra",
	})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if diff := cmp.Diff([]string{"extra"}, rest); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}

	res, err := LoadConfig(*flags.ConfigFilePath, &flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Demo.Text != "from flag" {
		t.Fatalf("text: got %q, want %q", cfg.Demo.Text, "from flag")
	}
	if !cfg.Demo.CopyFirstWord {
		t.Fatalf("expected copy enabled by flag")
	}
	if cfg.Logger.LogLevel != "warn" {
		t.Fatalf("unset -loglevel must keep file value, got %q", cfg.Logger.LogLevel)
	}
	if diff := cmp.Diff([]string{"demo", "buffer"}, cfg.Logger.EnabledTags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitCommaList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: " , ,", want: nil},
		{in: "a", want: []string{"a"}},
		{in: " a , b ,c", want: []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, splitCommaList(tc.in)); diff != "" {
			t.Fatalf("splitCommaList(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

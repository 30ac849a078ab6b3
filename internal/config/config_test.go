package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
max_diagnostics = 64
exclude = ["obj", "bin", "*.g.cs"]
assume_unchecked = true
jobs = 4

[output]
format = "json"
color = "off"
path_mode = "relative"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Check.MaxDiagnostics != 64 || !cfg.Check.AssumeUnchecked || cfg.Check.Jobs != 4 {
		t.Errorf("check = %+v", cfg.Check)
	}
	if len(cfg.Check.Exclude) != 3 || cfg.Check.Exclude[2] != "*.g.cs" {
		t.Errorf("exclude = %v", cfg.Check.Exclude)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" || cfg.Output.PathMode != "relative" {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadFileDefaultsAreZero(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Check.MaxDiagnostics != 0 || cfg.Check.AssumeUnchecked || len(cfg.Check.Exclude) != 0 {
		t.Errorf("empty manifest must decode to zero config, got %+v", cfg)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown key", "[check]\nmax_diags = 1\n"},
		{"negative max", "[check]\nmax_diagnostics = -1\n"},
		{"negative jobs", "[check]\njobs = -2\n"},
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"bad color", "[output]\ncolor = \"maybe\"\n"},
		{"bad path mode", "[output]\npath_mode = \"full\"\n"},
		{"broken toml", "[check\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tc.content)
			if _, err := LoadFile(path); err == nil {
				t.Errorf("LoadFile accepted %q", tc.content)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\njobs = 2\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("path = %q", path)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest in an empty temp dir")
	}
}

func TestLoadReportsRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\nexclude = [\"obj\"]\n")
	nested := filepath.Join(root, "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	if len(m.Config.Check.Exclude) != 1 {
		t.Errorf("config = %+v", m.Config)
	}
}

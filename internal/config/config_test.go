package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pablasso/tasktree/internal/workspace"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SavesDir != DefaultSavesDir {
		t.Errorf("SavesDir: got %q, want %q", cfg.SavesDir, DefaultSavesDir)
	}
	if cfg.SortMode() != workspace.SortByStatusThenPriority {
		t.Errorf("SortMode: got %q", cfg.SortMode())
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Level: got %v, want info", cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv(EnvSavesDir, "")

	cfg, err := load("", t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source: got %q, want empty", cfg.Source)
	}
	if cfg.SavesDir != DefaultSavesDir {
		t.Errorf("SavesDir: got %q", cfg.SavesDir)
	}
}

func TestLoad_Lookup(t *testing.T) {
	t.Setenv(EnvSavesDir, "")

	t.Run("tasktree.toml wins over dotfile", func(t *testing.T) {
		workDir := t.TempDir()
		writeFile(t, filepath.Join(workDir, "tasktree.toml"), `saves_dir = "plain"`)
		writeFile(t, filepath.Join(workDir, ".tasktree.toml"), `saves_dir = "dot"`)

		cfg, err := load("", workDir, t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SavesDir != "plain" {
			t.Errorf("SavesDir: got %q, want plain", cfg.SavesDir)
		}
	})

	t.Run("dotfile", func(t *testing.T) {
		workDir := t.TempDir()
		writeFile(t, filepath.Join(workDir, ".tasktree.toml"), `saves_dir = "dot"`)

		cfg, err := load("", workDir, t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SavesDir != "dot" {
			t.Errorf("SavesDir: got %q, want dot", cfg.SavesDir)
		}
	})

	t.Run("user config dir", func(t *testing.T) {
		userDir := t.TempDir()
		path := filepath.Join(userDir, "tasktree", "config.toml")
		writeFile(t, path, `default_sort = "priority"`)

		cfg, err := load("", t.TempDir(), userDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Source != path {
			t.Errorf("Source: got %q, want %q", cfg.Source, path)
		}
		if cfg.SortMode() != workspace.SortByPriority {
			t.Errorf("SortMode: got %q, want priority", cfg.SortMode())
		}
		if cfg.SavesDir != DefaultSavesDir {
			t.Errorf("unset keys should keep defaults, got SavesDir %q", cfg.SavesDir)
		}
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv(EnvSavesDir, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "saves_dir = \"elsewhere\"\ndefault_sort = \"status\"\nlog_level = \"debug\"\n")
	// An implicit file in the work dir is ignored when a path is given.
	writeFile(t, filepath.Join(dir, "tasktree.toml"), `saves_dir = "ignored"`)

	cfg, err := load(path, dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SavesDir != "elsewhere" {
		t.Errorf("SavesDir: got %q", cfg.SavesDir)
	}
	if cfg.SortMode() != workspace.SortByStatus {
		t.Errorf("SortMode: got %q", cfg.SortMode())
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level: got %v, want debug", cfg.Level())
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.toml"), t.TempDir(), "")
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, "tasktree.toml"), `saves_dir = "from-file"`)
	t.Setenv(EnvSavesDir, "from-env")

	cfg, err := load("", workDir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SavesDir != "from-env" {
		t.Errorf("SavesDir: got %q, want from-env", cfg.SavesDir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvSavesDir, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", `saves_dir = `, "loading config file"},
		{"unknown key", `colour = "blue"`, "unknown key"},
		{"bad sort", `default_sort = "alphabetical"`, "default_sort"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"empty saves dir", `saves_dir = ""`, "saves_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasktree.toml")
			writeFile(t, path, tt.content)

			_, err := load(path, t.TempDir(), "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robenli/textalign/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantWidth int
		wantAlign string
	}{
		{
			name:      "full config",
			content:   "width = 72\nalign = \"justify\"\n",
			wantWidth: 72,
			wantAlign: "justify",
		},
		{
			name:      "partial config keeps defaults",
			content:   "width = 100\n",
			wantWidth: 100,
			wantAlign: DefaultAlign,
		},
		{
			name:      "empty file keeps defaults",
			content:   "",
			wantWidth: DefaultWidth,
			wantAlign: DefaultAlign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", cfg.Width, tt.wantWidth)
			}
			if cfg.Align != tt.wantAlign {
				t.Errorf("Align = %q, want %q", cfg.Align, tt.wantAlign)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			content:  "width = = 10",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "zero width",
			content:  "width = 0\n",
			wantCode: errors.ErrCodeInvalidWidth,
		},
		{
			name:     "negative width",
			content:  "width = -4\n",
			wantCode: errors.ErrCodeInvalidWidth,
		},
		{
			name:     "unknown alignment",
			content:  "align = \"center\"\n",
			wantCode: errors.ErrCodeInvalidAlign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	want := filepath.Join("/tmp/xdg", "textalign", "config.toml")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

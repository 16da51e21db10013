package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePalette(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write palette file: %v", err)
	}
	return path
}

func TestLoadPalette(t *testing.T) {
	path := writePalette(t, `colours:
  - name: alert
    code: r
  - name: surface
    code: asss
`)
	pf, err := loadPalette(path)
	if err != nil {
		t.Fatalf("loadPalette: %v", err)
	}
	if len(pf.Colours) != 2 {
		t.Fatalf("got %d colours, want 2", len(pf.Colours))
	}
	if pf.Colours[0].Name != "alert" || pf.Colours[0].Code != "r" {
		t.Errorf("first entry = %+v", pf.Colours[0])
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	tests := []struct {
		name         string
		contents     string
		wantContains string
	}{
		{"empty file", "", "defines no colours"},
		{"no colours key", "other: value\n", "defines no colours"},
		{"malformed yaml", "colours: [unclosed\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPalette(writePalette(t, tt.contents))
			if err == nil || !strings.Contains(err.Error(), tt.wantContains) {
				t.Errorf("loadPalette = %v, want error containing %q", err, tt.wantContains)
			}
		})
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	_, err := loadPalette(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("loadPalette = %v, want read failure", err)
	}
}

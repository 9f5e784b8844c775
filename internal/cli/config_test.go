package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "dienstplan.toml", `
input_path = "in"
cols_per_day = 7
groups = ["Igel", "Bären"]
absences = ["Krank"]
formats = ["svg", "pdf"]

[labels]
min_distance = 0.5

[[shift_buckets]]
name = "Früh"
windows = [{ start = "07:00", end = "08:00" }]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputPath != "in" || cfg.OutputPath != "ausgabe" {
		t.Errorf("paths = %q %q", cfg.InputPath, cfg.OutputPath)
	}
	if cfg.ColsPerDay != 7 || cfg.HeaderRows != 12 {
		t.Errorf("layout = %d %d", cfg.ColsPerDay, cfg.HeaderRows)
	}
	if cfg.Labels.MinDistance != 0.5 {
		t.Errorf("min distance = %v", cfg.Labels.MinDistance)
	}
	if len(cfg.ShiftBuckets) != 1 || cfg.ShiftBuckets[0].Windows[0].End != roster.At(8, 0) {
		t.Errorf("buckets = %+v", cfg.ShiftBuckets)
	}

	opts := cfg.reportOptions()
	if len(opts.Groups) != 2 || opts.Groups[1] != "Bären" {
		t.Errorf("groups = %v", opts.Groups)
	}
	if q := cfg.queryOptions(); len(q.Absences) != 1 || q.CrossCutting != "" {
		t.Errorf("query options = %+v", q)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
input_path: eingabe/kw
archive_path: /srv/archiv
labels:
  min_distance: 0.25
shift_buckets:
  - name: Spät
    windows:
      - start: "16:00"
        end: "17:00"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputPath != "eingabe/kw" || cfg.ArchivePath != "/srv/archiv" {
		t.Errorf("paths = %+v", cfg)
	}
	if cfg.Labels.MinDistance != 0.25 {
		t.Errorf("min distance = %v", cfg.Labels.MinDistance)
	}
	if len(cfg.ShiftBuckets) != 1 || cfg.ShiftBuckets[0].Windows[0].Start != roster.At(16, 0) {
		t.Errorf("buckets = %+v", cfg.ShiftBuckets)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.Code
	}{
		{"malformed toml", "a.toml", "input_path = ", errors.ErrCodeInvalidConfig},
		{"malformed yaml", "a.yaml", "input_path: [", errors.ErrCodeInvalidConfig},
		{"negative columns", "a.toml", "cols_per_day = -1", errors.ErrCodeInvalidConfig},
		{"unknown format", "a.toml", `formats = ["gif"]`, errors.ErrCodeInvalidConfig},
		{"empty window", "a.toml", "[[shift_buckets]]\nname = \"x\"\nwindows = [{ start = \"09:00\", end = \"09:00\" }]", errors.ErrCodeInvalidConfig},
		{"bucket without name", "a.toml", "[[shift_buckets]]\nwindows = []", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.file, tt.content))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestLoadConfigDiscovery(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("output_path: out\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputPath != "out" {
		t.Errorf("output path = %q", cfg.OutputPath)
	}
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/observability"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// FindWorkbook returns the single .xlsx file in dir. Office lock files
// ("~$...") are ignored.
func FindWorkbook(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input path %s does not exist", dir)
		}
		return "", fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", errors.New(errors.ErrCodeInvalidInput, "input path %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dir, err)
	}
	var found []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "~$") || !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}
		found = append(found, filepath.Join(dir, name))
	}
	if len(found) != 1 {
		return "", errors.New(errors.ErrCodeInvalidInput, "expected exactly one .xlsx file in %s, found %d", dir, len(found))
	}
	return found[0], nil
}

// WriteArtifacts writes every artifact into dir under its
// [Artifact.FileName] and returns the written paths. Existing files are
// replaced.
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.FileName())
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ArchiveDir returns the archive directory of a week: root/<year>/KW-<week>.
func ArchiveDir(root string, h roster.Header) string {
	return filepath.Join(root, strconv.Itoa(h.Year), "KW-"+strconv.Itoa(h.CalendarWeek))
}

// Archive copies files into the archive directory of week h. An existing
// archive directory is left untouched and reported with
// [errors.ErrCodeArchiveExists].
func Archive(ctx context.Context, root string, h roster.Header, files []string) (string, error) {
	dir := ArchiveDir(root, h)
	hooks := observability.Archive()

	if _, err := os.Stat(dir); err == nil {
		hooks.OnArchiveSkipped(ctx, dir)
		return dir, errors.New(errors.ErrCodeArchiveExists, "archive %s already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dir, fmt.Errorf("create archive dir: %w", err)
	}

	files = slices.Clone(files)
	slices.Sort(files)
	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return dir, err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return dir, fmt.Errorf("read %s: %w", src, err)
		}
		dst := filepath.Join(dir, filepath.Base(src))
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return dir, fmt.Errorf("write %s: %w", dst, err)
		}
	}
	hooks.OnArchived(ctx, dir, len(files))
	return dir, nil
}

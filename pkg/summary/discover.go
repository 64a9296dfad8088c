package summary

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover expands a directory or wildcard pattern and walks every
// matching directory for sequencing summary files: names starting with
// "sequencing_summary" or ending in "_summary.txt.gz".
func Discover(pattern string) ([]string, error) {
	dirs, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no path matches pattern %q", pattern)
	}

	var files []string
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if isSummaryName(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func isSummaryName(name string) bool {
	return strings.HasPrefix(name, "sequencing_summary") ||
		strings.HasSuffix(name, "_summary.txt.gz")
}

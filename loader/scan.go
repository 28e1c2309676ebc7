// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the extensions DefaultRegistry can decode.
func DefaultExtensions() []string {
	return DefaultRegistry().Formats()
}

// Scan walks dir recursively and returns every file whose extension
// matches one of extensions, case-insensitively, in sorted order. With no
// extensions DefaultExtensions is used. A missing dir yields no files and
// no error.
func Scan(dir string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	want := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		want["."+strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := want[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	slices.Sort(files)
	return files, nil
}

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadLog returns the contents of a log file.
// Returns ErrLogNotFound if the file doesn't exist.
func ReadLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrLogNotFound, path)
		}
		return "", err
	}
	return string(data), nil
}

// Exists reports whether path is an existing regular file
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ListFiles returns every non-hidden file under root as a slash-separated path
// relative to root, in lexical order. Hidden directories are not descended into.
func ListFiles(root string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DayCandidates returns every existing log file for a day, in the order the
// directory validator ranks their naming patterns:
//
//	YYYY/MM/DD.txt, YYYY/MM/DD<custom>.txt,
//	YYYY/MM/YYYY-MM-DD<custom>.txt, YYYY/YYYY-MM-DD<custom>.txt
func (l Layout) DayCandidates(y, m, d string) ([]string, error) {
	dash := y + "-" + m + "-" + d
	patterns := []string{
		filepath.Join(l.Logs, y, m, d+".txt"),
		filepath.Join(l.Logs, y, m, d+"?*.txt"),
		filepath.Join(l.Logs, y, m, dash+"*.txt"),
		filepath.Join(l.Logs, y, dash+"*.txt"),
	}

	var found []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, match := range matches {
			if seen[match] || !Exists(match) {
				continue
			}
			seen[match] = true
			found = append(found, match)
		}
	}
	return found, nil
}

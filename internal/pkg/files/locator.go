// Package files recovers download artifacts the extractor wrote under a
// different name than it predicted.
package files

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// NewestSince returns the path of the regular file in dir with the latest
// modification time at or after cutoff, or an empty string when no file
// qualifies. Ties are broken by lexical filename order with the first name
// winning, so repeated scans of the same directory agree.
//
// This is a best-effort heuristic: another process writing into dir during
// the download window can produce a wrong match.
func NewestSince(dir string, cutoff time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read directory '%s'", dir)
	}

	var (
		best     string
		bestTime time.Time
	)
	// entries come back sorted by name, so replacing only on a strictly
	// newer timestamp keeps the lexicographically first name on a tie
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		mt := info.ModTime()
		if mt.Before(cutoff) {
			continue
		}

		if best == "" || mt.After(bestTime) {
			best = filepath.Join(dir, entry.Name())
			bestTime = mt
		}
	}

	return best, nil
}

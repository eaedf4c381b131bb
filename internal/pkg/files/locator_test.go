package files_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestNewestSince(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cutoff := time.Now().Add(-time.Hour).Truncate(time.Second)

	write(t, dir, "before-cutoff.mp4", cutoff.Add(-time.Minute))
	write(t, dir, "older.mp4", cutoff.Add(time.Minute))
	want := write(t, dir, "newest.m4a", cutoff.Add(2*time.Minute))

	got, err := files.NewestSince(dir, cutoff)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewestSinceAcceptsExactCutoff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cutoff := time.Now().Add(-time.Hour).Truncate(time.Second)
	want := write(t, dir, "clip.webm", cutoff)

	got, err := files.NewestSince(dir, cutoff)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewestSinceNoCandidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "stale.mp4", time.Now().Add(-time.Hour))

	got, err := files.NewestSince(dir, time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = files.NewestSince(t.TempDir(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewestSinceTieBreaksLexically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ts := time.Now().Add(-time.Minute).Truncate(time.Second)

	want := write(t, dir, "a.mp4", ts)
	write(t, dir, "b.mp4", ts)

	got, err := files.NewestSince(dir, ts.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewestSinceIgnoresDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cutoff := time.Now().Add(-time.Minute)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "zzz-subdir"), 0o755))
	want := write(t, dir, "clip.mp4", time.Now())

	got, err := files.NewestSince(dir, cutoff)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewestSinceMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := files.NewestSince(filepath.Join(t.TempDir(), "missing"), time.Now())
	require.Error(t, err)
}

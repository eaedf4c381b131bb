// Package extractor wraps the external media-extraction tool. Everything that
// touches the network or understands platform protocols lives behind the
// Extractor interface; the rest of the application only builds Options and
// consumes Metadata.
package extractor

import (
	"context"
	"time"
)

// Options configures a single extraction. It is built once per call from the
// download request and consumed exactly once.
type Options struct {
	// Format is an ordered preference list of single-file format specifiers,
	// alternatives separated by "/". The tool stops at the first that matches
	// an available stream.
	Format string

	// FormatSort biases ordering inside a matched alternative.
	FormatSort []string

	// OutputTemplate is the tool's output filename template, including the
	// target directory.
	OutputTemplate string

	// UserAgent overrides the HTTP User-Agent header when non-empty.
	UserAgent string

	// SocketTimeout and Retries are the tool's own transport-level resilience
	// knobs. They are configuration, not adapter error handling.
	SocketTimeout time.Duration
	Retries       int

	NoPlaylist bool
	GeoBypass  bool
}

// Metadata is the descriptive payload the tool reports for a URL.
type Metadata struct {
	Title     string
	Duration  int
	Thumbnail string

	// Filename is the output path predicted from pre-download metadata.
	// Filepath is the path reported after the file was written; it may differ
	// from Filename when the tool corrects the extension against the actual
	// stream, and is empty for metadata-only queries.
	Filename string
	Filepath string
}

// Extractor resolves a source URL into media streams and metadata. With
// download set it also fetches the selected stream to disk.
type Extractor interface {
	Extract(ctx context.Context, url string, download bool, opts Options) (*Metadata, error)
}

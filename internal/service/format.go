package service

import (
	"strings"

	"github.com/KRIPAVERMA/mediabotbackend/internal/models"
)

// The target device carries no transcoder, so every specifier below resolves
// to a single pre-merged file. Nothing here may ever join separate audio and
// video streams.
var (
	audioFormats = []string{
		"bestaudio[ext=m4a]",
		"bestaudio[ext=mp3]",
		"bestaudio[ext=webm]",
		"bestaudio",
		"best",
	}

	videoFormats = []string{
		"best[ext=mp4][height<=720]",
		"best[ext=mp4]",
		"best[height<=720]",
		"best",
	}

	formatSort = []string{"res:720", "ext:mp4:m4a:mp3:ogg:webm"}
)

// FormatPreference returns the ordered single-file format selector for the
// kind. The extractor tries alternatives left to right and stops at the first
// that matches an available stream; the trailing "best" trades quality for
// availability on platforms with odd catalogs instead of failing.
func FormatPreference(kind models.Kind) string {
	if kind == models.KindAudio {
		return strings.Join(audioFormats, "/")
	}

	return strings.Join(videoFormats, "/")
}

package models

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnsupportedMode = errors.New("unsupported mode")

// Platform is the media source a request targets.
type Platform string

const (
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// Kind selects between a full video stream and an audio-only stream.
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Mode is the parsed form of the wire mode selector, e.g. "youtube-mp3".
// The "-mp3" suffix is historical: it requests an audio-only download, the
// container stays whatever the source offers.
type Mode struct {
	Platform Platform
	Kind     Kind
}

// ParseMode validates a wire mode selector. Unknown platforms and kinds are
// rejected here, before any extractor configuration is built.
func ParseMode(s string) (Mode, error) {
	platform, kind, ok := strings.Cut(s, "-")
	if !ok {
		return Mode{}, errors.Wrapf(ErrUnsupportedMode, "'%s'", s)
	}

	var m Mode

	switch Platform(platform) {
	case PlatformYoutube, PlatformInstagram, PlatformFacebook:
		m.Platform = Platform(platform)
	default:
		return Mode{}, errors.Wrapf(ErrUnsupportedMode, "unknown platform '%s'", platform)
	}

	switch kind {
	case "video":
		m.Kind = KindVideo
	case "mp3":
		m.Kind = KindAudio
	default:
		return Mode{}, errors.Wrapf(ErrUnsupportedMode, "unknown kind '%s'", kind)
	}

	return m, nil
}

func (m Mode) String() string {
	return string(m.Platform) + "-" + string(m.Kind)
}

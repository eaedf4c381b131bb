package service

import (
	"github.com/KRIPAVERMA/mediabotbackend/internal/models"
)

// Browser identities sent instead of the tool's default User-Agent to reduce
// platform-side client detection failures.
const (
	mobileUserAgent = "Mozilla/5.0 (Linux; Android 14; Pixel 8 Pro) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0.0.0 Mobile Safari/537.36"

	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0.0.0 Safari/537.36"
)

// UserAgentFor returns the static per-platform User-Agent override. Mode
// parsing rejects unknown platforms long before this lookup, so the empty
// fallback only ever leaves the extractor at its default header.
func UserAgentFor(p models.Platform) string {
	switch p {
	case models.PlatformYoutube, models.PlatformInstagram:
		return mobileUserAgent
	case models.PlatformFacebook:
		return desktopUserAgent
	default:
		return ""
	}
}

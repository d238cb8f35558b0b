// Package entity contains the core business objects of the project.
package entity

import "strings"

// Platform identifies a third-party publishing platform.
type Platform string

const (
	// PlatformYouTube is Google's YouTube.
	PlatformYouTube Platform = "youtube"
	// PlatformTikTok is TikTok.
	PlatformTikTok Platform = "tiktok"
	// PlatformFacebook is Facebook (Meta Graph API).
	PlatformFacebook Platform = "facebook"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a supported value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformYouTube, PlatformTikTok, PlatformFacebook:
		return true
	default:
		return false
	}
}

// ParsePlatform normalizes case and surrounding whitespace.
func ParsePlatform(raw string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))

	return p, p.IsValid()
}

// Platforms lists every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformYouTube, PlatformTikTok, PlatformFacebook}
}

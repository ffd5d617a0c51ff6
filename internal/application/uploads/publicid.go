package uploads

import (
	"regexp"
	"strings"
)

// Delivery URLs look like
// https://res.cloudinary.com/<cloud>/image/upload/v<version>/<public_id>.<ext>
var publicIDPattern = regexp.MustCompile(`(?i)/upload/v\d+/(.+?)\.(jpg|jpeg|png|gif|webp)`)

// ExtractPublicID recovers the provider public ID from a Cloudinary
// delivery URL. It reports false for non-Cloudinary URLs and URLs that
// do not match the delivery pattern.
func ExtractPublicID(url string) (string, bool) {
	if !strings.Contains(url, "cloudinary.com") {
		return "", false
	}
	matches := publicIDPattern.FindStringSubmatch(url)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

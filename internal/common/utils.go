package common

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// IsURL reports whether an input argument is a remote document rather
// than a local file path.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// LooksLikeHTML sniffs whether content should go through article
// extraction. Content-Type wins when present; otherwise check for
// markup at the start of the body.
func LooksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	if contentType != "" && strings.Contains(contentType, "text/plain") {
		return false
	}

	head := strings.ToLower(string(body[:min(len(body), 512)]))
	head = strings.TrimSpace(head)
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

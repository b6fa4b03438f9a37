package service

import (
	"path/filepath"
	"strings"
	"time"
)

// SignedURLExpiry is how long issued read URLs stay valid.
const SignedURLExpiry = 3600 * time.Second

// extensionOf lower-cases the extension of an uploaded filename,
// falling back to jpg when there is none.
func extensionOf(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "jpg"
	}
	return strings.ToLower(ext)
}

// clipRunes truncates s to at most n runes without splitting a
// multi-byte sequence.
func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

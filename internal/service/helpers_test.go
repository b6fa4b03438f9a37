package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, "jpg", extensionOf("IMG_0001.JPG"))
	assert.Equal(t, "png", extensionOf("holiday.png"))
	assert.Equal(t, "webp", extensionOf("a.b.WEBP"))
	assert.Equal(t, "jpg", extensionOf("noextension"))
	assert.Equal(t, "jpg", extensionOf(""))
}

func TestClipRunes(t *testing.T) {
	assert.Equal(t, "abc", clipRunes("abc", 5))
	assert.Equal(t, "ab", clipRunes("abc", 2))
	// never splits a multi-byte rune
	assert.Equal(t, "éé", clipRunes("ééé", 2))
	assert.Equal(t, "", clipRunes("abc", 0))
}

package vimeo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://vimeo.com/12345",
		"http://vimeo.com/12345",
		"vimeo.com/12345",
		"www.vimeo.com/12345",
		"https://www.vimeo.com/channels/staffpicks/123456789",
		"  https://vimeo.com/12345  ",
	}
	for _, url := range valid {
		require.True(t, IsValidURL(url), "expected %q to be valid", url)
	}

	invalid := []string{
		"",
		"   ",
		"notaurl",
		"https://youtube.com/watch?v=abc",
		"https://vimeo.org/12345",
		"ftp://vimeo.com/12345",
		"https://notvimeo.com/12345",
	}
	for _, url := range invalid {
		require.False(t, IsValidURL(url), "expected %q to be rejected", url)
	}
}

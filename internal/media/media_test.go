package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMIMEForExt(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"mp3":  "audio/mpeg",
		"m4a":  "audio/mp4",
		"mp4":  "audio/mp4",
		"aac":  "audio/aac",
		"wav":  "audio/wav",
		"webm": "audio/webm",
		"ogg":  "audio/ogg",
		"oga":  "audio/ogg",
		"flac": "audio/flac",
		"mka":  "audio/x-matroska",
		"opus": "audio/opus",
	}
	for ext, want := range cases {
		require.Equal(t, want, MIMEForExt(ext))
	}
}

func TestMIMEForExtNormalizesInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, "audio/mp4", MIMEForExt(".M4A"))
	require.Equal(t, "audio/wav", MIMEForExt(" wav "))
}

func TestMIMEForExtFallsBackToMpeg(t *testing.T) {
	t.Parallel()

	require.Equal(t, "audio/mpeg", MIMEForExt("xyz"))
	require.Equal(t, "audio/mpeg", MIMEForExt(""))
}

func TestFormatInfo(t *testing.T) {
	t.Parallel()

	got := FormatInfo("My Talk", "Jane", 125)
	require.Equal(t, "Title: My Talk\nUploader: Jane\nDuration: 2m 5s", got)
}

func TestFormatInfoFallbacks(t *testing.T) {
	t.Parallel()

	got := FormatInfo("", "", 0)
	require.Equal(t, "Title: Untitled\nUploader: Unknown uploader\nDuration: 0m 0s", got)

	got = FormatInfo("  ", "\t", -5)
	require.Equal(t, "Title: Untitled\nUploader: Unknown uploader\nDuration: 0m 0s", got)
}

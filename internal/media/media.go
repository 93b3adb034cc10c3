package media

import (
	"fmt"
	"strings"
)

const DefaultMIME = "audio/mpeg"

var mimeByExt = map[string]string{
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

// MIMEForExt maps an audio file extension to a playback MIME type. Unknown
// extensions fall back to audio/mpeg.
func MIMEForExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if mime, ok := mimeByExt[ext]; ok {
		return mime
	}
	return DefaultMIME
}

// FormatInfo renders video metadata as a small text block, filling in
// fallbacks for fields the extractor did not supply.
func FormatInfo(title, uploader string, durationSeconds int) string {
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	if strings.TrimSpace(uploader) == "" {
		uploader = "Unknown uploader"
	}
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return fmt.Sprintf("Title: %s\nUploader: %s\nDuration: %dm %ds", title, uploader, durationSeconds/60, durationSeconds%60)
}

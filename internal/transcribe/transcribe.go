package transcribe

import "context"

const DefaultModel = "whisper-1"

// Request carries an in-memory audio payload. Filename tags the extension so
// the transcription API can infer the audio format.
type Request struct {
	Audio    []byte
	Filename string
	MIME     string
}

type Engine interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

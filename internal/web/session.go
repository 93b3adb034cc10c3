package web

import (
	"sync"

	"github.com/fmueller/vimeoscribe/internal/fetch"
)

// Session holds the transient artifacts for one browser: the last
// successfully downloaded audio and, when transcription also succeeded, the
// transcript. Nothing is persisted; clearing resets the struct to its zero
// form.
type Session struct {
	Audio      []byte
	Ext        string
	Info       fetch.Metadata
	Transcript string
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

// update runs fn with exclusive access to the session for id, creating the
// session on first use.
func (s *sessionStore) update(id string, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{}
		s.sessions[id] = sess
	}
	fn(sess)
}

func (s *sessionStore) snapshot(id string) Session {
	var out Session
	s.update(id, func(sess *Session) { out = *sess })
	return out
}

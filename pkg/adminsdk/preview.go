package adminsdk

import "sync"

// Preview is what the form shows for its image slot. A transient preview is
// backed by locally-held resources and must be released when it stops being
// the current one; a persisted preview is a server-hosted URL and is never
// released by the client.
type Preview struct {
	URL       string
	Transient bool
	token     uint64
}

// PreviewFactory turns a staged file into a displayable URL, e.g. an object
// URL in a browser-embedded runtime or a temp file path in tooling.
type PreviewFactory func(file *StagedFile) string

// PreviewReleaser frees whatever backs a transient preview URL.
type PreviewReleaser func(url string)

// previewSlot owns at most one live preview per form instance. Replacing a
// transient preview releases the old one; a persisted preview is stored but
// never passed to the releaser.
type previewSlot struct {
	mu      sync.Mutex
	seq     uint64
	current *Preview
	release PreviewReleaser
}

func (s *previewSlot) setTransient(url string) *Preview {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseCurrentLocked()
	s.seq++
	s.current = &Preview{URL: url, Transient: true, token: s.seq}
	return s.current
}

func (s *previewSlot) setPersisted(url string) *Preview {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseCurrentLocked()
	s.seq++
	s.current = &Preview{URL: url, Transient: false, token: s.seq}
	return s.current
}

// clear drops the current preview, releasing it when transient. Used on
// form close and teardown.
func (s *previewSlot) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseCurrentLocked()
}

func (s *previewSlot) get() *Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// live reports whether the given preview is still the slot's current one.
// A replaced preview's token never matches again.
func (s *previewSlot) live(p *Preview) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return p != nil && s.current != nil && s.current.token == p.token
}

func (s *previewSlot) releaseCurrentLocked() {
	if s.current != nil && s.current.Transient && s.release != nil {
		s.release(s.current.URL)
	}
	s.current = nil
}

package brandstudio

import (
	"sync"
	"time"
)

// stashEntry is the transient per-session state that is too large for the
// cookie: the wizard form in progress, staged reference images, generated
// guideline content awaiting save, and the pending content draft.
type stashEntry struct {
	wizardForm      *WizardForm
	wizardStep      int
	images          []StagedImage
	contentTopic    string
	contentPlatform string
	generated       string
	draft           *PendingDraft
	touched         time.Time
}

// Stash is an in-memory TTL store for per-session transient state, keyed
// by the stash ID kept in the session cookie. Entries idle longer than the
// TTL are swept.
type Stash struct {
	mu      sync.Mutex
	entries map[string]*stashEntry
	ttl     time.Duration
	done    chan struct{}
}

// NewStash creates a Stash and starts its background sweeper.
func NewStash(ttl time.Duration) *Stash {
	s := &Stash{
		entries: make(map[string]*stashEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *Stash) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, e := range s.entries {
			if e.touched.Before(cutoff) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop halts the background sweeper.
func (s *Stash) Stop() {
	close(s.done)
}

// entry returns the entry for id, creating it if needed. Callers hold s.mu.
func (s *Stash) entry(id string) *stashEntry {
	e, ok := s.entries[id]
	if !ok {
		e = &stashEntry{}
		s.entries[id] = e
	}
	e.touched = time.Now()
	return e
}

// Wizard returns the in-progress wizard form and step, or a fresh form at
// step 0 if none exists.
func (s *Stash) Wizard(id string) (WizardForm, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	if e.wizardForm == nil {
		return WizardForm{}, 0
	}
	return *e.wizardForm, e.wizardStep
}

// SetWizard stores the wizard form and current step.
func (s *Stash) SetWizard(id string, form WizardForm, step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	e.wizardForm = &form
	e.wizardStep = step
}

// ClearWizard discards any in-progress wizard state.
func (s *Stash) ClearWizard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	e.wizardForm = nil
	e.wizardStep = 0
}

// Images returns a copy of the staged reference images.
func (s *Stash) Images(id string) []StagedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	out := make([]StagedImage, len(e.images))
	copy(out, e.images)
	return out
}

// AddImage appends a staged reference image.
func (s *Stash) AddImage(id string, img StagedImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	e.images = append(e.images, img)
}

// RemoveImage drops the staged image at index. Out-of-range indexes are
// ignored.
func (s *Stash) RemoveImage(id string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	if index < 0 || index >= len(e.images) {
		return
	}
	e.images = append(e.images[:index], e.images[index+1:]...)
}

// ContentForm returns the topic and platform typed into the content form.
// Kept here so staging images does not lose them.
func (s *Stash) ContentForm(id string) (topic, platform string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	return e.contentTopic, e.contentPlatform
}

// SetContentForm stores the content form's topic and platform.
func (s *Stash) SetContentForm(id, topic, platform string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	e.contentTopic = topic
	e.contentPlatform = platform
}

// ClearImages discards all staged reference images.
func (s *Stash) ClearImages(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).images = nil
}

// Generated returns guideline content generated in this session that has
// not been saved yet.
func (s *Stash) Generated(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(id).generated
}

// SetGenerated stores freshly generated guideline content.
func (s *Stash) SetGenerated(id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).generated = content
}

// Draft returns the pending content draft, if any.
func (s *Stash) Draft(id string) (PendingDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(id)
	if e.draft == nil {
		return PendingDraft{}, false
	}
	return *e.draft, true
}

// SetDraft stores the pending content draft, replacing any previous one.
func (s *Stash) SetDraft(id string, d PendingDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).draft = &d
}

// ClearDraft discards the pending content draft.
func (s *Stash) ClearDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).draft = nil
}

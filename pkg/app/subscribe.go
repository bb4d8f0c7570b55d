package app

// ChangeKind names what part of the journal changed.
type ChangeKind string

const (
	ChangeFolders   ChangeKind = "folders"
	ChangeTags      ChangeKind = "tags"
	ChangeSettings  ChangeKind = "settings"
	ChangeGoal      ChangeKind = "goal"
	ChangeBlocklist ChangeKind = "blocklist"
)

// Change is delivered to subscribers after a successful write.
type Change struct {
	Kind     ChangeKind
	EntryID  string
	FolderID string
}

// Subscribe registers fn for every change made through this Service. fn runs
// synchronously on the goroutine that made the change. The returned func
// removes the subscription.
func (s *Service) Subscribe(fn func(Change)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Change))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Service) notify(c Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}

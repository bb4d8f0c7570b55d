package app

import (
	"context"
	"time"

	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/goal"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/prompt"
	"tableflip.dev/writersblock/pkg/settings"
	"tableflip.dev/writersblock/pkg/store"
)

// Settings reads each preference from its own key, defaulting absent ones.
func (s *Service) Settings(ctx context.Context) (settings.Settings, error) {
	if err := s.ready(); err != nil {
		return settings.Settings{}, err
	}
	out := settings.Default()
	var theme string
	for key, v := range map[string]any{
		store.KeyWordCountGoal: &out.WordCountGoal,
		store.KeyResetTime:     &out.ResetTime,
		store.KeyDarkMode:      &out.DarkMode,
		store.KeyPromptTheme:   &theme,
	} {
		if _, err := s.readJSON(key, v); err != nil {
			return settings.Default(), err
		}
	}
	if theme != "" {
		out.PromptTheme = prompt.Theme(theme)
	}
	return out, nil
}

// SaveSettings validates and writes every preference.
func (s *Service) SaveSettings(ctx context.Context, in settings.Settings) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	err := func() error {
		for key, v := range map[string]any{
			store.KeyWordCountGoal: in.WordCountGoal,
			store.KeyResetTime:     in.ResetTime,
			store.KeyDarkMode:      in.DarkMode,
			store.KeyPromptTheme:   string(in.PromptTheme),
		} {
			if err := s.writeJSON(key, v); err != nil {
				return err
			}
		}
		return nil
	}()
	if err == nil && s.tracker != nil {
		s.tracker.Goal = in.WordCountGoal
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeSettings})
	return nil
}

// GoalRecords returns the per-day goal history and reached timestamps.
func (s *Service) GoalRecords(ctx context.Context) (goal.History, goal.ReachedTimes, error) {
	if err := s.ready(); err != nil {
		return nil, nil, err
	}
	history := goal.History{}
	reached := goal.ReachedTimes{}
	if _, err := s.readJSON(store.KeyGoalHistory, &history); err != nil {
		return nil, nil, err
	}
	if _, err := s.readJSON(store.KeyGoalReachedTimes, &reached); err != nil {
		return nil, nil, err
	}
	return history, reached, nil
}

// CheckGoal compares today's words with the daily goal and records the day
// the first time the goal is crossed. It returns true on that crossing.
func (s *Service) CheckGoal(ctx context.Context) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	prefs, err := s.Settings(ctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	reached, err := s.checkGoalLocked(ctx, prefs.WordCountGoal, s.now())
	s.mu.Unlock()
	if err != nil || !reached {
		return false, err
	}
	s.notify(Change{Kind: ChangeGoal})
	return true, nil
}

func (s *Service) checkGoalLocked(ctx context.Context, target int, now time.Time) (bool, error) {
	history, times, err := s.GoalRecords(ctx)
	if err != nil {
		return false, err
	}
	folders, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if s.tracker == nil {
		s.tracker = goal.NewTracker(target, history, times)
	} else {
		s.tracker.Goal = target
		s.tracker.History = history
		s.tracker.ReachedTimes = times
	}
	if !s.tracker.Check(now, goal.WordsOn(journal.Flatten(folders), now)) {
		return false, nil
	}
	if err := s.writeJSON(store.KeyGoalHistory, s.tracker.History); err != nil {
		return false, err
	}
	if err := s.writeJSON(store.KeyGoalReachedTimes, s.tracker.ReachedTimes); err != nil {
		return false, err
	}
	return true, nil
}

// Rollover tells the goal tracker the clock moved on. It reports whether the
// day changed since the last check.
func (s *Service) Rollover(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker == nil {
		return false
	}
	return s.tracker.Rollover(now)
}

// BlockedApps returns the apps selected for blocking.
func (s *Service) BlockedApps(ctx context.Context) (blocklist.Set, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var ids []string
	if _, err := s.readJSON(store.KeyBlockedApps, &ids); err != nil {
		return nil, err
	}
	return blocklist.NewSet(ids...), nil
}

// SaveBlockedApps stores the selection.
func (s *Service) SaveBlockedApps(ctx context.Context, set blocklist.Set) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.Lock()
	err := s.writeJSON(store.KeyBlockedApps, set.IDs())
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeBlocklist})
	return nil
}

// Authorized reports the last recorded authorization answer.
func (s *Service) Authorized(ctx context.Context) bool {
	if s.ready() != nil {
		return false
	}
	var ok bool
	if _, err := s.readJSON(store.KeyScreenTimeAuthorized, &ok); err != nil {
		return false
	}
	return ok
}

// RequestAuthorization asks the Authorizer for permission, waits for the
// answer (or ctx) and records it. A denial is not an error and can be retried.
func (s *Service) RequestAuthorization(ctx context.Context) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	a := s.Authorizer
	if a == nil {
		a = blocklist.Unsupported{}
	}
	ok := blocklist.Await(ctx, a)
	s.mu.Lock()
	err := s.writeJSON(store.KeyScreenTimeAuthorized, ok)
	s.mu.Unlock()
	if err != nil {
		return ok, err
	}
	s.notify(Change{Kind: ChangeBlocklist})
	return ok, nil
}

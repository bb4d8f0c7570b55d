package app

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/store"
)

// Tags returns the shared tag palette.
func (s *Service) Tags(ctx context.Context) ([]journal.Tag, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	tags := []journal.Tag{}
	if _, err := s.readJSON(store.KeyTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Service) updateTags(ctx context.Context, fn func([]journal.Tag) ([]journal.Tag, error)) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.Lock()
	tags, err := s.Tags(ctx)
	if err == nil {
		tags, err = fn(tags)
	}
	if err == nil {
		err = s.writeJSON(store.KeyTags, tags)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeTags})
	return nil
}

// CreateTag adds a tag. Names are unique regardless of case.
func (s *Service) CreateTag(ctx context.Context, name, color string) (journal.Tag, error) {
	tag, err := journal.NewTag(name, color)
	if err != nil {
		return journal.Tag{}, err
	}
	err = s.updateTags(ctx, func(tags []journal.Tag) ([]journal.Tag, error) {
		if journal.TagByName(tags, tag.Name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, tag.Name)
		}
		return append(tags, tag), nil
	})
	if err != nil {
		return journal.Tag{}, err
	}
	return tag, nil
}

// UpdateTag renames or recolors a tag. Empty arguments keep the current
// value. Entries pick up the change because they refer to the tag by id.
func (s *Service) UpdateTag(ctx context.Context, ref, name, color string) (journal.Tag, error) {
	var updated journal.Tag
	err := s.updateTags(ctx, func(tags []journal.Tag) ([]journal.Tag, error) {
		i := findTag(tags, ref)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrTagNotFound, ref)
		}
		if name = strings.TrimSpace(name); name != "" {
			if j := journal.TagByName(tags, name); j >= 0 && j != i {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, name)
			}
			tags[i].Name = name
		}
		if strings.TrimSpace(color) != "" {
			c, err := journal.ParseColor(color)
			if err != nil {
				return nil, err
			}
			tags[i].Color = c
		}
		updated = tags[i]
		return tags, nil
	})
	return updated, err
}

// DeleteTag removes a tag from the palette. Entries keep the dangling id and
// resolution skips it.
func (s *Service) DeleteTag(ctx context.Context, ref string) error {
	return s.updateTags(ctx, func(tags []journal.Tag) ([]journal.Tag, error) {
		i := findTag(tags, ref)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrTagNotFound, ref)
		}
		return append(tags[:i:i], tags[i+1:]...), nil
	})
}

// EnsureTags maps tag ids or names to ids, creating missing names with the
// default color.
func (s *Service) EnsureTags(ctx context.Context, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	var ids []string
	err := s.updateTags(ctx, func(tags []journal.Tag) ([]journal.Tag, error) {
		for _, ref := range refs {
			if strings.TrimSpace(ref) == "" {
				continue
			}
			if i := findTag(tags, ref); i >= 0 {
				ids = append(ids, tags[i].ID)
				continue
			}
			tag, err := journal.NewTag(ref, "")
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
			ids = append(ids, tag.ID)
		}
		return tags, nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func findTag(tags []journal.Tag, ref string) int {
	if i := journal.TagIndex(tags, ref); i >= 0 {
		return i
	}
	return journal.TagByName(tags, ref)
}

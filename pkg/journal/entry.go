// Package journal defines the writing entries, folders and tags that make up
// a journal, plus the helpers that keep them consistent.
package journal

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is used when an entry is saved without a title.
	DefaultTitle = "New Entry"
)

// Entry is a single saved piece of writing.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	WordCount int       `json:"wordCount"`
	TagIDs    []string  `json:"tagIds,omitempty"`
	Notes     string    `json:"notes,omitempty"`

	// legacyTags holds tag objects embedded by older records until
	// AdoptLegacyTags moves them into the palette.
	legacyTags []Tag
}

// NewEntry builds an entry with a fresh id and a word count derived from text.
func NewEntry(title, text string, date time.Time, tagIDs []string) *Entry {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	e := &Entry{
		ID:     NewID(),
		Title:  title,
		Text:   text,
		Date:   date,
		TagIDs: dedupe(tagIDs),
	}
	e.Recount()
	return e
}

// NewID returns a random identifier for entries, folders and tags.
func NewID() string {
	return uuid.New().String()
}

// CountWords counts the non-empty whitespace delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Recount refreshes WordCount from Text. Call it after every edit.
func (e *Entry) Recount() {
	e.WordCount = CountWords(e.Text)
}

// HasTag reports whether the entry carries the tag id.
func (e *Entry) HasTag(id string) bool {
	for _, t := range e.TagIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Snippet returns the first line of the entry body.
func (e *Entry) Snippet() string {
	text := strings.TrimSpace(e.Text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// UnmarshalJSON accepts both the current record and the older shape that
// embedded full tag objects under "tags".
func (e *Entry) UnmarshalJSON(b []byte) error {
	type alias Entry
	var raw struct {
		alias
		Tags []Tag `json:"tags,omitempty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Entry(raw.alias)
	for _, t := range raw.Tags {
		if t.ID == "" {
			continue
		}
		if !e.HasTag(t.ID) {
			e.TagIDs = append(e.TagIDs, t.ID)
		}
		e.legacyTags = append(e.legacyTags, t)
	}
	return nil
}

// LegacyTags returns the tag objects an older record embedded, if any.
func (e *Entry) LegacyTags() []Tag {
	return e.legacyTags
}

func (e *Entry) replaceTag(from, to string) {
	for i, id := range e.TagIDs {
		if id == from {
			e.TagIDs[i] = to
		}
	}
	e.TagIDs = dedupe(e.TagIDs)
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

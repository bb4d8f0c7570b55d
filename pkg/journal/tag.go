package journal

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTagColor is used when a tag is created without a color.
const DefaultTagColor = "#007AFF"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Tag is a named, colored label. Entries refer to tags by id; display data is
// resolved from the shared palette at read time.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewTag creates a tag with a fresh id.
func NewTag(name, color string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, fmt.Errorf("journal: tag name required")
	}
	c, err := ParseColor(color)
	if err != nil {
		return Tag{}, err
	}
	return Tag{ID: NewID(), Name: name, Color: c}, nil
}

// ParseColor validates a "#rrggbb" color, defaulting when empty.
func ParseColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return DefaultTagColor, nil
	}
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	if !hexColor.MatchString(color) {
		return "", fmt.Errorf("journal: invalid tag color %q, expected #rrggbb", color)
	}
	return strings.ToUpper(color), nil
}

// TagIndex returns the index of the tag id in the palette, or -1.
func TagIndex(palette []Tag, id string) int {
	for i := range palette {
		if palette[i].ID == id {
			return i
		}
	}
	return -1
}

// TagByName returns the index of the tag whose name matches case-insensitively, or -1.
func TagByName(palette []Tag, name string) int {
	name = strings.TrimSpace(name)
	for i := range palette {
		if strings.EqualFold(palette[i].Name, name) {
			return i
		}
	}
	return -1
}

// ResolveTags returns the palette tags referenced by the entry, in entry
// order. Ids that no longer exist in the palette are skipped.
func ResolveTags(e Entry, palette []Tag) []Tag {
	if len(e.TagIDs) == 0 {
		return nil
	}
	out := make([]Tag, 0, len(e.TagIDs))
	for _, id := range e.TagIDs {
		if i := TagIndex(palette, id); i >= 0 {
			out = append(out, palette[i])
		}
	}
	return out
}

// HasLegacyTags reports whether any entry still carries embedded tag objects.
func HasLegacyTags(folders []Folder) bool {
	for _, f := range folders {
		for _, e := range f.Entries {
			if len(e.legacyTags) > 0 {
				return true
			}
		}
	}
	return false
}

// AdoptLegacyTags moves tags embedded by older entry records into palette.
// An embedded tag whose name is already in the palette under another id is
// remapped to that id on the entry. Entries are updated in place. The
// boolean reports whether palette grew.
func AdoptLegacyTags(folders []Folder, palette []Tag) ([]Tag, bool) {
	grew := false
	for fi := range folders {
		for ei := range folders[fi].Entries {
			e := &folders[fi].Entries[ei]
			for _, t := range e.legacyTags {
				if TagIndex(palette, t.ID) >= 0 {
					continue
				}
				name := strings.TrimSpace(t.Name)
				if name == "" {
					name = t.ID
				}
				if j := TagByName(palette, name); j >= 0 {
					e.replaceTag(t.ID, palette[j].ID)
					continue
				}
				color, err := ParseColor(t.Color)
				if err != nil {
					color = DefaultTagColor
				}
				palette = append(palette, Tag{ID: t.ID, Name: name, Color: color})
				grew = true
			}
			e.legacyTags = nil
		}
	}
	return palette, grew
}

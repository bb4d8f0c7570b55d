package journal

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestCountWords(t *testing.T) {
	tests := map[string]struct {
		text string
		want int
	}{
		"empty":       {"", 0},
		"blank":       {"   \n\t ", 0},
		"single":      {"hello", 1},
		"spaces":      {"  hello   world  ", 2},
		"newlines":    {"one\ntwo\n\nthree", 3},
		"tabs":        {"a\tb\tc d", 4},
		"punctuation": {"well , then", 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CountWords(tc.text); got != tc.want {
				t.Fatalf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestNewEntryDefaults(t *testing.T) {
	now := time.Date(2024, 9, 17, 10, 0, 0, 0, time.Local)
	e := NewEntry("  ", "the quick brown fox", now, []string{"a", "a", " ", "b"})
	if e.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", e.Title)
	}
	if e.WordCount != 4 {
		t.Fatalf("expected 4 words, got %d", e.WordCount)
	}
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !reflect.DeepEqual(e.TagIDs, []string{"a", "b"}) {
		t.Fatalf("unexpected tag ids %v", e.TagIDs)
	}
}

func TestEntryUnmarshalLegacyTags(t *testing.T) {
	raw := `{"id":"e1","title":"t","text":"x y","date":"2024-09-17T10:00:00Z","wordCount":2,
		"tags":[{"id":"t1","name":"Work","color":"#FF0000"},{"id":"t2","name":"Home","color":"#00FF00"}]}`
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(e.TagIDs, []string{"t1", "t2"}) {
		t.Fatalf("expected legacy tags reduced to ids, got %v", e.TagIDs)
	}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if _, ok := back["tags"]; ok {
		t.Fatalf("embedded tags should not be written back")
	}
}

func TestAdoptLegacyTags(t *testing.T) {
	raw := `[{"id":"a","name":"All Entries","entries":[
		{"id":"e1","text":"x","tags":[{"id":"t1","name":"Dream","color":"#112233"}]},
		{"id":"e2","text":"y","tags":[{"id":"t9","name":"work","color":"bogus"},{"id":"t1","name":"Dream"}]}]}]`
	var folders []Folder
	if err := json.Unmarshal([]byte(raw), &folders); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !HasLegacyTags(folders) {
		t.Fatalf("expected embedded tags to be kept until adopted")
	}

	palette := []Tag{{ID: "w", Name: "Work", Color: "#000000"}}
	palette, grew := AdoptLegacyTags(folders, palette)
	if !grew {
		t.Fatalf("expected the palette to grow")
	}
	want := []Tag{{ID: "w", Name: "Work", Color: "#000000"}, {ID: "t1", Name: "Dream", Color: "#112233"}}
	if !reflect.DeepEqual(palette, want) {
		t.Fatalf("unexpected palette %+v", palette)
	}
	if got := folders[0].Entries[1].TagIDs; !reflect.DeepEqual(got, []string{"w", "t1"}) {
		t.Fatalf("expected work remapped to the palette id, got %v", got)
	}
	if HasLegacyTags(folders) {
		t.Fatalf("expected embedded tags cleared after adoption")
	}
	if _, grew := AdoptLegacyTags(folders, palette); grew {
		t.Fatalf("expected a second adoption to be a no-op")
	}
}

func TestNormalizeFoldersMergesAllEntries(t *testing.T) {
	folders := []Folder{
		{ID: "f1", Name: "Poems", Entries: []Entry{{ID: "p1"}}},
		{ID: "a1", Name: AllEntries, Entries: []Entry{{ID: "e1"}, {ID: "e2"}}},
		{ID: "f2", Name: "Essays"},
		{ID: "a2", Name: AllEntries, Entries: []Entry{{ID: "e3"}}},
	}

	got := NormalizeFolders(folders)
	if len(got) != 3 {
		t.Fatalf("expected 3 folders, got %d", len(got))
	}
	if got[0].Name != AllEntries || got[0].ID != "a1" {
		t.Fatalf("expected merged All Entries first, got %+v", got[0])
	}
	var ids []string
	for _, e := range got[0].Entries {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"e1", "e2", "e3"}) {
		t.Fatalf("unexpected merged order %v", ids)
	}
	if got[1].ID != "f1" || got[2].ID != "f2" {
		t.Fatalf("other folders reordered: %s, %s", got[1].ID, got[2].ID)
	}
	if got[2].Entries == nil {
		t.Fatalf("expected empty entries slice, got nil")
	}

	again := NormalizeFolders(got)
	if !reflect.DeepEqual(again, got) {
		t.Fatalf("normalize is not idempotent")
	}
}

func TestNormalizeFoldersCreatesAllEntries(t *testing.T) {
	got := NormalizeFolders([]Folder{{ID: "f1", Name: "Poems"}})
	if len(got) != 2 || got[0].Name != AllEntries || got[0].ID == "" {
		t.Fatalf("expected synthesized All Entries folder, got %+v", got)
	}
}

func TestFindEntryAndFlatten(t *testing.T) {
	folders := []Folder{
		{ID: "a", Name: AllEntries, Entries: []Entry{{ID: "e1"}}},
		{ID: "b", Name: "Poems", Entries: []Entry{{ID: "e2"}, {ID: "e3"}}},
	}
	fi, ei, err := FindEntry(folders, "e3")
	if err != nil || fi != 1 || ei != 1 {
		t.Fatalf("FindEntry = %d,%d,%v", fi, ei, err)
	}
	if _, _, err := FindEntry(folders, "nope"); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if n := len(Flatten(folders)); n != 3 {
		t.Fatalf("expected 3 flattened entries, got %d", n)
	}
}

func TestCloneIsDeep(t *testing.T) {
	folders := []Folder{{ID: "a", Name: AllEntries, Entries: []Entry{{ID: "e1", TagIDs: []string{"t"}}}}}
	c := Clone(folders)
	c[0].Entries[0].Title = "changed"
	c[0].Entries[0].TagIDs[0] = "x"
	if folders[0].Entries[0].Title != "" || folders[0].Entries[0].TagIDs[0] != "t" {
		t.Fatalf("clone shares state with original")
	}
}

func TestResolveTagsSkipsDangling(t *testing.T) {
	palette := []Tag{{ID: "t1", Name: "Work"}, {ID: "t2", Name: "Home"}}
	e := Entry{TagIDs: []string{"t2", "gone", "t1"}}
	got := ResolveTags(e, palette)
	if len(got) != 2 || got[0].Name != "Home" || got[1].Name != "Work" {
		t.Fatalf("unexpected resolved tags %+v", got)
	}

	palette[0].Name = "Job"
	if got := ResolveTags(e, palette); got[1].Name != "Job" {
		t.Fatalf("rename should be visible through resolution, got %q", got[1].Name)
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor(""); err != nil || c != DefaultTagColor {
		t.Fatalf("default color = %q, %v", c, err)
	}
	if c, err := ParseColor("ff8800"); err != nil || c != "#FF8800" {
		t.Fatalf("ParseColor = %q, %v", c, err)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Fatalf("expected error for named color")
	}
}

package commands

import (
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/store"
)

func init() {
	color.NoColor = true
}

func useMemoryStore(t *testing.T) {
	t.Helper()
	t.Setenv("WRITERSBLOCK_BACKEND", store.BackendMemory)
	t.Setenv(store.ConfigPathEnv, t.TempDir())
}

func TestNewRegistersCommands(t *testing.T) {
	root := New()
	want := []string{
		"write", "edit", "delete", "move", "show", "log", "folders", "tags",
		"stats", "ranks", "calendar", "goal", "settings", "block", "prompt",
		"ui", "mcp", "info", "repair", "version", "completion",
	}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected %q to be registered: %v", name, err)
		}
	}
}

func TestWriteFlags(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"write"})
	if err != nil {
		t.Fatalf("find write: %v", err)
	}
	for _, flag := range []string{"title", "tag", "notes", "file", "editor", "folder", "on", "json"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Fatalf("expected --%s on write", flag)
		}
	}
}

func TestExecuteAgainstMemoryStore(t *testing.T) {
	useMemoryStore(t)

	tests := []struct {
		args    []string
		wantErr bool
	}{
		{args: []string{"write", "--title", "Morning", "the", "sea", "was", "calm"}},
		{args: []string{"stats", "--range", "month"}},
		{args: []string{"stats", "--range", "fortnight"}, wantErr: true},
		{args: []string{"calendar", "2024-02"}},
		{args: []string{"calendar", "Smarch"}, wantErr: true},
		{args: []string{"ranks"}},
		{args: []string{"goal", "--set", "750"}},
		{args: []string{"goal", "--set", "20"}, wantErr: true},
		{args: []string{"delete", "nope", "-y"}, wantErr: true},
		{args: []string{"prompt", "--theme", "creative"}},
		{args: []string{"move", "1", "2", "3"}, wantErr: true},
	}
	for _, tc := range tests {
		root := New()
		root.SetArgs(tc.args)
		root.SilenceErrors = true
		root.SilenceUsage = true
		err := root.Execute()
		if tc.wantErr && err == nil {
			t.Fatalf("%v: expected error", tc.args)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%v: unexpected error %v", tc.args, err)
		}
	}
}

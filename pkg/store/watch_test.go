package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(NewConfig(base, BackendDiskv))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write(KeyFolders, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventKeyChanged {
				if evt.Key != KeyFolders {
					t.Fatalf("expected key %q, got %q", KeyFolders, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestMemoryWatchStopsWithContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Write(KeyTags, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case evt := <-ch:
		if evt.Key != KeyTags {
			t.Fatalf("unexpected key %q", evt.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for memory event")
	}

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestChangeSetDrain(t *testing.T) {
	var c changeSet
	c.add(KeyTags)
	c.add(KeyFolders)
	c.add(KeyTags)
	c.add("")

	got := c.drain()
	want := []Event{
		{Type: EventInvalidated},
		{Type: EventKeyChanged, Key: KeyFolders},
		{Type: EventKeyChanged, Key: KeyTags},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if len(c.drain()) != 0 {
		t.Fatalf("expected drain to reset the set")
	}
}

func TestDiskvSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	p, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("NewDiskv: %v", err)
	}
	if err := p.Write(KeyFolders, []byte("v1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := p.Read(KeyFolders); err != nil || string(got) != "v1" {
		t.Fatalf("read: %q %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(base, KeyFolders), []byte("v2"), 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	got, err := p.Read(KeyFolders)
	if err != nil {
		t.Fatalf("read after change: %v", err)
	}
	if string(got) != "v2" {
		t.Fatalf("stale read after external write: got %q want %q", got, "v2")
	}
}

func TestDiskvWritesThroughTempDir(t *testing.T) {
	base := t.TempDir()
	p, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("NewDiskv: %v", err)
	}
	if err := p.Write(KeyTags, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, tempDirName)); err != nil {
		t.Fatalf("expected temp dir for atomic writes: %v", err)
	}
	// A write interrupted before its rename leaves a file behind.
	if err := os.WriteFile(filepath.Join(base, tempDirName, "123456"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed temp file: %v", err)
	}
	keys := p.Keys(context.Background())
	if len(keys) != 1 || keys[0] != KeyTags {
		t.Fatalf("expected only %s, got %v", KeyTags, keys)
	}
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }

func (t testConfig) Key() string { return DefaultKey }

func (t testConfig) YearGap() int { return 4 }

func (t testConfig) LogFile() string { return "" }

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
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

	if err := p.Save(DefaultKey, []byte(`{"2022":{"6":[1]}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Key == DefaultKey {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestDiskWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("expected channel to close after cancel")
		}
	}
}

func TestKeyForPath(t *testing.T) {
	p := &Disk{basePath: "/data/daymark"}
	tests := map[string]string{
		"/data/daymark/selectedDays":   "selectedDays",
		"/data/daymark":                "",
		"/data/daymark/.tmp":           "",
		"/data/daymark/.tmp/diskv-123": "",
		"/elsewhere/selectedDays":      "",
	}
	for path, want := range tests {
		if got := p.keyForPath(path); got != want {
			t.Fatalf("keyForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestForwardReportsWatcherErrorsAsRefresh(t *testing.T) {
	p := &Disk{basePath: "/data/daymark"}
	fsEvents := make(chan fsnotify.Event)
	fsErrors := make(chan error, 1)
	got := make(chan Event, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.forward(ctx, fsEvents, fsErrors, func(ev Event) { got <- ev })
	}()

	fsErrors <- errors.New("event queue overflow")

	select {
	case ev := <-got:
		if ev.Key != "" {
			t.Fatalf("expected a refresh event, got key %q", ev.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for refresh event")
	}

	cancel()
	<-done
}

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDiskSaveLoad(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, err := p.Load(DefaultKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	if err := p.Save(DefaultKey, []byte("one")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Load(DefaultKey)
	if err != nil || string(got) != "one" {
		t.Fatalf("load = %q, %v", got, err)
	}

	if _, err := os.Stat(filepath.Join(base, DefaultKey)); err != nil {
		t.Fatalf("expected blob file under base path: %v", err)
	}

	if err := p.Save(DefaultKey, []byte("two")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = p.Load(DefaultKey)
	if err != nil || string(got) != "two" {
		t.Fatalf("load after overwrite = %q, %v", got, err)
	}

	if keys := p.Keys(context.Background()); !reflect.DeepEqual(keys, []string{DefaultKey}) {
		t.Fatalf("keys = %v", keys)
	}
}

func TestDiskKeysSkipsNestedFiles(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(DefaultKey, []byte("one")); err != nil {
		t.Fatalf("save: %v", err)
	}

	stray := filepath.Join(base, tempDirName, "123456")
	if err := os.MkdirAll(filepath.Dir(stray), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(stray, []byte("partial"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	if keys := p.Keys(context.Background()); !reflect.DeepEqual(keys, []string{DefaultKey}) {
		t.Fatalf("keys = %v", keys)
	}
}

func TestDiskSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(DefaultKey, []byte("cached")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := p.Load(DefaultKey); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := os.WriteFile(filepath.Join(base, DefaultKey), []byte("external"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.Load(DefaultKey)
	if err != nil || string(got) != "external" {
		t.Fatalf("expected external write to be visible, got %q, %v", got, err)
	}
}

func TestDiskRejectsInvalidKeys(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, key := range []string{"", "a/b", `a\b`, ".tmp"} {
		if err := p.Save(key, []byte("x")); err == nil {
			t.Fatalf("expected Save(%q) to fail", key)
		}
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

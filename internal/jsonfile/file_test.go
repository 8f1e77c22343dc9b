package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestLoadDatabaseMissingFile(t *testing.T) {
	db, err := loadDatabase(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("loadDatabase failed: %v", err)
	}
	if db == nil || len(db) != 0 {
		t.Errorf("expected empty database, got %v", db)
	}
}

func TestLoadDatabaseEmptyAndWhitespaceFiles(t *testing.T) {
	for _, content := range []string{"", "  \n\t\n"} {
		path := filepath.Join(t.TempDir(), "data.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		db, err := loadDatabase(path)
		if err != nil {
			t.Fatalf("content %q: loadDatabase failed: %v", content, err)
		}
		if db == nil || len(db) != 0 {
			t.Errorf("content %q: expected empty database, got %v", content, db)
		}
	}
}

func TestLoadDatabaseNullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := loadDatabase(path)
	if err != nil {
		t.Fatalf("loadDatabase failed: %v", err)
	}
	if db == nil || len(db) != 0 {
		t.Errorf("expected empty database, got %v", db)
	}
}

func TestLoadDatabaseMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"users": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadDatabase(path)
	if !errors.Is(err, types.ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestWriteDatabaseRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	db := types.Database{
		"users":  {{"id": 1.0, "name": "John"}},
		"empty":  {},
		"orders": {{"total": 9.5}, {"total": 12.0}},
	}

	if err := writeDatabase(path, db); err != nil {
		t.Fatalf("writeDatabase failed: %v", err)
	}
	got, err := loadDatabase(path)
	if err != nil {
		t.Fatalf("loadDatabase failed: %v", err)
	}
	if !reflect.DeepEqual(db, got) {
		t.Errorf("round trip mismatch:\nwrote: %v\nread:  %v", db, got)
	}
}

func TestWriteDatabaseLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	if err := writeDatabase(path, types.Database{"t": {{"x": 1.0}}}); err != nil {
		t.Fatalf("writeDatabase failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only data.json in dir, got %v", names)
	}
}

func TestWriteDatabaseOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	if err := writeDatabase(path, types.Database{"a": {{"n": 1.0}}}); err != nil {
		t.Fatal(err)
	}
	if err := writeDatabase(path, types.Database{"b": {{"n": 2.0}}}); err != nil {
		t.Fatal(err)
	}

	got, err := loadDatabase(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got["a"]; ok {
		t.Error("expected prior contents replaced, table 'a' still present")
	}
	if len(got["b"]) != 1 {
		t.Errorf("expected table 'b' with 1 record, got %v", got)
	}
}

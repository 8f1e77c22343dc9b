package jsonfile

import (
	"strings"
	"testing"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestRenderMissingTable(t *testing.T) {
	s := mustOpen(t, testConfig(t))

	got := s.Render("ghosts")
	want := "Table \"ghosts\" does not exist.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderEmptyTable(t *testing.T) {
	s := mustOpen(t, testConfig(t))

	if err := s.Insert("users", types.Record{"id": 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Delete("users", nil); err != nil {
		t.Fatal(err)
	}

	got := s.Render("users")
	want := "Table \"users\" is empty.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderTableWithRecords(t *testing.T) {
	s := mustOpen(t, testConfig(t))

	if err := s.Insert("users", types.Record{"name": "John"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert("users", types.Record{"name": "Jane"}); err != nil {
		t.Fatal(err)
	}

	got := s.Render("users")
	want := "Table \"users\":\n" +
		"  Record 1: {\"name\":\"John\"}\n" +
		"  Record 2: {\"name\":\"Jane\"}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderAllEmptyDatabase(t *testing.T) {
	s := mustOpen(t, testConfig(t))

	got := s.RenderAll()
	if got != "Database is empty.\n" {
		t.Errorf("expected empty-database message, got %q", got)
	}
}

func TestRenderAllSortedWithEmptyMarker(t *testing.T) {
	s := mustOpen(t, testConfig(t))

	if err := s.Insert("zebras", types.Record{"n": 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert("apples", types.Record{"n": 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert("drained", types.Record{"n": 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Delete("drained", nil); err != nil {
		t.Fatal(err)
	}

	got := s.RenderAll()
	want := "Table \"apples\":\n" +
		"  Record 1: {\"n\":2}\n" +
		"Table \"drained\":\n" +
		"  (Empty)\n" +
		"Table \"zebras\":\n" +
		"  Record 1: {\"n\":1}\n"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}

	if !strings.HasPrefix(got, "Table \"apples\"") {
		t.Error("tables must render in sorted order")
	}
}

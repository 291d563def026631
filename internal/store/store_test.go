package store

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

func TestLoadAbsentKey(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var r record
	found, err := s.Load("missing", &r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("expected found=false for absent key")
	}
}

func TestSaveLoad(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	in := record{Name: "monday", Hours: 7.6}
	if err := s.Save("day", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out record
	found, err := s.Load("day", &out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("expected record to exist")
	}
	if out != in {
		t.Fatalf("Load = %+v, want %+v", out, in)
	}
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save("day", record{Name: "first", Hours: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("day", record{Name: "second", Hours: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var out record
	if _, err := s.Load("day", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Name != "second" || out.Hours != 2 {
		t.Fatalf("Load = %+v, want the second record", out)
	}
}

func TestDeleteAndReset(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Delete("never-existed"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}

	for _, key := range []string{"a", "b"} {
		if err := s.Save(key, record{Name: key}); err != nil {
			t.Fatalf("Save(%s): %v", key, err)
		}
	}
	if err := s.Reset("a", "b"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for _, key := range []string{"a", "b"} {
		if _, err := os.Stat(filepath.Join(dir, key+".json")); !os.IsNotExist(err) {
			t.Fatalf("expected %s.json to be gone", key)
		}
	}
}

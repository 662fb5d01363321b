package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"jarvis-assistant/pkg/kvstore"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var out []record
	found, err := s.Get("anything", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected key to be absent in a fresh store")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	in := []record{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}
	if err := s.Set("records", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out []record
	found, err := s.Get("records", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected key to be present")
	}
	if len(out) != 2 || out[0].Name != "one" || out[1].ID != "2" {
		t.Errorf("unexpected value: %+v", out)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s1, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s1.Set("records", []record{{ID: "1", Name: "kept"}}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s2, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var out []record
	found, err := s2.Get("records", &out)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !found || len(out) != 1 || out[0].Name != "kept" {
		t.Errorf("value not persisted: found=%t value=%+v", found, out)
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Set("records", []record{{ID: "1"}}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete("records"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var out []record
	found, err := s.Get("records", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected key to be gone after Delete")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := kvstore.Open(path); err == nil {
		t.Error("expected error for corrupt store file")
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func discardLog(_ string, _ ...any) {}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir(), discardLog)
	st.Save("sample", payload{Name: "owl", Count: 3})

	var out payload
	if !st.Load("sample", &out) {
		t.Fatal("expected load to succeed")
	}
	if out.Name != "owl" || out.Count != 3 {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestLoadMissingKeepsDefault(t *testing.T) {
	st := New(t.TempDir(), discardLog)
	out := payload{Name: "default", Count: 7}
	if st.Load("absent", &out) {
		t.Fatal("expected load to fail for a missing key")
	}
	if out.Name != "default" || out.Count != 7 {
		t.Fatalf("default was clobbered: %+v", out)
	}
}

func TestLoadTamperedKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, discardLog)
	st.Save("sample", payload{Name: "owl", Count: 3})

	path := filepath.Join(dir, keyPrefix+"sample")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read state file: %v", err)
	}
	// Flip a byte inside the encoded value.
	data[len(data)/2] ^= 0x01
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to rewrite state file: %v", err)
	}

	out := payload{Name: "default", Count: 7}
	if st.Load("sample", &out) {
		t.Fatal("expected load to fail for a tampered entry")
	}
	if out.Name != "default" || out.Count != 7 {
		t.Fatalf("default was clobbered: %+v", out)
	}
}

func TestLoadGarbageKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, discardLog)
	if err := os.WriteFile(filepath.Join(dir, keyPrefix+"sample"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}
	var out payload
	if st.Load("sample", &out) {
		t.Fatal("expected load to fail for garbage content")
	}
}

func TestRemove(t *testing.T) {
	st := New(t.TempDir(), discardLog)
	st.Save("sample", payload{Name: "owl"})
	st.Remove("sample")
	var out payload
	if st.Load("sample", &out) {
		t.Fatal("expected load to fail after remove")
	}
	// Removing again is a no-op.
	st.Remove("sample")
}

func TestChecksumMatchesKnownValue(t *testing.T) {
	// Same input must always produce the same checksum; different input a
	// different one.
	a := checksum(`{"coins":10}`)
	b := checksum(`{"coins":10}`)
	c := checksum(`{"coins":11}`)
	if a != b {
		t.Fatalf("checksum not deterministic: %q vs %q", a, b)
	}
	if a == c {
		t.Fatal("checksum collision on differing input")
	}
}

// Package storage provides the obfuscated key/value state store.
package storage

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf16"
)

const (
	keyPrefix = "rq_"
	salt      = "readquest_2024"
)

// envelope wraps an encoded value with its integrity checksum.
type envelope struct {
	D string `json:"d"`
	C string `json:"c"`
}

// Store persists JSON values as checksummed files in a single directory.
// Save and Remove never report errors to the caller; failures are logged and
// the reading experience carries on without durability.
type Store struct {
	dir  string
	logf func(format string, args ...any)
}

// New creates a store rooted at dir. logf may be nil to log to stderr.
func New(dir string, logf func(format string, args ...any)) *Store {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Store{dir: dir, logf: logf}
}

// Save writes value under key, replacing any previous entry.
func (s *Store) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logf("failed to save %s: %v", key, err)
		return
	}
	payload, err := json.Marshal(envelope{D: encode(data), C: checksum(string(data))})
	if err != nil {
		s.logf("failed to save %s: %v", key, err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logf("failed to save %s: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), payload, 0o644); err != nil {
		s.logf("failed to save %s: %v", key, err)
	}
}

// Load reads the value stored under key into out. It returns false when the
// entry is missing, unreadable, or fails the integrity check; out is left
// untouched so the caller's default survives. A tampered entry is
// indistinguishable from an absent one.
func (s *Store) Load(key string, out any) bool {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logf("failed to load %s: %v", key, err)
		}
		return false
	}
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		s.logf("failed to load %s: %v", key, err)
		return false
	}
	data, err := decode(env.D)
	if err != nil {
		s.logf("failed to load %s: %v", key, err)
		return false
	}
	if checksum(string(data)) != env.C {
		s.logf("integrity check failed for %s, resetting to default", key)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logf("failed to load %s: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the entry for key, if any.
func (s *Store) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logf("failed to remove %s: %v", key, err)
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, keyPrefix+key)
}

// encode reverses the base64 form of data. Discourages casual tampering only.
func encode(data []byte) string {
	return reverse(base64.StdEncoding.EncodeToString(data))
}

func decode(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(reverse(encoded))
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// checksum computes a salted 31-bit rolling hash rendered in base 36.
func checksum(data string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(data + salt)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the default profile store filename, resolved against
// the working directory.
const DefaultStoreFile = "trim_profiles.json"

// Store is an insertion-ordered collection of named profiles backed by a
// single JSON document mapping profile name to profile. The on-disk key
// order is the display order for interactive selection.
type Store struct {
	path     string
	names    []string
	profiles map[string]Profile
}

// Open reads the store at path. A missing file yields an empty store; it is
// created on the first Save.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		profiles: make(map[string]Profile),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read profile store: %w", err)
	}
	if err := s.decode(data); err != nil {
		return nil, fmt.Errorf("parse profile store %s: %w", path, err)
	}
	return s, nil
}

// decode reads the name-to-profile object token by token so the file's key
// order is preserved.
func (s *Store) decode(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read profile name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected profile name, got %v", keyTok)
		}
		var p Profile
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("parse profile %q: %w", name, err)
		}
		if _, exists := s.profiles[name]; !exists {
			s.names = append(s.names, name)
		}
		s.profiles[name] = p
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read closing token: %w", err)
	}
	return nil
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.names)
}

// Names returns profile names in insertion order.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Set adds or wholesale-replaces the named profile. A new name is appended
// to the display order; replacing keeps the original position.
func (s *Store) Set(name string, p Profile) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validate profile %q: %w", name, err)
	}
	if _, exists := s.profiles[name]; !exists {
		s.names = append(s.names, name)
	}
	s.profiles[name] = p
	return nil
}

// Delete removes the named profile, reporting whether it existed.
func (s *Store) Delete(name string) bool {
	if _, ok := s.profiles[name]; !ok {
		return false
	}
	delete(s.profiles, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Save writes the store back to its file, creating parent directories as
// needed. Profiles are written in insertion order with four-space indent.
func (s *Store) Save() error {
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("encode profile store: %w", err)
	}
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write profile store: %w", err)
	}
	return nil
}

// encode writes the ordered name-to-profile object by hand; the standard
// marshaler would sort map keys and lose the insertion order.
func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, name := range s.names {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		val, err := json.MarshalIndent(s.profiles[name], "    ", "    ")
		if err != nil {
			return nil, fmt.Errorf("marshal profile %q: %w", name, err)
		}
		buf.Write(val)
	}
	if len(s.names) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

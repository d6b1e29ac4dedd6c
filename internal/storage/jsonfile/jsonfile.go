// Package jsonfile persists the character store as a single JSON document.
//
// The whole store round-trips through one file. Loading fails open: a
// missing, unreadable or unparseable file yields an empty store rather than
// an error, so a fresh deployment starts from a blank sheet. Saving always
// rewrites the full file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/louisbranch/dicebot/internal/character"
)

// Load reads the store at path. Any read or decode failure is recovered
// locally as an empty store and never surfaced.
func Load(path string) *character.Store {
	data, err := os.ReadFile(path)
	if err != nil {
		return character.NewStore()
	}

	var store character.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return character.NewStore()
	}
	if store.Characters == nil {
		store.Characters = []*character.Character{}
	}
	return &store
}

// Save serializes the entire store and replaces the file at path.
//
// The store is written to a temporary file in the target directory and
// renamed into place, so a failed save leaves the prior file untouched.
func Save(path string, store *character.Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("encode character store: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write character store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close character store: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace character store: %w", err)
	}
	return nil
}

// Package character defines player characters and the in-memory store the
// roller reads attribute values from.
package character

import "strings"

// Health tracks a character's health boxes. The damage fields are expected
// to sum to at most Max; the store does not enforce it.
type Health struct {
	Max        uint64 `json:"max"`
	Bashing    uint64 `json:"bashing"`
	Lethal     uint64 `json:"lethal"`
	Aggravated uint64 `json:"aggravated"`
}

// Character is a single player character.
//
// Stat keys are stored lower-cased, so lookups are case-insensitive.
// Character names, by contrast, match exact-case in the store; the
// asymmetry is deliberate and mirrors how sheets have always behaved.
type Character struct {
	Name   string           `json:"name"`
	Stats  map[string]int64 `json:"stats"`
	Health Health           `json:"health,omitzero"`
}

// New creates a character with empty stats and zero health.
func New(name string) *Character {
	return &Character{
		Name:  name,
		Stats: map[string]int64{},
	}
}

// GetValue looks up a stat by key, case-insensitively.
//
// A missing key is not an error: it reports found=false with a zero value,
// so callers can tell an absent stat apart from one stored as 0.
func (c *Character) GetValue(key string) (bool, int64) {
	value, ok := c.Stats[strings.ToLower(key)]
	if !ok {
		return false, 0
	}
	return true, value
}

// SetValue stores value under the lower-cased key, overwriting any prior
// value.
func (c *Character) SetValue(key string, value int64) {
	if c.Stats == nil {
		c.Stats = map[string]int64{}
	}
	c.Stats[strings.ToLower(key)] = value
}

// Store is an ordered collection of characters, at most one per distinct
// name string.
type Store struct {
	Characters []*Character `json:"characters"`
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Characters: []*Character{}}
}

// Get returns the character with the exact-case name, if present.
func (s *Store) Get(name string) (*Character, bool) {
	for _, c := range s.Characters {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// GetOrCreate returns the character with the exact-case name, appending a
// new one with empty stats and zero health when absent.
func (s *Store) GetOrCreate(name string) *Character {
	if c, ok := s.Get(name); ok {
		return c
	}
	c := New(name)
	s.Characters = append(s.Characters, c)
	return c
}

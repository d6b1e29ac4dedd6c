package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/dicebot/internal/character"
)

// TestLoadMissingFile ensures a missing file yields an empty, usable store.
func TestLoadMissingFile(t *testing.T) {
	store := Load(filepath.Join(t.TempDir(), "absent.json"))
	if len(store.Characters) != 0 {
		t.Fatalf("expected empty store, got %d characters", len(store.Characters))
	}

	c := store.GetOrCreate("Paul")
	c.SetValue("foo", 1)
	if found, value := c.GetValue("foo"); !found || value != 1 {
		t.Fatalf("GetValue(foo) = (%v, %d), want (true, 1)", found, value)
	}
}

// TestLoadCorruptFile ensures unparseable content is recovered as an empty
// store rather than an error.
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := Load(path)
	if len(store.Characters) != 0 {
		t.Fatalf("expected empty store, got %d characters", len(store.Characters))
	}
}

// TestLoadExistingStore ensures a persisted sheet is read back with its
// stats intact.
func TestLoadExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `{
		"characters": [
			{
				"name": "Paul Roberts",
				"stats": {
					"intelligence": 1,
					"wits": 3,
					"resolve": 3,
					"strength": 3,
					"dexterity": 3,
					"stamina": 2,
					"presence": 2,
					"manipulation": 1,
					"composure": 3,
					"academics": 0
				}
			}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write store file: %v", err)
	}

	store := Load(path)
	if len(store.Characters) != 1 {
		t.Fatalf("expected 1 character, got %d", len(store.Characters))
	}
	if len(store.Characters[0].Stats) != 10 {
		t.Fatalf("expected 10 stats, got %d", len(store.Characters[0].Stats))
	}

	c, ok := store.Get("Paul Roberts")
	if !ok {
		t.Fatal("character not found by exact name")
	}
	if found, value := c.GetValue("wits"); !found || value != 3 {
		t.Fatalf("GetValue(wits) = (%v, %d), want (true, 3)", found, value)
	}
}

// TestSavePersistedText ensures the persisted layout matches the documented
// wire format exactly.
func TestSavePersistedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")

	c := character.New("A")
	c.SetValue("a", 100)
	store := &character.Store{Characters: []*character.Character{c}}

	if err := Save(path, store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved store: %v", err)
	}
	want := `{"characters":[{"name":"A","stats":{"a":100}}]}`
	if string(data) != want {
		t.Fatalf("persisted text = %s, want %s", data, want)
	}
}

// TestSaveRoundTrip ensures saving and reloading reproduces an equivalent
// store.
func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	store := character.NewStore()
	c := store.GetOrCreate("A")
	c.SetValue("a", 100)
	c.Health = character.Health{Max: 7, Bashing: 1}

	if err := Save(path, store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(path)
	got, ok := loaded.Get("A")
	if !ok {
		t.Fatal("character missing after reload")
	}
	if found, value := got.GetValue("a"); !found || value != 100 {
		t.Fatalf("GetValue(a) = (%v, %d), want (true, 100)", found, value)
	}
	if got.Health != c.Health {
		t.Fatalf("health = %+v, want %+v", got.Health, c.Health)
	}
}

// TestSaveLeavesPriorFileOnFailure ensures a failed save does not clobber
// the existing store file.
func TestSaveLeavesPriorFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	prior := `{"characters":[]}`
	if err := os.WriteFile(path, []byte(prior), 0o644); err != nil {
		t.Fatalf("write prior file: %v", err)
	}

	// Saving into a missing directory must fail without touching the
	// original file.
	if err := Save(filepath.Join(dir, "missing", "data.json"), character.NewStore()); err == nil {
		t.Fatal("expected save into missing directory to fail")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read prior file: %v", err)
	}
	if string(data) != prior {
		t.Fatalf("prior file changed: %s", data)
	}
}

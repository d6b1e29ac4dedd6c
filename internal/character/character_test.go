package character

import "testing"

// TestGetSetValue ensures stat keys are case-folded and overwritten in place.
func TestGetSetValue(t *testing.T) {
	c := New("A")
	if c.Name != "A" {
		t.Fatalf("expected name A, got %q", c.Name)
	}
	if len(c.Stats) != 0 {
		t.Fatalf("expected empty stats, got %d entries", len(c.Stats))
	}

	c.SetValue("a", 5)
	c.SetValue("a", 10)
	c.SetValue("b", 5)

	if len(c.Stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(c.Stats))
	}
	if found, value := c.GetValue("a"); !found || value != 10 {
		t.Fatalf("GetValue(a) = (%v, %d), want (true, 10)", found, value)
	}
	if found, value := c.GetValue("b"); !found || value != 5 {
		t.Fatalf("GetValue(b) = (%v, %d), want (true, 5)", found, value)
	}
	if found, value := c.GetValue("c"); found || value != 0 {
		t.Fatalf("GetValue(c) = (%v, %d), want (false, 0)", found, value)
	}
}

// TestGetValueCaseFolding ensures lookups ignore key casing while stored
// keys stay lower-cased.
func TestGetValueCaseFolding(t *testing.T) {
	c := New("A")
	c.SetValue("Strength", 3)

	if found, value := c.GetValue("strength"); !found || value != 3 {
		t.Fatalf("GetValue(strength) = (%v, %d), want (true, 3)", found, value)
	}
	if found, value := c.GetValue("STRENGTH"); !found || value != 3 {
		t.Fatalf("GetValue(STRENGTH) = (%v, %d), want (true, 3)", found, value)
	}
	if _, ok := c.Stats["Strength"]; ok {
		t.Fatal("stat key stored with original casing")
	}
}

// TestSetValueNilStats ensures characters decoded without a stats object
// can still be edited.
func TestSetValueNilStats(t *testing.T) {
	c := &Character{Name: "A"}
	c.SetValue("foo", 1)
	if found, value := c.GetValue("foo"); !found || value != 1 {
		t.Fatalf("GetValue(foo) = (%v, %d), want (true, 1)", found, value)
	}
}

// TestStoreGetOrCreate ensures a missing character is created with empty
// stats and becomes editable.
func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore()
	c := s.GetOrCreate("Paul")

	if found, value := c.GetValue("foo"); found || value != 0 {
		t.Fatalf("GetValue(foo) = (%v, %d), want (false, 0)", found, value)
	}

	c.SetValue("foo", 1)

	if found, value := c.GetValue("foo"); !found || value != 1 {
		t.Fatalf("GetValue(foo) = (%v, %d), want (true, 1)", found, value)
	}
	if len(s.Characters) != 1 {
		t.Fatalf("expected 1 character in store, got %d", len(s.Characters))
	}
	if again := s.GetOrCreate("Paul"); again != c {
		t.Fatal("GetOrCreate created a duplicate character")
	}
}

// TestStoreGetExactCase ensures name lookup is exact-case: names differing
// only by case identify distinct characters.
func TestStoreGetExactCase(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("Paul")

	if _, ok := s.Get("paul"); ok {
		t.Fatal("expected case-sensitive lookup to miss")
	}
	s.GetOrCreate("paul")
	if len(s.Characters) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(s.Characters))
	}
}

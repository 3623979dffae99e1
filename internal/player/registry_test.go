package player

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"Alice", "Alice"},
		{"  Alice  ", "Alice"},
		{"Bob   Jones", "Bob Jones"},
		{"\tBob \t Jones\n", "Bob Jones"},
		{"   ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEnsure_CreatesZeroedStats(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	ps, err := r.Ensure("  Alice  Smith ")
	if err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}
	if ps.Name != "Alice Smith" {
		t.Errorf("name = %q, want normalized %q", ps.Name, "Alice Smith")
	}
	if ps.Score != 0 || ps.Wins != 0 || ps.Losses != 0 || ps.Ties != 0 || ps.GamesPlayed != 0 {
		t.Errorf("new player has nonzero counters: %+v", ps)
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	first, err := r.Ensure("Alice")
	if err != nil {
		t.Fatal(err)
	}
	first.Wins = 3

	second, err := r.Ensure(" Alice ")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Ensure must return the same record for the same normalized name")
	}
	if second.Wins != 3 {
		t.Error("re-registering must not reset counters")
	}
	if r.Len() != 1 {
		t.Errorf("registry has %d players, want 1", r.Len())
	}
}

func TestEnsure_EmptyName(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := r.Ensure(name); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Ensure(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
	if r.Len() != 0 {
		t.Error("failed Ensure must not create players")
	}
}

func TestGet_NormalizesLookup(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if _, err := r.Ensure("Bob Jones"); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.Get("  Bob   Jones "); !ok {
		t.Error("Get should find players via normalized lookup")
	}
	if _, ok := r.Get("bob jones"); ok {
		t.Error("names are case-sensitive")
	}
}

func TestSnapshot_CopiesInRegistrationOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	for _, name := range []string{"Zoe", "Alice", "Mallory"} {
		if _, err := r.Ensure(name); err != nil {
			t.Fatal(err)
		}
	}

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot has %d entries, want 3", len(snap))
	}
	for i, want := range []string{"Zoe", "Alice", "Mallory"} {
		if snap[i].Name != want {
			t.Errorf("snapshot[%d] = %q, want %q (registration order)", i, snap[i].Name, want)
		}
	}

	snap[0].Score = 99
	if ps, _ := r.Get("Zoe"); ps.Score != 0 {
		t.Error("snapshot entries must be copies")
	}
}

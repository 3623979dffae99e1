package matchid

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()
	id := New()
	if len(id) != Length {
		t.Fatalf("ID length = %d, want %d", len(id), Length)
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID %q failed validation: %v", id, err)
	}
}

func TestNew_Unique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestGenerator_TimeOrdered(t *testing.T) {
	t.Parallel()
	zeros := bytes.NewReader(make([]byte, 64))
	early := NewGeneratorWith(func() time.Time {
		return time.UnixMilli(1_000_000)
	}, zeros)
	late := NewGeneratorWith(func() time.Time {
		return time.UnixMilli(2_000_000)
	}, zeros)

	a, b := early.New(), late.New()
	if !(a < b) {
		t.Errorf("IDs not time-ordered: %q should sort before %q", a, b)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()
	now := func() time.Time { return time.UnixMilli(42) }

	g1 := NewGeneratorWith(now, bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	g2 := NewGeneratorWith(now, bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	if g1.New() != g2.New() {
		t.Error("same time and randomness must produce the same ID")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id string
		ok bool
	}{
		{strings.Repeat("0", Length), true},
		{strings.Repeat("z", Length), true},
		{strings.Repeat("0", Length-1), false},
		{strings.Repeat("0", Length+1), false},
		{strings.Repeat("u", Length), false}, // 'u' is not in Crockford's alphabet
		{strings.Repeat("A", Length), false}, // uppercase rejected
		{"", false},
	}

	for _, tc := range cases {
		err := Validate(tc.id)
		if tc.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tc.id, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tc.id)
		}
	}
}

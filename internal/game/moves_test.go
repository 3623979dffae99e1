package game

import (
	"errors"
	"testing"
)

func TestResolve_AllValidPairs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		m1, m2 string
		want   Outcome
	}{
		{"rock", "rock", Tie},
		{"rock", "paper", SecondWins},
		{"rock", "scissors", FirstWins},
		{"paper", "rock", FirstWins},
		{"paper", "paper", Tie},
		{"paper", "scissors", SecondWins},
		{"scissors", "rock", SecondWins},
		{"scissors", "paper", FirstWins},
		{"scissors", "scissors", Tie},
	}

	for _, tc := range cases {
		got, err := Resolve(tc.m1, tc.m2)
		if err != nil {
			t.Errorf("Resolve(%q, %q) returned error: %v", tc.m1, tc.m2, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%q, %q) = %v, want %v", tc.m1, tc.m2, got, tc.want)
		}
	}
}

func TestResolve_MirrorSymmetry(t *testing.T) {
	t.Parallel()
	moves := []string{"rock", "paper", "scissors"}
	mirror := map[Outcome]Outcome{Tie: Tie, FirstWins: SecondWins, SecondWins: FirstWins}

	for _, a := range moves {
		for _, b := range moves {
			fwd, err := Resolve(a, b)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) returned error: %v", a, b, err)
			}
			rev, err := Resolve(b, a)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) returned error: %v", b, a, err)
			}
			if rev != mirror[fwd] {
				t.Errorf("Resolve(%q, %q) = %v but Resolve(%q, %q) = %v", a, b, fwd, b, a, rev)
			}
		}
	}
}

func TestResolve_Normalization(t *testing.T) {
	t.Parallel()
	// Mixed case with trailing space still resolves; paper beats rock.
	got, err := Resolve(" Rock ", "paper")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != SecondWins {
		t.Errorf("Resolve(\" Rock \", \"paper\") = %v, want SecondWins", got)
	}

	got, err = Resolve("SCISSORS", "\tpaper\n")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != FirstWins {
		t.Errorf("Resolve(\"SCISSORS\", \"\\tpaper\\n\") = %v, want FirstWins", got)
	}
}

func TestResolve_InvalidMoves(t *testing.T) {
	t.Parallel()
	cases := []struct{ m1, m2 string }{
		{"lizard", "rock"},
		{"rock", "spock"},
		{"", "rock"},
		{"rock", ""},
		{"", ""},
		{"lizard", "spock"},
	}

	for _, tc := range cases {
		if _, err := Resolve(tc.m1, tc.m2); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Resolve(%q, %q) error = %v, want ErrInvalidMove", tc.m1, tc.m2, err)
		}
	}
}

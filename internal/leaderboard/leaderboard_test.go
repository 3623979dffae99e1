package leaderboard

import (
	"testing"

	"github.com/lox/rpsarena/internal/player"
)

func names(players []player.Stats) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRender_ByName(t *testing.T) {
	t.Parallel()
	snapshot := []player.Stats{
		{Name: "zoe"},
		{Name: "Alice"},
		{Name: "mallory"},
		{Name: "Bob"},
	}

	view := Render(snapshot)
	want := []string{"Alice", "Bob", "mallory", "zoe"}
	if got := names(view.ByName); !equal(got, want) {
		t.Errorf("by_name = %v, want %v", got, want)
	}
}

func TestRender_ByNameCaseInsensitiveStable(t *testing.T) {
	t.Parallel()
	// "ALICE" and "alice" fold to the same key; the stable sort keeps
	// their registration order.
	snapshot := []player.Stats{
		{Name: "ALICE", Score: 1},
		{Name: "alice", Score: 2},
	}

	view := Render(snapshot)
	if view.ByName[0].Name != "ALICE" || view.ByName[1].Name != "alice" {
		t.Errorf("by_name = %v, want registration order for equal folded names", names(view.ByName))
	}
}

func TestRender_ByScore(t *testing.T) {
	t.Parallel()
	snapshot := []player.Stats{
		{Name: "low", Score: 1, Wins: 1},
		{Name: "high", Score: 9, Wins: 9},
		{Name: "mid-more-wins", Score: 5, Wins: 7},
		{Name: "mid", Score: 5, Wins: 2},
	}

	view := Render(snapshot)
	want := []string{"high", "mid-more-wins", "mid", "low"}
	if got := names(view.ByScore); !equal(got, want) {
		t.Errorf("by_score = %v, want %v", got, want)
	}
}

// by_score is produced by an ascending stable sort followed by a full
// reversal, so players sharing an identical (score, wins) key come out
// in reverse registration order. This pins the exact procedure; a
// stable descending sort would give the opposite order here.
func TestRender_ByScoreEqualKeysReversed(t *testing.T) {
	t.Parallel()
	snapshot := []player.Stats{
		{Name: "first", Score: 3, Wins: 3},
		{Name: "second", Score: 3, Wins: 3},
		{Name: "third", Score: 3, Wins: 3},
	}

	view := Render(snapshot)
	want := []string{"third", "second", "first"}
	if got := names(view.ByScore); !equal(got, want) {
		t.Errorf("by_score = %v, want %v (reverse registration order)", got, want)
	}
}

func TestRender_DoesNotMutateSnapshot(t *testing.T) {
	t.Parallel()
	snapshot := []player.Stats{
		{Name: "b", Score: 1},
		{Name: "a", Score: 2},
	}

	_ = Render(snapshot)
	if snapshot[0].Name != "b" || snapshot[1].Name != "a" {
		t.Error("Render must not reorder the input snapshot")
	}
}

func TestRender_EmptySnapshot(t *testing.T) {
	t.Parallel()
	view := Render(nil)
	if view.ByName == nil || view.ByScore == nil {
		t.Error("empty views must be non-nil so they serialize as []")
	}
	if len(view.ByName) != 0 || len(view.ByScore) != 0 {
		t.Error("empty snapshot must render empty views")
	}
}

// Package leaderboard projects registry snapshots into the two sort
// orders served by the API.
package leaderboard

import (
	"sort"
	"strings"

	"github.com/lox/rpsarena/internal/player"
)

// View holds both orderings of the same snapshot.
type View struct {
	ByName  []player.Stats `json:"by_name"`
	ByScore []player.Stats `json:"by_score"`
}

// Render sorts a registry snapshot two ways without mutating it.
//
// ByName is a stable ascending, case-insensitive sort on name, so
// players sharing a folded name keep their registration order.
//
// ByScore is a stable ascending sort on (score, wins) followed by a
// full reversal. The exact procedure matters: for players sharing an
// identical (score, wins) key it yields the reverse of their
// registration order, which a stable descending sort would not.
func Render(players []player.Stats) View {
	byName := make([]player.Stats, len(players))
	copy(byName, players)
	sort.SliceStable(byName, func(i, j int) bool {
		return strings.ToLower(byName[i].Name) < strings.ToLower(byName[j].Name)
	})

	byScore := make([]player.Stats, len(players))
	copy(byScore, players)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].Score != byScore[j].Score {
			return byScore[i].Score < byScore[j].Score
		}
		return byScore[i].Wins < byScore[j].Wins
	})
	reverse(byScore)

	return View{ByName: byName, ByScore: byScore}
}

func reverse(s []player.Stats) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

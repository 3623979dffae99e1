package player

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a player name normalizes to the empty
// string. The message is part of the JSON API contract.
var ErrEmptyName = errors.New("Player name cannot be empty.")

// Stats holds the cumulative career statistics for one player. Wins,
// losses and ties are counted per round; games_played per completed
// match. Counters are mutated only by the match engine.
type Stats struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Ties        int    `json:"ties"`
	GamesPlayed int    `json:"games_played"`
}

// NormalizeName trims a name and collapses internal whitespace runs to a
// single space. The result is the registry key.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Registry maps normalized player names to their stats. Players are
// created on first reference and never deleted. Insertion order is
// preserved because the leaderboard tie-breaks on it.
type Registry struct {
	players map[string]*Stats
	order   []string
}

// NewRegistry creates an empty player registry.
func NewRegistry() *Registry {
	return &Registry{players: make(map[string]*Stats)}
}

// Ensure returns the stats record for name, creating a zeroed record on
// first reference. Re-registering an existing name returns the existing
// record unchanged.
func (r *Registry) Ensure(name string) (*Stats, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if ps, ok := r.players[name]; ok {
		return ps, nil
	}
	ps := &Stats{Name: name}
	r.players[name] = ps
	r.order = append(r.order, name)
	return ps, nil
}

// Get looks up a player by name without creating one.
func (r *Registry) Get(name string) (*Stats, bool) {
	ps, ok := r.players[NormalizeName(name)]
	return ps, ok
}

// Len returns the number of registered players.
func (r *Registry) Len() int {
	return len(r.players)
}

// Snapshot returns copies of every stats record in registration order.
func (r *Registry) Snapshot() []Stats {
	out := make([]Stats, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.players[name])
	}
	return out
}

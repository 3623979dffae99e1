package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/rpsarena/internal/matchid"
	"github.com/lox/rpsarena/internal/player"
)

// MaxRounds is the fixed length of every match.
const MaxRounds = 10

// RoundRecord is one entry of a match's round history. Moves are kept
// exactly as submitted; only resolution normalizes them.
type RoundRecord struct {
	Round       int    `json:"round"`
	P1Move      string `json:"p1_move"`
	P2Move      string `json:"p2_move"`
	RoundWinner string `json:"round_winner,omitempty"`
}

// Summary is the externally visible projection of the match state.
// Winner and OverallTie are derived, never stored.
type Summary struct {
	Active           bool          `json:"active"`
	Round            int           `json:"round"`
	MaxRounds        int           `json:"max_rounds"`
	P1               string        `json:"p1,omitempty"`
	P2               string        `json:"p2,omitempty"`
	P1RoundWins      int           `json:"p1_round_wins"`
	P2RoundWins      int           `json:"p2_round_wins"`
	Winner           string        `json:"winner,omitempty"`
	OverallTie       bool          `json:"overall_tie"`
	LockedWinnerAsP1 bool          `json:"locked_winner_as_p1"`
	RoundHistory     []RoundRecord `json:"round_history"`
}

// Engine is the state machine for the single process-wide match. It owns
// every mutation of the match state and of player stats in the registry.
// The engine itself does no locking; callers serialize access.
type Engine struct {
	registry *player.Registry
	logger   *log.Logger
	ids      *matchid.Generator

	matchID          string
	active           bool
	round            int
	p1, p2           string
	p1RoundWins      int
	p2RoundWins      int
	history          []RoundRecord
	lockedWinnerAsP1 bool
}

// NewEngine creates an idle engine backed by the given registry.
func NewEngine(registry *player.Registry, logger *log.Logger) *Engine {
	return &Engine{
		registry: registry,
		logger:   logger.WithPrefix("engine"),
		ids:      matchid.NewGenerator(),
		history:  []RoundRecord{},
	}
}

// MatchID returns the identifier of the current (or last) match, or ""
// if no match was ever started. IDs exist for observability only and
// never appear in API responses.
func (e *Engine) MatchID() string {
	return e.matchID
}

// StartMatch begins a new best-of-MaxRounds match between two named
// players, resetting all per-match state. When the previous match
// finished with the carry-forward lock set, the caller-supplied p1 is
// overridden by the carried-forward name; p2 is taken as given.
//
// Validation happens before any side effect: on error the registry and
// the previous match state are untouched.
func (e *Engine) StartMatch(p1Name, p2Name string) (Summary, error) {
	p1 := player.NormalizeName(p1Name)
	p2 := player.NormalizeName(p2Name)

	if e.lockedWinnerAsP1 && e.p1 != "" {
		p1 = e.p1
	}

	if p1 == "" || p2 == "" || p1 == p2 {
		return Summary{}, ErrInvalidPlayers
	}

	if _, err := e.registry.Ensure(p1); err != nil {
		return Summary{}, ErrInvalidPlayers
	}
	if _, err := e.registry.Ensure(p2); err != nil {
		return Summary{}, ErrInvalidPlayers
	}

	e.matchID = e.ids.New()
	e.active = true
	e.round = 0
	e.p1 = p1
	e.p2 = p2
	e.p1RoundWins = 0
	e.p2RoundWins = 0
	e.history = []RoundRecord{}
	e.lockedWinnerAsP1 = false

	e.logger.Info("Match started", "match", e.matchID, "p1", p1, "p2", p2, "maxRounds", MaxRounds)
	return e.Summary(), nil
}

// PlayRound resolves one pair of submitted moves, updates the match and
// both players' career stats, and finalizes the match when the last
// round has been played. A rejected call leaves all state unchanged.
func (e *Engine) PlayRound(p1Move, p2Move string) (Summary, error) {
	if !e.active {
		return Summary{}, ErrNoActiveMatch
	}
	// Unreachable given finalize-on-last-round, but checked anyway.
	if e.round >= MaxRounds {
		return Summary{}, ErrMatchFinished
	}

	outcome, err := Resolve(p1Move, p2Move)
	if err != nil {
		return Summary{}, err
	}

	ps1, err := e.registry.Ensure(e.p1)
	if err != nil {
		return Summary{}, err
	}
	ps2, err := e.registry.Ensure(e.p2)
	if err != nil {
		return Summary{}, err
	}

	e.round++
	rec := RoundRecord{Round: e.round, P1Move: p1Move, P2Move: p2Move}

	switch outcome {
	case FirstWins:
		e.p1RoundWins++
		ps1.Score++
		ps1.Wins++
		ps2.Losses++
		rec.RoundWinner = e.p1
	case SecondWins:
		e.p2RoundWins++
		ps2.Score++
		ps2.Wins++
		ps1.Losses++
		rec.RoundWinner = e.p2
	case Tie:
		ps1.Ties++
		ps2.Ties++
	}

	e.history = append(e.history, rec)

	e.logger.Debug("Round played",
		"match", e.matchID,
		"round", e.round,
		"p1Move", p1Move,
		"p2Move", p2Move,
		"outcome", outcome)

	if e.round == MaxRounds {
		e.finalize(ps1, ps2)
	}

	return e.Summary(), nil
}

// finalize closes out the match after the last round. The winner (or
// the original p1 on an overall tie) keeps the table: it becomes the
// surviving p1 and the carry-forward lock is set, so the next StartMatch
// reuses it regardless of the caller-supplied p1.
func (e *Engine) finalize(ps1, ps2 *player.Stats) {
	ps1.GamesPlayed++
	ps2.GamesPlayed++
	e.active = false

	lockedP1 := e.p1
	if w := e.winner(); w != "" {
		lockedP1 = w
	}

	e.p1 = lockedP1
	e.p2 = ""
	e.lockedWinnerAsP1 = true

	e.logger.Info("Match finished",
		"match", e.matchID,
		"winner", lockedP1,
		"p1RoundWins", e.p1RoundWins,
		"p2RoundWins", e.p2RoundWins)
}

// winner recomputes the overall winner from the round-win counters. A
// finished match clears p2, so a p2 round-win majority resolves to the
// surviving p1 slot, which holds that winner after finalization.
func (e *Engine) winner() string {
	if e.round < MaxRounds {
		return ""
	}
	switch {
	case e.p1RoundWins > e.p2RoundWins:
		return e.p1
	case e.p2RoundWins > e.p1RoundWins:
		if e.p2 != "" {
			return e.p2
		}
		return e.p1
	}
	return ""
}

// Summary projects the current match state. It is pure: calling it any
// number of times changes nothing.
func (e *Engine) Summary() Summary {
	history := make([]RoundRecord, len(e.history))
	copy(history, e.history)

	w := e.winner()
	return Summary{
		Active:           e.active,
		Round:            e.round,
		MaxRounds:        MaxRounds,
		P1:               e.p1,
		P2:               e.p2,
		P1RoundWins:      e.p1RoundWins,
		P2RoundWins:      e.p2RoundWins,
		Winner:           w,
		OverallTie:       e.round == MaxRounds && w == "",
		LockedWinnerAsP1: e.lockedWinnerAsP1,
		RoundHistory:     history,
	}
}

package game

import "errors"

// Validation failures surfaced by the engine. The messages are part of
// the JSON API contract and reach clients verbatim, hence the unusual
// capitalization and punctuation.
var (
	ErrInvalidMove    = errors.New("Moves must be rock, paper, or scissors.")
	ErrInvalidPlayers = errors.New("Invalid player names.")
	ErrNoActiveMatch  = errors.New("No active match.")
	ErrMatchFinished  = errors.New("Match already finished. Start the next match.")
)

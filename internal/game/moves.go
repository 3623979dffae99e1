package game

import "strings"

// Outcome is the result of resolving one round.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first_wins"
	case SecondWins:
		return "second_wins"
	default:
		return "tie"
	}
}

// beats maps each move to the move it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// NormalizeMove lowercases and trims a submitted move. Only the
// normalized form is compared; history keeps the raw submission.
func NormalizeMove(move string) string {
	return strings.ToLower(strings.TrimSpace(move))
}

// Resolve maps two submitted moves to a round outcome. Both moves are
// validated before either is compared, so an invalid second move fails
// even when the first is invalid too.
func Resolve(move1, move2 string) (Outcome, error) {
	m1 := NormalizeMove(move1)
	m2 := NormalizeMove(move2)

	if _, ok := beats[m1]; !ok {
		return Tie, ErrInvalidMove
	}
	if _, ok := beats[m2]; !ok {
		return Tie, ErrInvalidMove
	}

	if m1 == m2 {
		return Tie, nil
	}
	if beats[m1] == m2 {
		return FirstWins, nil
	}
	return SecondWins, nil
}

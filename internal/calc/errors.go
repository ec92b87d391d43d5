package calc

import (
	"fmt"

	"github.com/lox/pokerfast/internal/deck"
)

// GameError is the error taxonomy returned by Deterministic. Each variant
// is a distinct struct type rather than a sentinel, so callers can use a
// type switch to recover the offending value, matching spec.md's
// enum-of-error-kinds design.
type GameError interface {
	error
	gameError()
}

// InvalidNbPlayer reports a player count outside [2,10].
type InvalidNbPlayer struct{ N int }

func (e InvalidNbPlayer) Error() string {
	return fmt.Sprintf("invalid nb players: %d - must be between 2 and 10", e.N)
}
func (InvalidNbPlayer) gameError() {}

// InvalidPlayerCard reports a hole card outside the valid card range.
type InvalidPlayerCard struct {
	PlayerIndex int
	Card        deck.Card
}

func (e InvalidPlayerCard) Error() string {
	return fmt.Sprintf("invalid player card: %s for player %d - must be between 0 and 51", e.Card, e.PlayerIndex)
}
func (InvalidPlayerCard) gameError() {}

// InvalidNbTableCard reports a board size outside {0,3,4,5}.
type InvalidNbTableCard struct{ N int }

func (e InvalidNbTableCard) Error() string {
	return fmt.Sprintf("invalid nb table cards: %d - must be among 0, 3, 4 or 5", e.N)
}
func (InvalidNbTableCard) gameError() {}

// InvalidTableCard reports a board card outside the valid card range.
type InvalidTableCard struct {
	Position int
	Card     deck.Card
}

func (e InvalidTableCard) Error() string {
	return fmt.Sprintf("invalid table card %d: %s - must be between 0 and 51", e.Position, e.Card)
}
func (InvalidTableCard) gameError() {}

// NotDistinctCards reports that a card appears more than once across the
// players' hole cards and the board.
type NotDistinctCards struct {
	Players [][]deck.Card
	Table   []deck.Card
}

func (e NotDistinctCards) Error() string {
	return fmt.Sprintf("players: %v table: %v - all cards must be distinct", e.Players, e.Table)
}
func (NotDistinctCards) gameError() {}

// McGameError is the error taxonomy returned by MonteCarlo. It differs
// from GameError in validating the first player's hole cards separately
// from the rest, since MonteCarlo allows partially-specified ranges for
// every player except the first.
type McGameError interface {
	error
	mcGameError()
}

// McInvalidNbPlayer reports a player count outside [1,10].
type McInvalidNbPlayer struct{ N int }

func (e McInvalidNbPlayer) Error() string {
	return fmt.Sprintf("invalid nb players: %d - must be between 1 and 10", e.N)
}
func (McInvalidNbPlayer) mcGameError() {}

// InvalidFirstPlayer reports that the first player's hole cards are not
// exactly 2 in-range cards. A repeated card is reported as
// McNotDistinctCards instead.
type InvalidFirstPlayer struct{ Cards []deck.Card }

func (e InvalidFirstPlayer) Error() string {
	return fmt.Sprintf("invalid first player: %v - 2 cards between 0 and 51 must be provided", e.Cards)
}
func (InvalidFirstPlayer) mcGameError() {}

// InvalidOtherPlayer reports that a non-first player's hole cards are not
// 0, 1 or 2 in-range cards.
type InvalidOtherPlayer struct {
	Index int
	Cards []deck.Card
}

func (e InvalidOtherPlayer) Error() string {
	return fmt.Sprintf("invalid other player %d: %v - 0, 1 or 2 cards between 0 and 51 must be provided", e.Index, e.Cards)
}
func (InvalidOtherPlayer) mcGameError() {}

// McInvalidNbTableCard reports a board size outside [0,5].
type McInvalidNbTableCard struct{ N int }

func (e McInvalidNbTableCard) Error() string {
	return fmt.Sprintf("invalid nb table cards: %d - must be between 0 and 5", e.N)
}
func (McInvalidNbTableCard) mcGameError() {}

// McInvalidTableCard reports a board card outside the valid card range.
type McInvalidTableCard struct {
	Position int
	Card     deck.Card
}

func (e McInvalidTableCard) Error() string {
	return fmt.Sprintf("invalid table card %d: %s - must be between 0 and 51", e.Position, e.Card)
}
func (McInvalidTableCard) mcGameError() {}

// McNotDistinctCards reports that a card appears more than once across
// the players' (possibly partial) hole cards and the board.
type McNotDistinctCards struct {
	Players [][]deck.Card
	Table   []deck.Card
}

func (e McNotDistinctCards) Error() string {
	return fmt.Sprintf("players: %v table: %v - all cards must be distinct", e.Players, e.Table)
}
func (McNotDistinctCards) mcGameError() {}

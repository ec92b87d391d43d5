// Package calc implements the two equity engines: Deterministic, which
// enumerates every possible completion of the board exactly once, and
// MonteCarlo, which samples completions at random. Both share the same
// win/tie scoring rule (update via rank comparison, ties split evenly)
// and the same residual-deck construction (every card not already dealt
// to a player or the board).
package calc

import (
	"context"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/eval"
	"github.com/lox/pokerfast/internal/keys"
)

// HandEquity is a player's share of wins and ties across the games
// evaluated, each in [0,1]. Across all players in one call, Σ(win+tie)
// equals 1 (within floating-point tolerance).
type HandEquity struct {
	Win float64
	Tie float64
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
}

// Workers overrides how many goroutines Deterministic's and MonteCarlo's
// fan-out regions use. Zero, the default, means runtime.NumCPU().
// cmd/poker-odds sets this from internal/config.CLIConfig.Workers once at
// startup, before any engine runs.
var Workers int

// workerCount resolves Workers against upperBound (the number of
// independent units of work available to fan out), falling back to
// runtime.NumCPU() when Workers is unset and never returning more workers
// than there is work for.
func workerCount(upperBound int) int {
	n := Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > upperBound {
		n = upperBound
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Deterministic computes exact equity for 2-10 players by enumerating
// every possible completion of the board exactly once. players gives
// each player's exact 2 hole cards; board gives 0, 3, 4 or 5 known
// community cards. verbose logs elapsed time and game count at Info
// level.
func Deterministic(t *eval.TableSeven, players [][2]deck.Card, board []deck.Card, verbose bool) ([]HandEquity, error) {
	return deterministic(t, players, board, verbose, quartz.NewReal(), defaultLogger())
}

func deterministic(t *eval.TableSeven, players [][2]deck.Card, board []deck.Card, verbose bool, clock quartz.Clock, logger *log.Logger) ([]HandEquity, error) {
	start := clock.Now()

	if err := validateDeterministic(players, board); err != nil {
		return nil, err
	}

	nbPlayer := len(players)
	residual := residualDeck(flattenPairs(players), board)

	equity := make([]HandEquity, nbPlayer)
	var nbGame int64

	missing := 5 - len(board)
	switch missing {
	case 0:
		rank := make([]uint32, nbPlayer)
		hands := boardHands(players, board, nil)
		rankAll(t, hands, rank)
		updateEquity(equity, rank)
		nbGame = 1

	case 1:
		rank := make([]uint32, nbPlayer)
		for i1 := range residual {
			hands := boardHands(players, board, []deck.Card{residual[i1]})
			rankAll(t, hands, rank)
			updateEquity(equity, rank)
			nbGame++
		}

	case 2:
		rank := make([]uint32, nbPlayer)
		for i1 := range residual {
			for i2 := 0; i2 < i1; i2++ {
				hands := boardHands(players, board, []deck.Card{residual[i1], residual[i2]})
				rankAll(t, hands, rank)
				updateEquity(equity, rank)
				nbGame++
			}
		}

	case 5:
		// Zero known board cards: partition the outermost index across
		// workers. Tables are shared read-only by pointer; each worker
		// accumulates into its own local equity slice and game count,
		// merged sequentially after the join.
		nWorkers := workerCount(len(residual))

		type partial struct {
			equity []HandEquity
			nbGame int64
		}
		results := make([]partial, len(residual))

		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(nWorkers)
		for i1 := range residual {
			i1 := i1
			g.Go(func() error {
				localEquity := make([]HandEquity, nbPlayer)
				var localGames int64
				rank := make([]uint32, nbPlayer)
				for i2 := 0; i2 < i1; i2++ {
					for i3 := 0; i3 < i2; i3++ {
						for i4 := 0; i4 < i3; i4++ {
							for i5 := 0; i5 < i4; i5++ {
								hands := boardHands(players, board, []deck.Card{
									residual[i1], residual[i2], residual[i3], residual[i4], residual[i5],
								})
								rankAll(t, hands, rank)
								updateEquity(localEquity, rank)
								localGames++
							}
						}
					}
				}
				results[i1] = partial{equity: localEquity, nbGame: localGames}
				return nil
			})
		}
		_ = g.Wait()

		for _, r := range results {
			for p := range equity {
				equity[p].Win += r.equity[p].Win
				equity[p].Tie += r.equity[p].Tie
			}
			nbGame += r.nbGame
		}

	default:
		// validateDeterministic already rejected any other board size.
		panic("calc: unreachable board size")
	}

	for p := range equity {
		equity[p].Win /= float64(nbGame)
		equity[p].Tie /= float64(nbGame)
	}

	if verbose {
		logger.Info("calc: deterministic equity", "elapsed", clock.Since(start), "players", nbPlayer, "games", nbGame)
	}

	return equity, nil
}

func validateDeterministic(players [][2]deck.Card, board []deck.Card) error {
	if len(players) < 2 || len(players) > 10 {
		return InvalidNbPlayer{N: len(players)}
	}
	for i, p := range players {
		for _, c := range p {
			if int(c) >= keys.DeckSize {
				return InvalidPlayerCard{PlayerIndex: i, Card: c}
			}
		}
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return InvalidNbTableCard{N: len(board)}
	}
	for i, c := range board {
		if int(c) >= keys.DeckSize {
			return InvalidTableCard{Position: i, Card: c}
		}
	}

	seen := make(map[deck.Card]bool)
	for _, p := range players {
		for _, c := range p {
			if seen[c] {
				return NotDistinctCards{Players: pairsToSlices(players), Table: board}
			}
			seen[c] = true
		}
	}
	for _, c := range board {
		if seen[c] {
			return NotDistinctCards{Players: pairsToSlices(players), Table: board}
		}
		seen[c] = true
	}
	return nil
}

func pairsToSlices(players [][2]deck.Card) [][]deck.Card {
	out := make([][]deck.Card, len(players))
	for i, p := range players {
		out[i] = []deck.Card{p[0], p[1]}
	}
	return out
}

func flattenPairs(players [][2]deck.Card) []deck.Card {
	out := make([]deck.Card, 0, 2*len(players))
	for _, p := range players {
		out = append(out, p[0], p[1])
	}
	return out
}

// residualDeck returns every card not already dealt to a player or the
// board, in ascending wire-encoding order.
func residualDeck(dealt []deck.Card, board []deck.Card) []deck.Card {
	taken := make(map[deck.Card]bool, len(dealt)+len(board))
	for _, c := range dealt {
		taken[c] = true
	}
	for _, c := range board {
		taken[c] = true
	}
	out := make([]deck.Card, 0, keys.DeckSize-len(taken))
	for c := 0; c < keys.DeckSize; c++ {
		if !taken[deck.Card(c)] {
			out = append(out, deck.Card(c))
		}
	}
	return out
}

// boardHands assembles each player's 7-card hand from their hole cards,
// the known board and the drawn completion cards.
func boardHands(players [][2]deck.Card, board []deck.Card, drawn []deck.Card) [][7]deck.Card {
	hands := make([][7]deck.Card, len(players))
	for p, player := range players {
		hands[p][0] = player[0]
		hands[p][1] = player[1]
		i := 2
		for _, c := range board {
			hands[p][i] = c
			i++
		}
		for _, c := range drawn {
			hands[p][i] = c
			i++
		}
	}
	return hands
}

func rankAll(t *eval.TableSeven, hands [][7]deck.Card, rank []uint32) {
	for p, h := range hands {
		rank[p] = eval.Rank7(t, h)
	}
}

// updateEquity credits each player sharing the maximum rank: a sole
// maximum gets a full win, a tied maximum splits evenly among the ties.
func updateEquity(equity []HandEquity, rank []uint32) {
	maxRank := rank[0]
	nbMax := 1
	for p := 1; p < len(rank); p++ {
		switch {
		case rank[p] > maxRank:
			maxRank = rank[p]
			nbMax = 1
		case rank[p] == maxRank:
			nbMax++
		}
	}
	for p := range rank {
		if rank[p] == maxRank {
			if nbMax == 1 {
				equity[p].Win++
			} else {
				equity[p].Tie += 1.0 / float64(nbMax)
			}
		}
	}
}

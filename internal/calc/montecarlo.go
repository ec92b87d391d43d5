package calc

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/eval"
	"github.com/lox/pokerfast/internal/keys"
	"github.com/lox/pokerfast/internal/randutil"
)

// reshuffleEvery is how many games a Monte Carlo worker plays before
// reshuffling its residual deck. Between reshuffles a rolling index just
// advances through the deck and wraps, rather than drawing truly
// independent samples each game — an intentional approximation carried
// over from the reference implementation this engine is ported from, not
// a bug to "fix": it trades a small amount of sample independence for
// avoiding a full Fisher-Yates shuffle on every single game.
const reshuffleEvery = 100

// MonteCarlo estimates the first player's equity by sampling random
// completions of the board and the other players' unknown hole cards.
// The first player must have exactly 2 known cards; every other player
// may have 0, 1 or 2. nbGames is partitioned across Workers (runtime.NumCPU()
// when unset) workers, each with its own cloned residual deck and random
// source; the returned HandEquity is the unweighted mean of the workers'
// batch averages.
func MonteCarlo(t *eval.TableSeven, players [][]deck.Card, board []deck.Card, nbGames int) (HandEquity, error) {
	return monteCarlo(t, players, board, nbGames, quartz.NewReal(), defaultLogger())
}

func monteCarlo(t *eval.TableSeven, players [][]deck.Card, board []deck.Card, nbGames int, clock quartz.Clock, logger *log.Logger) (HandEquity, error) {
	start := clock.Now()

	if err := validateMonteCarlo(players, board); err != nil {
		return HandEquity{}, err
	}

	dealt := make([]deck.Card, 0)
	for _, p := range players {
		dealt = append(dealt, p...)
	}
	residual := residualDeck(dealt, board)

	nWorkers := workerCount(nbGames)
	gamesPerWorker := nbGames / nWorkers

	results := make([]HandEquity, nWorkers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < nWorkers; w++ {
		w := w
		g.Go(func() error {
			workerDeck := make([]deck.Card, len(residual))
			copy(workerDeck, residual)
			rng := randutil.New(int64(w) + 1)
			results[w] = calcBatch(t, players, board, workerDeck, gamesPerWorker, rng)
			return nil
		})
	}
	_ = g.Wait()

	var eq HandEquity
	for _, r := range results {
		eq.Win += r.Win
		eq.Tie += r.Tie
	}
	eq.Win /= float64(len(results))
	eq.Tie /= float64(len(results))

	logger.Debug("calc: monte carlo equity", "elapsed", clock.Since(start), "games", nbGames, "workers", nWorkers)

	return eq, nil
}

// calcBatch runs nbGames trials against one worker's private deck and
// random source, drawing cards via drawCards (so trials between
// reshuffles are not fully independent), and returns that worker's
// batch-average equity for player 0.
func calcBatch(t *eval.TableSeven, players [][]deck.Card, board []deck.Card, residual []deck.Card, nbGames int, rng *rand.Rand) HandEquity {
	nbPlayer := len(players)
	nbTableCard := len(board)

	nbPlayerCards := 0
	for _, p := range players {
		nbPlayerCards += len(p)
	}
	nbRndCards := 2*nbPlayer - nbPlayerCards + (5 - nbTableCard)

	rndCards := make([]deck.Card, nbRndCards)
	rank := make([]uint32, nbPlayer)
	var hand [7]deck.Card

	state := 0
	var count int

	var eq HandEquity

	for g := 0; g < nbGames; g++ {
		drawCards(rndCards, residual, &state, &count, rng)

		r := 0
		nbRndTable := 5 - nbTableCard
		rndTable := rndCards[:nbRndTable]
		r += nbRndTable

		for p, player := range players {
			switch {
			case p == 0:
				hand[0], hand[1] = player[0], player[1]
			case len(player) == 2:
				hand[0], hand[1] = player[0], player[1]
			case len(player) == 1:
				hand[0], hand[1] = player[0], rndCards[r]
				r++
			default:
				hand[0], hand[1] = rndCards[r], rndCards[r+1]
				r += 2
			}
			i := 2
			for _, c := range board {
				hand[i] = c
				i++
			}
			for _, c := range rndTable {
				hand[i] = c
				i++
			}
			rank[p] = eval.Rank7(t, hand)
		}

		maxRank := rank[0]
		nbMax := 1
		for p := 1; p < nbPlayer; p++ {
			switch {
			case rank[p] > maxRank:
				maxRank = rank[p]
				nbMax = 1
			case rank[p] == maxRank:
				nbMax++
			}
		}
		if rank[0] == maxRank {
			if nbMax == 1 {
				eq.Win++
			} else {
				eq.Tie += 1.0 / float64(nbMax)
			}
		}
	}

	eq.Win /= float64(nbGames)
	eq.Tie /= float64(nbGames)
	return eq
}

// drawCards fills rndCards from deck at a rolling index that advances and
// wraps, reshuffling the deck with Fisher-Yates every reshuffleEvery
// calls. count is shared across calls via the caller's loop variable so
// the reshuffle cadence spans the whole batch, not each individual draw.
func drawCards(rndCards []deck.Card, residual []deck.Card, state *int, count *int, rng *rand.Rand) {
	for i := range rndCards {
		rndCards[i] = residual[*state]
		*state++
		if *state == len(residual) {
			*state = 0
		}
	}
	*count++
	if *count%reshuffleEvery == 0 {
		rng.Shuffle(len(residual), func(i, j int) {
			residual[i], residual[j] = residual[j], residual[i]
		})
	}
}

func validateMonteCarlo(players [][]deck.Card, board []deck.Card) error {
	if len(players) < 1 || len(players) > 10 {
		return McInvalidNbPlayer{N: len(players)}
	}
	for i, p := range players {
		if i == 0 {
			if len(p) != 2 {
				return InvalidFirstPlayer{Cards: p}
			}
		} else if len(p) > 2 {
			return InvalidOtherPlayer{Index: i, Cards: p}
		}
		for _, c := range p {
			if int(c) >= keys.DeckSize {
				if i == 0 {
					return InvalidFirstPlayer{Cards: p}
				}
				return InvalidOtherPlayer{Index: i, Cards: p}
			}
		}
	}

	if len(board) > 5 {
		return McInvalidNbTableCard{N: len(board)}
	}
	for i, c := range board {
		if int(c) >= keys.DeckSize {
			return McInvalidTableCard{Position: i, Card: c}
		}
	}

	seen := make(map[deck.Card]bool)
	for _, p := range players {
		for _, c := range p {
			if seen[c] {
				return McNotDistinctCards{Players: players, Table: board}
			}
			seen[c] = true
		}
	}
	for _, c := range board {
		if seen[c] {
			return McNotDistinctCards{Players: players, Table: board}
		}
		seen[c] = true
	}
	return nil
}

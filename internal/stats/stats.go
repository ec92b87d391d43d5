// Package stats tallies how the five- and seven-card hand ranks built by
// internal/eval are distributed across every possible hand, grouped by
// hand category (high-card, one-pair, ..., straight-flush).
package stats

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

// HandStats summarizes every hand rank that falls into one category:
// how many distinct ranks it covers (NbHand), the lowest and highest of
// those ranks, and how many concrete hands (NbOccur) map to them.
type HandStats struct {
	NbHand  uint32
	MinRank uint32
	MaxRank uint32
	NbOccur uint32
}

// handCategories lists the nine mutually exclusive hand categories that
// eval.TableFive/TableSeven's HandType arrays use, in increasing
// strength order. Fixed by the frozen rank encoding, not derived.
var handCategories = []string{
	"high-card", "one-pair", "two-pairs", "three-of-a-kind", "straight",
	"flush", "full-house", "four-of-a-kind", "straight-flush",
}

// noRank marks a category that hasn't seen a min-rank yet, so the first
// real rank observed always wins the comparison.
const noRank = ^uint32(0)

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
}

// Workers overrides how many goroutines Seven's fan-out uses. Zero, the
// default, means runtime.NumCPU(). cmd/poker-odds sets this from
// internal/config.CLIConfig.Workers once at startup.
var Workers int

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

func emptyStats(categories []string) map[string]HandStats {
	out := make(map[string]HandStats, len(categories))
	for _, c := range categories {
		out[c] = HandStats{MinRank: noRank}
	}
	return out
}

func merge(stats map[string]HandStats, category string, rank uint32, count uint32) {
	hs := stats[category]
	hs.NbHand++
	hs.NbOccur += count
	if rank < hs.MinRank {
		hs.MinRank = rank
	}
	if rank > hs.MaxRank {
		hs.MaxRank = rank
	}
	stats[category] = hs
}

// Five tallies every C(52,5) five-card combination, single-threaded: the
// table is small enough (2,598,960 hands) that parallelizing it isn't
// worth the coordination.
func Five(t *eval.TableFive) map[string]HandStats {
	return five(t, quartz.NewReal(), defaultLogger())
}

func five(t *eval.TableFive, clock quartz.Clock, logger *log.Logger) map[string]HandStats {
	start := clock.Now()

	rankCount := make(map[uint32]uint32)
	for c1 := 0; c1 < keys.DeckSize; c1++ {
		for c2 := 0; c2 < c1; c2++ {
			for c3 := 0; c3 < c2; c3++ {
				for c4 := 0; c4 < c3; c4++ {
					for c5 := 0; c5 < c4; c5++ {
						hand := [5]deck.Card{deck.Card(c1), deck.Card(c2), deck.Card(c3), deck.Card(c4), deck.Card(c5)}
						rank := eval.Rank5(t, hand)
						rankCount[rank]++
					}
				}
			}
		}
	}

	result := emptyStats(handCategories)
	for rank, count := range rankCount {
		category := string(t.HandType[rank])
		merge(result, category, rank, count)
	}

	logger.Debug("stats: built five-card stats", "elapsed", clock.Since(start))
	return result
}

// Seven tallies every C(52,7) seven-card combination. The outermost
// index is fanned out across Workers (runtime.NumCPU() when unset)
// goroutines via errgroup, each accumulating its own rank→count map for
// the 6-tuples strictly below it; the per-index maps are merged
// sequentially after the join.
func Seven(t *eval.TableSeven) map[string]HandStats {
	return seven(t, quartz.NewReal(), defaultLogger())
}

func seven(t *eval.TableSeven, clock quartz.Clock, logger *log.Logger) map[string]HandStats {
	start := clock.Now()

	nWorkers := workerCount(keys.DeckSize)

	partials := make([]map[uint32]uint32, keys.DeckSize)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(nWorkers)
	for c1 := 0; c1 < keys.DeckSize; c1++ {
		c1 := c1
		g.Go(func() error {
			local := make(map[uint32]uint32)
			for c2 := 0; c2 < c1; c2++ {
				for c3 := 0; c3 < c2; c3++ {
					for c4 := 0; c4 < c3; c4++ {
						for c5 := 0; c5 < c4; c5++ {
							for c6 := 0; c6 < c5; c6++ {
								for c7 := 0; c7 < c6; c7++ {
									hand := [7]deck.Card{
										deck.Card(c1), deck.Card(c2), deck.Card(c3),
										deck.Card(c4), deck.Card(c5), deck.Card(c6), deck.Card(c7),
									}
									rank := eval.Rank7(t, hand)
									local[rank]++
								}
							}
						}
					}
				}
			}
			partials[c1] = local
			return nil
		})
	}
	_ = g.Wait()

	rankCount := make(map[uint32]uint32)
	for _, local := range partials {
		for rank, count := range local {
			rankCount[rank] += count
		}
	}

	result := emptyStats(handCategories)
	for rank, count := range rankCount {
		category := string(t.Five.HandType[rank])
		merge(result, category, rank, count)
	}

	logger.Debug("stats: built seven-card stats", "elapsed", clock.Since(start), "workers", nWorkers)
	return result
}

package eval

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/keys"
)

// TableSeven is the seven-card evaluator. FaceRank and FlushRank are keyed
// exactly like TableFive's arrays but over seven-card sums; FlushSuit
// resolves, from a hand's summed suit key alone, which suit (if any) holds
// a flush.
type TableSeven struct {
	k keys.Keys

	FaceRank  []uint32
	FlushRank []uint32

	// FlushSuit[suitKeySum] is -1 if no suit has 5+ cards in the hand,
	// otherwise the 0-3 suit index holding the flush.
	FlushSuit []int8

	Five *TableFive
}

// BuildSeven derives the seven-card tables from an already-built
// TableFive. Every distinct seven-card face combination (and 5/6/7-card
// flush combination) is evaluated once via the slow, always-correct
// rank7Reference and the result cached in the dense array — so the build
// pays the O(C(7,2)) cost per combination once, and every later call to
// Rank7 is O(1).
//
// clock and logger are for build-time instrumentation only (this
// function does no I/O and never blocks) — pass quartz.NewMock(t) in
// tests to assert on logged elapsed time without a wall-clock wait.
func BuildSeven(t5 *TableFive, clock quartz.Clock, logger *log.Logger) *TableSeven {
	start := clock.Now()

	faceKey := keys.FaceSevenKey
	flushKey := keys.FlushSevenKey
	nbFace := keys.NbFace
	nbSuit := keys.NbSuit

	t7 := &TableSeven{
		k:         t5.k,
		FaceRank:  make([]uint32, keys.MaxFaceSevenKey+1),
		FlushRank: make([]uint32, keys.MaxFlushSevenKey+1),
		FlushSuit: make([]int8, keys.MaxSuitKey+1),
		Five:      t5,
	}

	// Face rank: every multiset of 7 faces with no 5-or-more-of-a-kind.
	// Suits are assigned arbitrarily (4 cards of suit 0, 3 of suit 1):
	// FaceRank is only ever consulted when the hand is NOT a flush, so
	// the actual suits don't affect the rank, only the card indices
	// needed to drive the slow reference evaluator.
	for f1 := 0; f1 < nbFace; f1++ {
		for f2 := 0; f2 <= f1; f2++ {
			for f3 := 0; f3 <= f2; f3++ {
				for f4 := 0; f4 <= f3; f4++ {
					for f5 := 0; f5 <= f4; f5++ {
						for f6 := 0; f6 <= f5; f6++ {
							for f7 := 0; f7 <= f6; f7++ {
								if f1-f5 > 0 && f2-f6 > 0 && f3-f7 > 0 {
									key := faceKey[f1] + faceKey[f2] + faceKey[f3] + faceKey[f4] + faceKey[f5] + faceKey[f6] + faceKey[f7]
									c := [7]int{4 * f1, 4 * f2, 4 * f3, 4 * f4, 4*f5 + 1, 4*f6 + 1, 4*f7 + 1}
									t7.FaceRank[key] = rank7Reference(t5, c)
								}
							}
						}
					}
				}
			}
		}
	}

	// Flush rank, 7 flush cards.
	for f1 := 6; f1 < nbFace; f1++ {
		k1 := flushKey[f1]
		for f2 := 0; f2 < f1; f2++ {
			k2 := flushKey[f2]
			for f3 := 0; f3 < f2; f3++ {
				k3 := flushKey[f3]
				for f4 := 0; f4 < f3; f4++ {
					k4 := flushKey[f4]
					for f5 := 0; f5 < f4; f5++ {
						k5 := flushKey[f5]
						for f6 := 0; f6 < f5; f6++ {
							k6 := flushKey[f6]
							for f7 := 0; f7 < f6; f7++ {
								k7 := flushKey[f7]
								key := k1 + k2 + k3 + k4 + k5 + k6 + k7
								c := [7]int{4 * f1, 4 * f2, 4 * f3, 4 * f4, 4 * f5, 4 * f6, 4 * f7}
								t7.FlushRank[key] = rank7Reference(t5, c)
							}
						}
					}
				}
			}
		}
	}

	// Flush rank, 6 flush cards plus one off-suit filler (suit 1 on the
	// 7th card guarantees it never extends the flush).
	for f1 := 5; f1 < nbFace; f1++ {
		k1 := flushKey[f1]
		for f2 := 0; f2 < f1; f2++ {
			k2 := flushKey[f2]
			for f3 := 0; f3 < f2; f3++ {
				k3 := flushKey[f3]
				for f4 := 0; f4 < f3; f4++ {
					k4 := flushKey[f4]
					for f5 := 0; f5 < f4; f5++ {
						k5 := flushKey[f5]
						for f6 := 0; f6 < f5; f6++ {
							k6 := flushKey[f6]
							key := k1 + k2 + k3 + k4 + k5 + k6
							c := [7]int{4 * f1, 4 * f2, 4 * f3, 4 * f4, 4 * f5, 4 * f6, 4*f6 + 1}
							t7.FlushRank[key] = rank7Reference(t5, c)
						}
					}
				}
			}
		}
	}

	// Flush rank, 5 flush cards plus two off-suit fillers.
	for f1 := 4; f1 < nbFace; f1++ {
		k1 := flushKey[f1]
		for f2 := 0; f2 < f1; f2++ {
			k2 := flushKey[f2]
			for f3 := 0; f3 < f2; f3++ {
				k3 := flushKey[f3]
				for f4 := 0; f4 < f3; f4++ {
					k4 := flushKey[f4]
					for f5 := 0; f5 < f4; f5++ {
						k5 := flushKey[f5]
						key := k1 + k2 + k3 + k4 + k5
						c := [7]int{4 * f1, 4 * f2, 4 * f3, 4 * f4, 4 * f5, 4*f5 + 1, 4*f5 + 1}
						t7.FlushRank[key] = rank7Reference(t5, c)
					}
				}
			}
		}
	}

	// Flush suit: for every multiset of 7 suits, determine whether any
	// suit appears 5+ times, and if so which.
	suitKey := keys.SuitKey
	for s1 := 0; s1 < nbSuit; s1++ {
		for s2 := 0; s2 <= s1; s2++ {
			for s3 := 0; s3 <= s2; s3++ {
				for s4 := 0; s4 <= s3; s4++ {
					for s5 := 0; s5 <= s4; s5++ {
						for s6 := 0; s6 <= s5; s6++ {
							for s7 := 0; s7 <= s6; s7++ {
								hand := [7]int{s1, s2, s3, s4, s5, s6, s7}
								key := suitKey[s1] + suitKey[s2] + suitKey[s3] + suitKey[s4] + suitKey[s5] + suitKey[s6] + suitKey[s7]
								t7.FlushSuit[key] = -1
								for suit := 0; suit < nbSuit; suit++ {
									count := 0
									for _, s := range hand {
										if s == suit {
											count++
										}
									}
									if count >= 5 {
										t7.FlushSuit[key] = int8(suit)
									}
								}
							}
						}
					}
				}
			}
		}
	}

	logger.Debug("eval: built seven-card table", "elapsed", clock.Since(start))

	return t7
}

// rank7Reference evaluates seven cards by brute force: every one of the
// C(7,2)=21 ways to drop two cards leaves a five-card hand, and the best
// of those 21 five-card ranks is the seven-card hand's rank. It is only
// ever called at table-build time, never from the hot evaluation path.
func rank7Reference(t5 *TableFive, c [7]int) uint32 {
	var best uint32
	var arr [5]int
	for c1 := 0; c1 < 7; c1++ {
		for c2 := 0; c2 < c1; c2++ {
			k := 0
			for i := 0; i < 7; i++ {
				if i != c1 && i != c2 {
					arr[k] = c[i]
					k++
				}
			}
			if r := rank5Ints(t5, arr[0], arr[1], arr[2], arr[3], arr[4]); r > best {
				best = r
			}
		}
	}
	return best
}

// Rank7 evaluates exactly seven distinct cards and returns the rank of
// the best five-card hand they contain. It runs in O(1): it sums each
// card's packed face+suit key, masks out the suit-key sum to look up
// FlushSuit, and either looks FaceRank up directly or accumulates a
// flush key over only the flush-suited cards. Callers vouch for 7
// distinct cards; Rank7 performs no validation.
func Rank7(t7 *TableSeven, c [7]deck.Card) uint32 {
	cardFaceKey := t7.k.CardFaceKey
	cardFlushKey := t7.k.CardFlushKey
	cardSuit := t7.k.CardSuit

	var handKey uint32
	for _, card := range c {
		handKey += cardFaceKey[card]
	}

	handSuitKey := handKey & keys.SuitMask
	handSuit := t7.FlushSuit[handSuitKey]

	if handSuit == -1 {
		handFaceKey := handKey >> keys.SuitBitShift
		return t7.FaceRank[handFaceKey]
	}

	var handFlushKey uint32
	for _, card := range c {
		if cardSuit[card] == int(handSuit) {
			handFlushKey += cardFlushKey[card]
		}
	}
	return t7.FlushRank[handFlushKey]
}

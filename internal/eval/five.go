// Package eval builds the dense, key-summed lookup tables that rank
// five- and seven-card poker hands in O(1), and evaluates hands against
// them.
//
// Ranks increase with hand strength: 0 is the weakest five-card hand
// (7-5-4-3-2 high card) and NbHandFiveRank-1 is the strongest (royal
// flush). The tables are built once, at startup, and are read-only for
// the remainder of the process — every reader shares the same *TableFive
// / *TableSeven by pointer with no locking required.
package eval

import (
	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/keys"
)

// handCategory names the nine mutually exclusive five-card hand
// categories, in increasing strength order. Each category, including
// straight and straight-flush, has its own label.
type handCategory string

const (
	highCard      handCategory = "high-card"
	onePair       handCategory = "one-pair"
	twoPairs      handCategory = "two-pairs"
	threeOfAKind  handCategory = "three-of-a-kind"
	straight      handCategory = "straight"
	flush         handCategory = "flush"
	fullHouse     handCategory = "full-house"
	fourOfAKind   handCategory = "four-of-a-kind"
	straightFlush handCategory = "straight-flush"
)

// TableFive is the five-card evaluator: two flat arrays, one indexed by a
// flush key and one by a non-flush face key, each mapping straight to a
// dense hand rank.
type TableFive struct {
	k keys.Keys

	FlushFiveRank []uint32
	FaceFiveRank  []uint32

	// HandType[rank] names the category of the hand at that rank.
	HandType []handCategory

	NbHandFiveRank uint32
}

// Category names the hand category a rank belongs to (e.g.
// "full-house"), matching the category strings stats.Five/stats.Seven
// group by.
func (t5 *TableFive) Category(rank uint32) string {
	return string(t5.HandType[rank])
}

// BuildFive enumerates every distinct five-card hand-rank equivalence
// class, in increasing strength order, and fills FlushFiveRank and
// FaceFiveRank so that summing a hand's per-face keys and indexing into
// the right array yields its rank directly. It is a pure function of k:
// deterministic, side-effect free, safe to call concurrently.
func BuildFive(k keys.Keys) *TableFive {
	faceKey := keys.FaceFiveKey
	flushKey := keys.FlushFiveKey
	nbFace := keys.NbFace

	t5 := &TableFive{
		k:             k,
		FlushFiveRank: make([]uint32, keys.MaxFlushFiveKey+1),
		FaceFiveRank:  make([]uint32, keys.MaxFaceFiveKey+1),
	}

	var rank uint32
	assignFace := func(key uint32, category handCategory) {
		t5.FaceFiveRank[key] = rank
		t5.HandType = append(t5.HandType, category)
		rank++
	}
	assignFlush := func(key uint32, category handCategory) {
		t5.FlushFiveRank[key] = rank
		t5.HandType = append(t5.HandType, category)
		rank++
	}

	// High card: no pairs, no straights.
	for c1 := 4; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < c1; c2++ {
			k2 := faceKey[c2]
			for c3 := 0; c3 < c2; c3++ {
				k3 := faceKey[c3]
				for c4 := 0; c4 < c3; c4++ {
					k4 := faceKey[c4]
					for c5 := 0; c5 < c4; c5++ {
						k5 := faceKey[c5]
						if !isStraight(c1, c2, c5) {
							assignFace(k1+k2+k3+k4+k5, highCard)
						}
					}
				}
			}
		}
	}

	// One pair.
	for c1 := 0; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < nbFace; c2++ {
			k2 := faceKey[c2]
			for c3 := 0; c3 < c2; c3++ {
				k3 := faceKey[c3]
				for c4 := 0; c4 < c3; c4++ {
					k4 := faceKey[c4]
					if c1 != c2 && c1 != c3 && c1 != c4 {
						assignFace(2*k1+k2+k3+k4, onePair)
					}
				}
			}
		}
	}

	// Two pairs.
	for c1 := 0; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < c1; c2++ {
			k2 := faceKey[c2]
			for c3 := 0; c3 < nbFace; c3++ {
				k3 := faceKey[c3]
				if c1 != c3 && c2 != c3 {
					assignFace(2*k1+2*k2+k3, twoPairs)
				}
			}
		}
	}

	// Three of a kind.
	for c1 := 0; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < nbFace; c2++ {
			k2 := faceKey[c2]
			for c3 := 0; c3 < c2; c3++ {
				k3 := faceKey[c3]
				if c1 != c2 && c1 != c3 {
					assignFace(3*k1+k2+k3, threeOfAKind)
				}
			}
		}
	}

	// Straights: the wheel (A-2-3-4-5) first, then 6-high through
	// broadway, each in increasing rank.
	assignFace(faceKey[3]+faceKey[2]+faceKey[1]+faceKey[0]+faceKey[12], straight)
	for c1 := 4; c1 < nbFace; c1++ {
		assignFace(faceKey[c1]+faceKey[c1-1]+faceKey[c1-2]+faceKey[c1-3]+faceKey[c1-4], straight)
	}

	// Flushes: same shape as high card, keyed on flushKey instead.
	for c1 := 4; c1 < nbFace; c1++ {
		k1 := flushKey[c1]
		for c2 := 0; c2 < c1; c2++ {
			k2 := flushKey[c2]
			for c3 := 0; c3 < c2; c3++ {
				k3 := flushKey[c3]
				for c4 := 0; c4 < c3; c4++ {
					k4 := flushKey[c4]
					for c5 := 0; c5 < c4; c5++ {
						k5 := flushKey[c5]
						if !isStraight(c1, c2, c5) {
							assignFlush(k1+k2+k3+k4+k5, flush)
						}
					}
				}
			}
		}
	}

	// Full house.
	for c1 := 0; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < nbFace; c2++ {
			k2 := faceKey[c2]
			if c1 != c2 {
				assignFace(3*k1+2*k2, fullHouse)
			}
		}
	}

	// Four of a kind.
	for c1 := 0; c1 < nbFace; c1++ {
		k1 := faceKey[c1]
		for c2 := 0; c2 < nbFace; c2++ {
			k2 := faceKey[c2]
			if c1 != c2 {
				assignFace(4*k1+k2, fourOfAKind)
			}
		}
	}

	// Straight flushes: wheel first, then ascending.
	assignFlush(flushKey[3]+flushKey[2]+flushKey[1]+flushKey[0]+flushKey[12], straightFlush)
	for c1 := 4; c1 < nbFace; c1++ {
		assignFlush(flushKey[c1]+flushKey[c1-1]+flushKey[c1-2]+flushKey[c1-3]+flushKey[c1-4], straightFlush)
	}

	t5.NbHandFiveRank = rank
	return t5
}

// isStraight reports whether the five distinct, descending face indices
// c1 > ... > c5 (with the wheel as the sole exception, c1==Ace,
// c2==Five) form a straight, so BuildFive can exclude straights from the
// high-card and flush categories.
func isStraight(c1, c2, c5 int) bool {
	return (c1-c5 == 4) || (c1 == 12 && c2 == 3)
}

// Rank5 evaluates exactly five distinct cards and returns their dense
// rank. Higher is stronger. Callers vouch for 5 distinct cards; Rank5
// performs no validation.
func Rank5(t5 *TableFive, c [5]deck.Card) uint32 {
	suit := t5.k.CardSuit
	face := t5.k.CardFace
	flushKey := keys.FlushFiveKey
	faceKey := keys.FaceFiveKey

	c0, c1, c2, c3, c4 := int(c[0]), int(c[1]), int(c[2]), int(c[3]), int(c[4])

	if suit[c0] == suit[c1] && suit[c0] == suit[c2] && suit[c0] == suit[c3] && suit[c0] == suit[c4] {
		key := flushKey[face[c0]] + flushKey[face[c1]] + flushKey[face[c2]] + flushKey[face[c3]] + flushKey[face[c4]]
		return t5.FlushFiveRank[key]
	}
	key := faceKey[face[c0]] + faceKey[face[c1]] + faceKey[face[c2]] + faceKey[face[c3]] + faceKey[face[c4]]
	return t5.FaceFiveRank[key]
}

// rank5Ints is Rank5's internal entry point for callers already holding
// plain card indices (the seven-card table builder's rank7Reference).
func rank5Ints(t5 *TableFive, c0, c1, c2, c3, c4 int) uint32 {
	return Rank5(t5, [5]deck.Card{deck.Card(c0), deck.Card(c1), deck.Card(c2), deck.Card(c3), deck.Card(c4)})
}

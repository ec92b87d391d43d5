// Package keys holds the frozen integer constants the evaluator tables are
// built from, and the bit-packing invariants that make a single machine word
// carry both a hand's face key and its suit key.
//
// Every hand-ranking algorithm in internal/eval reduces a set of cards to a
// sum of per-card integer keys, then looks the sum up in a flat table built
// once at startup. The keys themselves are arbitrary but fixed: they were
// chosen so that summing them for any valid 5- or 7-card hand produces a
// unique key per hand-rank equivalence class, with no collisions across
// categories. Changing any constant here invalidates every table in
// internal/eval.
package keys

// NbFace is the number of distinct card faces (Two..Ace).
const NbFace = 13

// NbSuit is the number of suits (Clubs, Diamonds, Hearts, Spades).
const NbSuit = 4

// DeckSize is the number of cards in a standard deck.
const DeckSize = NbSuit * NbFace

// SuitMask isolates the low SuitBitShift bits of a packed face+suit key.
const SuitMask = 511

// SuitBitShift is how far the face key is shifted left before the suit key
// is added in, so the two can share one machine word without overlapping.
const SuitBitShift = 9

// SuitKey gives each suit a weight such that summing any 7 of them (the
// worst case, all 7 cards sharing one suit) never reaches 2^SuitBitShift.
var SuitKey = [NbSuit]uint32{0, 1, 29, 37}

// FlushFiveKey and FlushSevenKey are per-face weights used to test "is this
// a flush" and, if so, which five cards make the best flush hand. Summing
// five (or seven) of these values, one per face, yields a key that maps
// 1:1 onto a dense rank in FlushFiveRank (or FlushRank).
var (
	FlushFiveKey  = [NbFace]uint32{0, 1, 2, 4, 8, 16, 32, 56, 104, 192, 352, 672, 1288}
	FlushSevenKey = [NbFace]uint32{1, 2, 4, 8, 16, 32, 64, 128, 240, 464, 896, 1728, 3328}
)

// FaceFiveKey and FaceSevenKey are per-face weights used for non-flush hand
// ranking: summing the weights of a hand's faces (with repeats weighted by
// multiplicity, e.g. 2x for a pair) gives a key that maps 1:1 onto a dense
// rank in FaceFiveRank (or FaceRank).
var (
	FaceFiveKey  = [NbFace]uint32{0, 1, 5, 22, 94, 312, 992, 2422, 5624, 12522, 19998, 43258, 79415}
	FaceSevenKey = [NbFace]uint32{0, 1, 5, 22, 98, 453, 2031, 8698, 22854, 83661, 262349, 636345, 1479181}
)

// MaxSuitKey is the largest possible sum of 7 SuitKey values (all one suit).
var MaxSuitKey = SuitKey[3] * 7

// MaxFlushFiveKey and MaxFlushSevenKey are the largest possible sums of the
// top 5 (or 7) FlushFiveKey/FlushSevenKey values — i.e. the table size each
// flush-rank array needs.
var (
	MaxFlushFiveKey  = sumLast(FlushFiveKey, 5)
	MaxFlushSevenKey = sumLast(FlushSevenKey, 7)
)

// MaxFaceFiveKey and MaxFaceSevenKey bound the non-flush face-rank tables:
// the worst case is four of the top face plus one (or three) of the
// second-top face.
var (
	MaxFaceFiveKey  = FaceFiveKey[NbFace-1]*4 + FaceFiveKey[NbFace-2]*1
	MaxFaceSevenKey = FaceSevenKey[NbFace-1]*4 + FaceSevenKey[NbFace-2]*3
)

func sumLast(arr [NbFace]uint32, n int) uint32 {
	var sum uint32
	for i := len(arr) - n; i < len(arr); i++ {
		sum += arr[i]
	}
	return sum
}

// Keys is the fully-built set of per-card lookup tables, indexed by the
// wire card encoding (card = 4*face+suit, see package deck). It is a
// small, copyable value — eval.BuildFive takes it by value and keeps its
// own copy.
type Keys struct {
	CardFace [DeckSize]int
	CardSuit [DeckSize]int

	// CardFlushKey[card] is FlushSevenKey[face(card)] — the weight to add
	// when accumulating a flush key for a hand containing this card.
	CardFlushKey [DeckSize]uint32

	// CardFaceKey[card] packs (FaceSevenKey[face(card)] << SuitBitShift) +
	// SuitKey[suit(card)] into one word: summing this across a hand's
	// cards accumulates the face key in the high bits and the suit key in
	// the low SuitBitShift bits simultaneously.
	CardFaceKey [DeckSize]uint32
}

// Build derives Keys' per-card tables from the frozen constants above. It
// panics if the bit-packing invariants that make CardFaceKey safe to sum
// and mask don't hold — a signal that a constant above was changed
// inconsistently, since the invariants are load-bearing for Rank7.
func Build() Keys {
	if MaxSuitKey >= (1 << SuitBitShift) {
		panic("keys: suit keys are too large to fit in SuitBitShift bits")
	}
	if MaxFaceSevenKey >= (1 << (32 - SuitBitShift)) {
		panic("keys: face keys are too large to fit in 32-SuitBitShift bits")
	}

	var k Keys
	for f := 0; f < NbFace; f++ {
		for s := 0; s < NbSuit; s++ {
			n := NbSuit*f + s
			k.CardFace[n] = f
			k.CardSuit[n] = s
			k.CardFlushKey[n] = FlushSevenKey[f]
			k.CardFaceKey[n] = (FaceSevenKey[f] << SuitBitShift) + SuitKey[s]
		}
	}
	return k
}

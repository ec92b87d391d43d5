package eval

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/keys"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
}

func toCards5(c [5]int) [5]deck.Card {
	var out [5]deck.Card
	for i, v := range c {
		out[i] = deck.Card(v)
	}
	return out
}

func toCards7(c [7]int) [7]deck.Card {
	var out [7]deck.Card
	for i, v := range c {
		out[i] = deck.Card(v)
	}
	return out
}

func TestRank5KnownHands(t *testing.T) {
	t5 := BuildFive(keys.Build())

	cases := []struct {
		cards [5]int
		rank  uint32
	}{
		{[5]int{21, 33, 24, 22, 39}, 2459},
		{[5]int{51, 38, 14, 36, 17}, 3431},
		{[5]int{45, 8, 48, 34, 5}, 1171},
		{[5]int{13, 37, 33, 20, 35}, 3106},
		{[5]int{31, 26, 50, 16, 49}, 3971},
		{[5]int{28, 24, 25, 29, 2}, 4434},
		{[5]int{41, 13, 28, 25, 16}, 310},
		{[5]int{20, 36, 7, 42, 43}, 3572},
		{[5]int{38, 42, 8, 22, 44}, 761},
		{[5]int{32, 3, 18, 5, 42}, 320},
		{[5]int{12, 8, 4, 0, 48}, 7452},  // wheel straight flush (A-5)
		{[5]int{50, 46, 42, 38, 34}, 7461}, // royal straight flush
	}

	for _, tc := range cases {
		got := Rank5(t5, toCards5(tc.cards))
		if got != tc.rank {
			t.Errorf("Rank5(%v) = %d, want %d", tc.cards, got, tc.rank)
		}
	}
}

func TestBuildFiveProducesExactlyStandardHandCount(t *testing.T) {
	t5 := BuildFive(keys.Build())
	const wantRanks = 7462
	if t5.NbHandFiveRank != wantRanks {
		t.Fatalf("NbHandFiveRank = %d, want %d", t5.NbHandFiveRank, wantRanks)
	}
	if len(t5.HandType) != wantRanks {
		t.Fatalf("len(HandType) = %d, want %d", len(t5.HandType), wantRanks)
	}
}

func TestRank7KnownHands(t *testing.T) {
	t5 := BuildFive(keys.Build())
	t7 := BuildSeven(t5, quartz.NewMock(t), testLogger())

	cases := []struct {
		cards [7]int
		rank  uint32
	}{
		{[7]int{50, 6, 0, 5, 38, 7, 17}, 5124},
		{[7]int{23, 16, 34, 26, 0, 10, 8}, 1766},
		{[7]int{14, 4, 0, 7, 20, 8, 47}, 1625},
		{[7]int{10, 32, 43, 3, 25, 8, 49}, 1925},
		{[7]int{1, 16, 49, 24, 43, 42, 33}, 3676},
		{[7]int{49, 17, 1, 26, 11, 34, 20}, 887},
		{[7]int{5, 4, 18, 31, 34, 48, 22}, 1689},
		{[7]int{13, 47, 1, 25, 38, 26, 51}, 2815},
		{[7]int{44, 2, 28, 1, 3, 18, 22}, 5046},
		{[7]int{49, 27, 33, 51, 22, 1, 30}, 4000},
	}

	for _, tc := range cases {
		got := Rank7(t7, toCards7(tc.cards))
		if got != tc.rank {
			t.Errorf("Rank7(%v) = %d, want %d", tc.cards, got, tc.rank)
		}
		if ref := rank7Reference(t7.Five, tc.cards); ref != tc.rank {
			t.Errorf("rank7Reference(%v) = %d, want %d", tc.cards, ref, tc.rank)
		}
	}
}

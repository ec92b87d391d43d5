package calc

import (
	"math"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/eval"
	"github.com/lox/pokerfast/internal/keys"
)

func buildTestTable() *eval.TableSeven {
	t5 := eval.BuildFive(keys.Build())
	return eval.BuildSeven(t5, quartz.NewReal(), defaultLogger())
}

func cardsOf(vals ...int) []deck.Card {
	out := make([]deck.Card, len(vals))
	for i, v := range vals {
		out[i] = deck.Card(v)
	}
	return out
}

func pairOf(a, b int) [2]deck.Card {
	return [2]deck.Card{deck.Card(a), deck.Card(b)}
}

func TestDeterministicKnownEquities(t *testing.T) {
	t7 := buildTestTable()

	cases := []struct {
		name    string
		players [][2]deck.Card
		board   []deck.Card
		want    []HandEquity
	}{
		{
			name:    "turn, pair against flush draw",
			players: [][2]deck.Card{pairOf(8, 9), pairOf(11, 28)},
			board:   cardsOf(15, 47, 23, 33),
			want:    []HandEquity{{Win: 0.75, Tie: 0.0}, {Win: 0.25, Tie: 0.0}},
		},
		{
			name:    "turn, two players",
			players: [][2]deck.Card{pairOf(8, 29), pairOf(4, 11)},
			board:   cardsOf(13, 14, 50, 1),
			want:    []HandEquity{{Win: 0.0, Tie: 0.0340909}, {Win: 0.9318182, Tie: 0.0340909}},
		},
		{
			name:    "flop, two players",
			players: [][2]deck.Card{pairOf(8, 29), pairOf(4, 11)},
			board:   cardsOf(13, 14, 50),
			want:    []HandEquity{{Win: 0.42020202, Tie: 0.1550505}, {Win: 0.26969698, Tie: 0.1550505}},
		},
		{
			name:    "river, locked result",
			players: [][2]deck.Card{pairOf(7, 8), pairOf(22, 27)},
			board:   cardsOf(51, 30, 41, 9, 5),
			want:    []HandEquity{{Win: 1.0, Tie: 0.0}, {Win: 0.0, Tie: 0.0}},
		},
		{
			name:    "preflop, two players, full C(48,5) board enumeration",
			players: [][2]deck.Card{pairOf(8, 29), pairOf(4, 11)},
			board:   nil,
			want:    []HandEquity{{Win: 0.6336, Tie: 0.0520}, {Win: 0.2623, Tie: 0.0520}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			equity, err := Deterministic(t7, tc.players, tc.board, false)
			require.NoError(t, err)
			require.Len(t, equity, len(tc.want))
			for i := range equity {
				assert.InDelta(t, tc.want[i].Win, equity[i].Win, 1e-3, "player %d win", i)
				assert.InDelta(t, tc.want[i].Tie, equity[i].Tie, 1e-3, "player %d tie", i)
			}
		})
	}
}

func TestDeterministicEquitySumsToOne(t *testing.T) {
	t7 := buildTestTable()
	equity, err := Deterministic(t7, [][2]deck.Card{pairOf(8, 9), pairOf(11, 28), pairOf(2, 3)}, cardsOf(15, 47, 23), false)
	require.NoError(t, err)

	var total float64
	for _, e := range equity {
		total += e.Win + e.Tie
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestDeterministicValidation(t *testing.T) {
	t7 := buildTestTable()

	_, err := Deterministic(t7, [][2]deck.Card{pairOf(0, 1)}, nil, false)
	require.Error(t, err)
	require.IsType(t, InvalidNbPlayer{}, err)

	_, err = Deterministic(t7, [][2]deck.Card{pairOf(0, 1), pairOf(0, 2)}, nil, false)
	require.Error(t, err)
	require.IsType(t, NotDistinctCards{}, err)

	_, err = Deterministic(t7, [][2]deck.Card{pairOf(0, 1), pairOf(2, 3)}, cardsOf(4, 5), false)
	require.Error(t, err)
	require.IsType(t, InvalidNbTableCard{}, err)
}

func TestMonteCarloConvergesTowardDeterministic(t *testing.T) {
	t7 := buildTestTable()

	players := [][2]deck.Card{pairOf(8, 9), pairOf(11, 28)}
	board := cardsOf(15, 47, 23, 33)

	det, err := Deterministic(t7, players, board, false)
	require.NoError(t, err)

	mcPlayers := [][]deck.Card{{players[0][0], players[0][1]}, {players[1][0], players[1][1]}}
	mc, err := MonteCarlo(t7, mcPlayers, board, 200_000)
	require.NoError(t, err)

	assert.True(t, math.Abs(mc.Win-det[0].Win) < 0.02, "mc win %v too far from deterministic %v", mc.Win, det[0].Win)
}

func TestMonteCarloValidation(t *testing.T) {
	t7 := buildTestTable()

	_, err := MonteCarlo(t7, [][]deck.Card{{deck.Card(0)}}, nil, 1000)
	require.Error(t, err)
	require.IsType(t, InvalidFirstPlayer{}, err)

	_, err = MonteCarlo(t7, [][]deck.Card{{deck.Card(0), deck.Card(1)}, {deck.Card(0)}}, nil, 1000)
	require.Error(t, err)
	require.IsType(t, McNotDistinctCards{}, err)
}

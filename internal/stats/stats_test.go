package stats

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerfast/internal/eval"
	"github.com/lox/pokerfast/internal/keys"
)

func buildTestTables(t *testing.T) (*eval.TableFive, *eval.TableSeven) {
	t5 := eval.BuildFive(keys.Build())
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	t7 := eval.BuildSeven(t5, quartz.NewMock(t), logger)
	return t5, t7
}

func TestFiveMatchesKnownDistribution(t *testing.T) {
	t5, _ := buildTestTables(t)
	got := Five(t5)

	want := map[string]HandStats{
		"high-card":       {NbHand: 1277, MinRank: 0, MaxRank: 1276, NbOccur: 1302540},
		"one-pair":        {NbHand: 2860, MinRank: 1277, MaxRank: 4136, NbOccur: 1098240},
		"two-pairs":       {NbHand: 858, MinRank: 4137, MaxRank: 4994, NbOccur: 123552},
		"three-of-a-kind": {NbHand: 858, MinRank: 4995, MaxRank: 5852, NbOccur: 54912},
		"straight":        {NbHand: 10, MinRank: 5853, MaxRank: 5862, NbOccur: 10200},
		"flush":           {NbHand: 1277, MinRank: 5863, MaxRank: 7139, NbOccur: 5108},
		"full-house":      {NbHand: 156, MinRank: 7140, MaxRank: 7295, NbOccur: 3744},
		"four-of-a-kind":  {NbHand: 156, MinRank: 7296, MaxRank: 7451, NbOccur: 624},
		"straight-flush":  {NbHand: 10, MinRank: 7452, MaxRank: 7461, NbOccur: 40},
	}

	for category, w := range want {
		g, ok := got[category]
		if !ok {
			t.Fatalf("missing category %q", category)
		}
		if g != w {
			t.Errorf("category %q = %+v, want %+v", category, g, w)
		}
	}
}

func TestSevenMatchesKnownDistribution(t *testing.T) {
	_, t7 := buildTestTables(t)
	got := Seven(t7)

	want := map[string]HandStats{
		"high-card":       {NbHand: 407, MinRank: 48, MaxRank: 1276, NbOccur: 23294460},
		"one-pair":        {NbHand: 1470, MinRank: 1295, MaxRank: 4136, NbOccur: 58627800},
		"two-pairs":       {NbHand: 763, MinRank: 4140, MaxRank: 4994, NbOccur: 31433400},
		"three-of-a-kind": {NbHand: 575, MinRank: 5003, MaxRank: 5852, NbOccur: 6461620},
		"straight":        {NbHand: 10, MinRank: 5853, MaxRank: 5862, NbOccur: 6180020},
		"flush":           {NbHand: 1277, MinRank: 5863, MaxRank: 7139, NbOccur: 4047644},
		"full-house":      {NbHand: 156, MinRank: 7140, MaxRank: 7295, NbOccur: 3473184},
		"four-of-a-kind":  {NbHand: 156, MinRank: 7296, MaxRank: 7451, NbOccur: 224848},
		"straight-flush":  {NbHand: 10, MinRank: 7452, MaxRank: 7461, NbOccur: 41584},
	}

	for category, w := range want {
		g, ok := got[category]
		if !ok {
			t.Fatalf("missing category %q", category)
		}
		if g != w {
			t.Errorf("category %q = %+v, want %+v", category, g, w)
		}
	}
}

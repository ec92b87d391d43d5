package deck

import "testing"

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck()
	if d.CardsRemaining() != NumCards {
		t.Fatalf("CardsRemaining() = %d, want %d", d.CardsRemaining(), NumCards)
	}

	seen := make(map[Card]bool, NumCards)
	for !d.IsEmpty() {
		c, ok := d.Deal()
		if !ok {
			t.Fatal("Deal() returned ok=false before deck was empty")
		}
		if seen[c] {
			t.Fatalf("duplicate card dealt: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != NumCards {
		t.Fatalf("saw %d unique cards, want %d", len(seen), NumCards)
	}
}

func TestDealNCapsAtRemaining(t *testing.T) {
	d := NewDeck()
	d.SeedRNG(1)
	d.DealN(50)
	if d.CardsRemaining() != 2 {
		t.Fatalf("CardsRemaining() = %d, want 2", d.CardsRemaining())
	}
	cards := d.DealN(10)
	if len(cards) != 2 {
		t.Fatalf("DealN(10) with 2 left returned %d cards, want 2", len(cards))
	}
	if !d.IsEmpty() {
		t.Fatal("deck should be empty after dealing all remaining cards")
	}
}

func TestResetRestoresFullDeck(t *testing.T) {
	d := NewDeck()
	d.SeedRNG(42)
	d.DealN(20)
	d.Reset()
	if d.CardsRemaining() != NumCards {
		t.Fatalf("CardsRemaining() after Reset() = %d, want %d", d.CardsRemaining(), NumCards)
	}
}

func TestShuffleIsDeterministicWithSeed(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.SeedRNG(7)
	b.SeedRNG(7)
	a.Shuffle()
	b.Shuffle()
	for i := 0; i < NumCards; i++ {
		if a.cards[i] != b.cards[i] {
			t.Fatalf("shuffle with identical seed diverged at index %d", i)
		}
	}
}

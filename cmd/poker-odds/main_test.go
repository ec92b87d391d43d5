package main

import (
	"testing"

	"github.com/lox/pokerfast/internal/deck"
)

func TestParseHands(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{
			name:     "single hand",
			input:    []string{"AcKh"},
			expected: 1,
			hasError: false,
		},
		{
			name:     "multiple hands",
			input:    []string{"AcKh", "KdQs"},
			expected: 2,
			hasError: false,
		},
		{
			name:     "hand with spaces",
			input:    []string{"Ac Kh"},
			expected: 1,
			hasError: false,
		},
		{
			name:     "invalid hand - too many cards",
			input:    []string{"AcKhQd"},
			expected: 0,
			hasError: true,
		},
		{
			name:     "invalid hand - too few cards",
			input:    []string{"Ac"},
			expected: 0,
			hasError: true,
		},
		{
			name:     "invalid card format",
			input:    []string{"AcXy"},
			expected: 0,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := parseHands(tt.input)

			if tt.hasError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if len(hands) != tt.expected {
				t.Errorf("expected %d hands, got %d", tt.expected, len(hands))
			}

			for _, hand := range hands {
				if len(hand) != 2 {
					t.Errorf("each hand should have exactly 2 cards, got %d", len(hand))
				}
			}
		})
	}
}

func TestFormatCards(t *testing.T) {
	cards := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades),
		deck.NewCard(deck.King, deck.Hearts),
		deck.NewCard(deck.Queen, deck.Diamonds),
	}

	result := formatCards(cards)
	expected := "AS KH QD"

	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	// 每张牌唯一
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}

	// 52 张普通牌 + 大小王
	jokers := 0
	for _, c := range deck {
		if c.Suit == Joker {
			jokers++
		}
	}
	assert.Equal(t, 2, jokers)
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	counts := make(map[Card]int, DeckSize)
	for _, c := range deck {
		counts[c]++
	}

	deck.Shuffle()
	for _, c := range deck {
		counts[c]--
	}
	for c, n := range counts {
		assert.Zero(t, n, "card %v count changed after shuffle", c)
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Spade 3", Card{Suit: Spade, Rank: Rank3}, "♠3"},
		{"Heart 10", Card{Suit: Heart, Rank: Rank10}, "♥10"},
		{"Diamond Ace", Card{Suit: Diamond, Rank: RankA}, "♦A"},
		{"Club 2", Card{Suit: Club, Rank: Rank2}, "♣2"},
		{"Black joker", Card{Suit: Joker, Rank: RankBlackJoker}, "joker"},
		{"Red joker", Card{Suit: Joker, Rank: RankRedJoker}, "JOKER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.card.String())
		})
	}
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected Card
		wantErr  bool
	}{
		{name: "Spade 3", token: "♠3", expected: Card{Suit: Spade, Rank: Rank3, Color: Black}},
		{name: "Heart 10", token: "♥10", expected: Card{Suit: Heart, Rank: Rank10, Color: Red}},
		{name: "Diamond Queen", token: "♦Q", expected: Card{Suit: Diamond, Rank: RankQ, Color: Red}},
		{name: "Club Ace", token: "♣A", expected: Card{Suit: Club, Rank: RankA, Color: Black}},
		{name: "Black joker lowercase", token: "joker", expected: Card{Suit: Joker, Rank: RankBlackJoker, Color: Black}},
		{name: "Red joker uppercase", token: "JOKER", expected: Card{Suit: Joker, Rank: RankRedJoker, Color: Red}},
		{name: "Missing suit", token: "3", wantErr: true},
		{name: "Bad rank", token: "♠11", wantErr: true},
		{name: "Empty token", token: "", wantErr: true},
		{name: "Joker with suit", token: "♠joker", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := ParseToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseTokensRoundTrip(t *testing.T) {
	t.Parallel()

	cards, err := ParseTokens([]string{"♠3", "♥3", "joker"})
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "♠3 ♥3 joker", Format(cards))
}

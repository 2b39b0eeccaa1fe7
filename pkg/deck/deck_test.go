package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)

	deck := New()
	a.Equal(Size, deck.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	a.Equal(Card{Joker: Joker2}, *deck.Cards[Size-1])

	jokers := 0
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
		if card.IsJoker() {
			jokers++
		}
	}

	a.Equal(2, jokers)
	a.Equal(Size, len(seen), "every card must be unique")
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode(), "same seed, same order")
	a.Equal(int64(1), d1.Seed())

	d3 := New()
	d3.SetSeed(2)
	d3.Shuffle()

	a.NotEqual(d1.HashCode(), d3.HashCode())

	// unseeded shuffle still yields a full deck
	d4 := New()
	d4.Shuffle()
	a.Equal(Size, d4.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(Size) {
		t.Errorf("expected CanDraw(%d) to be true", Size)
	}

	if deck.CanDraw(Size + 1) {
		t.Errorf("expected CanDraw(%d) to be false", Size+1)
	}

	for i := 0; i < Size; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	card, err := deck.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

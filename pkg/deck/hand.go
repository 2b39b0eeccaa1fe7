package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	// jokers sort after every suited card
	if h[i].IsJoker() != h[j].IsJoker() {
		return !h[i].IsJoker()
	}

	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].RankValue() < h[j].RankValue()
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand holds at least one standard card of the
// suit. Jokers don't count; holding one creates no follow obligation
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if !c.IsJoker() && c.Suit == suit {
			return true
		}
	}

	return false
}

// Discard removes the specified card from the hand.
// It returns false if the card was not in the hand.
func (h *Hand) Discard(card *Card) bool {
	newHand := make([]*Card, 0, len(*h))
	found := false
	for _, c := range *h {
		if !found && c.Equal(card) {
			found = true
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return found
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

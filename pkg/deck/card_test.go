package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: 14, Suit: Spades}, *CardFromString("14s"))
	a.Equal(Card{Rank: 11, Suit: Hearts}, *CardFromString("11H"))
	a.Equal(Card{Joker: Joker1}, *CardFromString("j1"))
	a.Equal(Card{Joker: Joker2}, *CardFromString("J2"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("15c")
	})

	a.Panics(func() {
		CardFromString("0c")
	})

	a.Panics(func() {
		CardFromString("1c")
	})

	a.Panics(func() {
		CardFromString("j3")
	})
}

func TestCard_RankValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(2, CardFromString("2d").RankValue())
	a.Equal(14, CardFromString("14s").RankValue())
	a.Equal(15, CardFromString("j2").RankValue())
	a.Equal(16, CardFromString("j1").RankValue())

	// the two jokers can never tie
	a.True(CardFromString("j1").RankValue() > CardFromString("j2").RankValue())
	a.True(CardFromString("j2").RankValue() > CardFromString("14s").RankValue())
}

func TestCard_IsTrump(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("2s").IsTrump())
	a.True(CardFromString("j1").IsTrump())
	a.True(CardFromString("j2").IsTrump())
	a.False(CardFromString("14h").IsTrump())
	a.False(CardFromString("14c").IsTrump())
}

func TestCard_SatisfiesLead(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("10h").SatisfiesLead(Hearts))
	a.False(CardFromString("10h").SatisfiesLead(Clubs))

	// a joker satisfies any led suit
	for _, suit := range []Suit{Hearts, Clubs, Diamonds, Spades} {
		a.True(CardFromString("j1").SatisfiesLead(suit))
		a.True(CardFromString("j2").SatisfiesLead(suit))
	}
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("10h").Equal(CardFromString("10h")))
	a.False(CardFromString("10h").Equal(CardFromString("10c")))
	a.True(CardFromString("j1").Equal(CardFromString("j1")))
	a.False(CardFromString("j1").Equal(CardFromString("j2")))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("2♣", CardFromString("2c").String())
	a.Equal("Joker1", CardFromString("j1").String())
	a.Equal("Joker2", CardFromString("j2").String())
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,14s,j1,j2")
	assert.Equal(t, "2c,14s,j1,j2", CardsToString(cards))
}

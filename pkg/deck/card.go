package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// JokerID identifies one of the two jokers. Zero means the card is not a joker.
type JokerID int

// joker identities. Joker1 outranks Joker2
const (
	Joker1 JokerID = 1
	Joker2 JokerID = 2
)

// Card is an individual playing card.
// A card is either a standard suit+rank card, or one of the two jokers. A
// joker has no suit and no intrinsic rank; its ordering comes from its
// identity so the two jokers can never tie.
type Card struct {
	Rank  int     `json:"rank,omitempty"`
	Suit  Suit    `json:"suit,omitempty"`
	Joker JokerID `json:"joker,omitempty"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rank values for the jokers. They sit strictly above the ace of trump
const (
	joker2RankValue = 15
	joker1RankValue = 16
)

// NewCard returns a standard card
func NewCard(rank int, suit Suit) *Card {
	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// NewJoker returns one of the two jokers
func NewJoker(id JokerID) *Card {
	return &Card{Joker: id}
}

// IsJoker returns true if the card is one of the two jokers
func (c *Card) IsJoker() bool {
	return c.Joker != 0
}

// RankValue returns the card's value for trick comparison.
// Standard cards return their rank (ace high). Joker2 and Joker1 return
// distinct values above the ace.
func (c *Card) RankValue() int {
	switch c.Joker {
	case Joker1:
		return joker1RankValue
	case Joker2:
		return joker2RankValue
	}

	return c.Rank
}

// IsTrump returns true for any joker or any spade
func (c *Card) IsTrump() bool {
	return c.IsJoker() || c.Suit == Spades
}

// SatisfiesLead returns true if the card may be played on the led suit.
// A joker satisfies any led suit
func (c *Card) SatisfiesLead(led Suit) bool {
	if c.IsJoker() {
		return true
	}

	return c.Suit == led
}

func (c *Card) String() string {
	if c.IsJoker() {
		return fmt.Sprintf("Joker%d", c.Joker)
	}

	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit, rank, and joker identity)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank && c.Joker == card.Joker
}

var cardRx = regexp.MustCompile(`(?i)^(?:(j[12])|([2-9]|1[0-4])([cdhs]))\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14
// and suit in [cdhs], or "j1"/"j2" for the jokers
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	if match[1] != "" {
		id, err := strconv.Atoi(match[1][1:])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		return NewJoker(JokerID(id))
	}

	rank, err := strconv.Atoi(match[2])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	if card.IsJoker() {
		return fmt.Sprintf("j%d", card.Joker)
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

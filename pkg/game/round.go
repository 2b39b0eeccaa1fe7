package game

import (
	"updownriver-server/pkg/deck"
)

// Play represents one card played in a trick
type Play struct {
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
}

// Trick is a single trick: each player plays exactly one card, the highest
// eligible card wins
type Trick struct {
	// Leader is the seat index of the player who leads the trick
	Leader int `json:"trickLeader"`

	// TurnIndex is the offset of whose turn it is within this trick
	TurnIndex int `json:"trickTurnIndex"`

	// Plays in play order
	Plays []*Play `json:"plays"`

	// WinnerID is set exactly once, after every player has played
	WinnerID string `json:"winnerId,omitempty"`
}

// LedSuit returns the suit of the first non-joker play.
// A joker lead counts as spades, since jokers are trump-equivalent.
// Must not be called on an empty trick
func (t *Trick) LedSuit() deck.Suit {
	for _, play := range t.Plays {
		if !play.Card.IsJoker() {
			return play.Card.Suit
		}
	}

	return deck.Spades
}

// Round represents one round of play, from deal through scoring
type Round struct {
	// Number is the 1-based position in the round sequence
	Number int

	// TotalCards dealt to each player this round
	TotalCards int

	// DealerIndex is the seat of this round's dealer
	DealerIndex int

	// BidOrder holds player IDs starting immediately after the dealer; the
	// dealer bids last
	BidOrder []string

	// Bids by player ID. A player has no entry until their turn arrives
	Bids map[string]int

	// CurrentBidTurn indexes into BidOrder
	CurrentBidTurn int

	// CurrentTrick is the open trick, nil until bidding completes
	CurrentTrick *Trick

	// Tricks holds the completed tricks of this round in order
	Tricks []*Trick
}

// bidSum returns the total of all bids placed so far
func (r *Round) bidSum() int {
	sum := 0
	for _, bid := range r.Bids {
		sum += bid
	}

	return sum
}

// RoundResult is the archived outcome of a scored round
type RoundResult struct {
	RoundNumber int            `json:"roundNumber"`
	TotalCards  int            `json:"totalCards"`
	Results     []PlayerResult `json:"results"`
}

// PlayerResult holds a player's result for a round
type PlayerResult struct {
	PlayerID   string `json:"playerId"`
	Bid        int    `json:"bid"`
	TricksWon  int    `json:"tricksWon"`
	RoundScore int    `json:"roundScore"`
}

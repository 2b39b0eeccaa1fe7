package game

import (
	"updownriver-server/pkg/deck"

	"github.com/google/uuid"
)

// Player is an individual in the game
type Player struct {
	ID          string
	DisplayName string

	hand       deck.Hand
	score      int
	tricksWon  int
	missedBids int
}

// NewPlayer returns a new player with a generated ID
func NewPlayer(displayName string) *Player {
	return &Player{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		hand:        make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Score returns the player's cumulative score
func (p *Player) Score() int {
	return p.score
}

// TricksWon returns the tricks the player has won this round
func (p *Player) TricksWon() int {
	return p.tricksWon
}

// MissedBids returns how many rounds the player's bid missed
func (p *Player) MissedBids() int {
	return p.missedBids
}

// resetForRound clears the hand and trick count. Score and missed bids carry
// across rounds
func (p *Player) resetForRound() {
	p.hand = make(deck.Hand, 0)
	p.tricksWon = 0
}

// resetForGame clears everything for a fresh game with the same players
func (p *Player) resetForGame() {
	p.resetForRound()
	p.score = 0
	p.missedBids = 0
}

package game

import (
	"errors"
	"fmt"
)

// ErrGameFull is an error when a player tries to join a full or started game
var ErrGameFull = errors.New("the game is full")

// ErrWrongState is an error when an operation is not valid for the current game state
var ErrWrongState = errors.New("operation is not valid in the current game state")

// ErrNotYourTurn is returned when it's not the player's turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrInvalidBid is an error when a bid is negative or exceeds the cards dealt
var ErrInvalidBid = errors.New("bid must be between 0 and the number of cards dealt")

// ErrHookedBid is an error when the dealer's bid would make the bids add up to the tricks available
var ErrHookedBid = errors.New("dealer's bid cannot make total bids equal total tricks")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in your hand")

// ErrMustFollowSuit happens when a player holds a card of the led suit and plays an off-suit card
var ErrMustFollowSuit = errors.New("you must follow the led suit")

// ErrInvalidConfig is an error on the game options
var ErrInvalidConfig = errors.New("invalid game configuration")

// ErrInsufficientCards is an error when a round would require more cards than the deck holds
var ErrInsufficientCards = errors.New("not enough cards in the deck for this round")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("need at least %d players, got %d", p.Min, p.Got)
}

// Kind classifies a failure so callers can decide whether to re-prompt the
// user or resynchronize their view of the game
type Kind int

// error kinds
const (
	KindInternal Kind = iota
	KindValidation
	KindState
)

// KindOf returns the Kind for the given engine error
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotYourTurn),
		errors.Is(err, ErrInvalidBid),
		errors.Is(err, ErrHookedBid),
		errors.Is(err, ErrCardNotInHand),
		errors.Is(err, ErrMustFollowSuit),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInsufficientCards):
		return KindValidation
	case errors.Is(err, ErrWrongState), errors.Is(err, ErrGameFull):
		return KindState
	}

	var pce PlayerCountError
	if errors.As(err, &pce) {
		return KindState
	}

	return KindInternal
}

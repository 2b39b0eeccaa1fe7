package game

import (
	"updownriver-server/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a game
type State string

// lifecycle states
const (
	StateLobby    State = "lobby"
	StateBidding  State = "bidding"
	StatePlaying  State = "playing"
	StateScoring  State = "scoring"
	StateFinished State = "finished"
)

// Game is a single game of Up and Down the River.
// Rounds climb from one card up to the configured ceiling and back down to
// one. The zero seat deals the first round and the deal rotates left.
//
// Game is not safe for concurrent use; callers must serialize access per game.
type Game struct {
	id      string
	options Options
	logger  logrus.FieldLogger

	// players in seat order. The order is fixed once the game starts and
	// defines the turn rotation
	players []*Player

	state         State
	currentRound  *Round
	roundSequence []int
	roundIndex    int
	roundResults  []RoundResult

	// deckSeed, if non-zero, seeds every shuffle. Tests only
	deckSeed int64
}

// NewGame returns a new game in the lobby state with the host seated
func NewGame(logger logrus.FieldLogger, hostName string, opts Options) (*Game, *Player, error) {
	opts.applyDefaults()

	if opts.MaxCards < 1 || opts.MaxCards*opts.MinPlayers+2 > deck.Size {
		return nil, nil, ErrInvalidConfig
	}

	host := NewPlayer(hostName)
	g := &Game{
		id:      uuid.New().String(),
		options: opts,
		logger:  logger,
		players: []*Player{host},
		state:   StateLobby,
	}

	g.logger.WithFields(logrus.Fields{
		"game":     g.id,
		"maxCards": opts.MaxCards,
	}).Info("game created")

	return g, host, nil
}

// ID returns the game's unique identifier
func (g *Game) ID() string {
	return g.id
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// AddPlayer seats a new player.
// Joining fails once the game has started or all seats are taken
func (g *Game) AddPlayer(displayName string) (*Player, error) {
	if g.state != StateLobby || len(g.players) >= g.options.MaxPlayers {
		return nil, ErrGameFull
	}

	p := NewPlayer(displayName)
	g.players = append(g.players, p)

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"player": p.ID,
	}).Info("player joined")

	return p, nil
}

// Start locks the seating, computes the round sequence, and deals the first
// round. The ceiling is clamped so every round can be dealt from one deck
// for the seated player count
func (g *Game) Start() error {
	if g.state != StateLobby {
		return ErrWrongState
	}

	n := len(g.players)
	if n < g.options.MinPlayers {
		return PlayerCountError{Min: g.options.MinPlayers, Got: n}
	}

	maxCards := g.options.MaxCards
	if most := (deck.Size - 2) / n; maxCards > most {
		maxCards = most
	}

	sequence := make([]int, 0, maxCards*2-1)
	for i := 1; i <= maxCards; i++ {
		sequence = append(sequence, i)
	}
	for i := maxCards - 1; i >= 1; i-- {
		sequence = append(sequence, i)
	}

	g.roundSequence = sequence
	g.roundIndex = 0

	return g.startRound()
}

// startRound rotates the dealer, deals this round's cards, and opens bidding
func (g *Game) startRound() error {
	n := len(g.players)

	dealer := 0
	if g.currentRound != nil {
		dealer = (g.currentRound.DealerIndex + 1) % n
	}

	totalCards := g.roundSequence[g.roundIndex]

	d := deck.New()
	if g.deckSeed != 0 {
		d.SetSeed(g.deckSeed)
	}
	d.Shuffle()

	// both jokers must always be in play
	if totalCards*n+2 > d.CardsLeft() {
		return ErrInsufficientCards
	}

	for _, p := range g.players {
		p.resetForRound()
	}

	for i := 0; i < totalCards; i++ {
		for _, p := range g.players {
			card, err := d.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}
	}

	bidOrder := make([]string, n)
	for i := 0; i < n; i++ {
		bidOrder[i] = g.players[(dealer+1+i)%n].ID
	}

	g.currentRound = &Round{
		Number:      g.roundIndex + 1,
		TotalCards:  totalCards,
		DealerIndex: dealer,
		BidOrder:    bidOrder,
		Bids:        make(map[string]int),
	}
	g.state = StateBidding

	g.logger.WithFields(logrus.Fields{
		"game":       g.id,
		"round":      g.currentRound.Number,
		"totalCards": totalCards,
		"dealer":     dealer,
		"seed":       d.Seed(),
	}).Debug("round dealt")

	return nil
}

// scoreRound settles every player's bid, archives the results, and either
// deals the next round or finishes the game
func (g *Game) scoreRound() error {
	g.state = StateScoring
	r := g.currentRound

	results := make([]PlayerResult, len(g.players))
	for i, p := range g.players {
		bid := r.Bids[p.ID]
		roundScore := g.options.Scoring(bid, p.tricksWon)
		p.score += roundScore
		if bid != p.tricksWon {
			p.missedBids++
		}

		results[i] = PlayerResult{
			PlayerID:   p.ID,
			Bid:        bid,
			TricksWon:  p.tricksWon,
			RoundScore: roundScore,
		}
	}

	g.roundResults = append(g.roundResults, RoundResult{
		RoundNumber: r.Number,
		TotalCards:  r.TotalCards,
		Results:     results,
	})

	g.logger.WithFields(logrus.Fields{
		"game":  g.id,
		"round": r.Number,
	}).Info("round scored")

	g.roundIndex++
	if g.roundIndex < len(g.roundSequence) {
		return g.startRound()
	}

	g.currentRound = nil
	g.state = StateFinished

	g.logger.WithField("game", g.id).Info("game finished")
	return nil
}

// Reset puts the game back in the lobby with the same players and a clean
// slate of scores
func (g *Game) Reset() {
	for _, p := range g.players {
		p.resetForGame()
	}

	g.state = StateLobby
	g.currentRound = nil
	g.roundSequence = nil
	g.roundIndex = 0
	g.roundResults = nil

	g.logger.WithField("game", g.id).Info("game reset")
}

// seatOf returns the seat index for the player, or -1
func (g *Game) seatOf(playerID string) int {
	for i, p := range g.players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

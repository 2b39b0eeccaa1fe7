package game

import (
	"testing"

	"updownriver-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// testGame returns a lobby game with the given players seated
func testGame(t *testing.T, opts Options, names ...string) *Game {
	t.Helper()

	g, _, err := NewGame(logrus.StandardLogger(), names[0], opts)
	assert.NoError(t, err)

	for _, name := range names[1:] {
		_, err := g.AddPlayer(name)
		assert.NoError(t, err)
	}

	return g
}

// setupPlaying builds a game mid-round with known hands, all bids at zero,
// and seat 0 leading the open trick. The last seat is the dealer
func setupPlaying(t *testing.T, hands ...string) *Game {
	t.Helper()

	opts := DefaultOptions()

	players := make([]*Player, len(hands))
	for i, h := range hands {
		players[i] = NewPlayer("player")
		players[i].hand = deck.Hand(deck.CardsFromString(h))
	}

	totalCards := len(players[0].hand)
	opts.MaxCards = totalCards

	bidOrder := make([]string, len(players))
	bids := make(map[string]int)
	for i, p := range players {
		bidOrder[i] = p.ID
		bids[p.ID] = 0
	}

	return &Game{
		id:            "test-game",
		options:       opts,
		logger:        logrus.StandardLogger(),
		players:       players,
		state:         StatePlaying,
		roundSequence: []int{totalCards},
		currentRound: &Round{
			Number:         1,
			TotalCards:     totalCards,
			DealerIndex:    len(players) - 1,
			BidOrder:       bidOrder,
			Bids:           bids,
			CurrentBidTurn: len(players),
			CurrentTrick:   &Trick{},
		},
	}
}

// playThrough bids zero for everyone and plays the first legal card until
// the game finishes. It returns the dealer seat observed for each round
func playThrough(t *testing.T, g *Game) map[int]int {
	t.Helper()

	dealers := make(map[int]int)
	for g.state == StateBidding || g.state == StatePlaying {
		if g.state == StateBidding {
			r := g.currentRound
			dealers[r.Number] = r.DealerIndex
			assert.NoError(t, g.PlaceBid(r.BidOrder[r.CurrentBidTurn], 0))
			continue
		}

		trick := g.currentRound.CurrentTrick
		seat := (trick.Leader + trick.TurnIndex) % len(g.players)
		player := g.players[seat]

		played := false
		for _, card := range player.Hand() {
			if g.legalPlay(player, card, trick) == nil {
				assert.NoError(t, g.PlayCard(player.ID, card))
				played = true
				break
			}
		}

		if !played {
			t.Fatal("player has no legal play")
		}
	}

	return dealers
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	g, host, err := NewGame(logrus.StandardLogger(), "alice", Options{MaxCards: 3})
	a.NoError(err)
	a.NotNil(g)
	a.NotEmpty(g.ID())
	a.Equal(StateLobby, g.State())
	a.Equal("alice", host.DisplayName)
	a.Equal(1, len(g.Players()))
}

func TestNewGame_invalidConfig(t *testing.T) {
	a := assert.New(t)

	_, _, err := NewGame(logrus.StandardLogger(), "alice", Options{MaxCards: 0})
	a.Equal(ErrInvalidConfig, err)

	// 27 cards for 2 players would need 56 cards
	_, _, err = NewGame(logrus.StandardLogger(), "alice", Options{MaxCards: 27})
	a.Equal(ErrInvalidConfig, err)

	_, _, err = NewGame(logrus.StandardLogger(), "alice", Options{MaxCards: 26})
	a.NoError(err)
}

func TestGame_AddPlayer(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 3}, "alice", "bob")
	a.Equal(2, len(g.Players()))

	for i := 0; i < 4; i++ {
		_, err := g.AddPlayer("extra")
		a.NoError(err)
	}

	// seventh seat
	_, err := g.AddPlayer("too-many")
	a.Equal(ErrGameFull, err)

	g2 := testGame(t, Options{MaxCards: 3}, "alice", "bob")
	a.NoError(g2.Start())

	_, err = g2.AddPlayer("late")
	a.Equal(ErrGameFull, err)
}

func TestGame_Start(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 3}, "alice", "bob")
	a.NoError(g.Start())
	a.Equal(StateBidding, g.State())
	a.Equal([]int{1, 2, 3, 2, 1}, g.roundSequence)

	r := g.currentRound
	a.Equal(1, r.Number)
	a.Equal(1, r.TotalCards)
	a.Equal(0, r.DealerIndex)

	// bidding starts left of the dealer, dealer bids last
	a.Equal(g.players[1].ID, r.BidOrder[0])
	a.Equal(g.players[0].ID, r.BidOrder[1])

	for _, p := range g.players {
		a.Equal(1, len(p.Hand()))
	}

	a.Equal(ErrWrongState, g.Start())
}

func TestGame_Start_notEnoughPlayers(t *testing.T) {
	g, _, err := NewGame(logrus.StandardLogger(), "alice", Options{MaxCards: 3})
	assert.NoError(t, err)

	err = g.Start()
	assert.EqualError(t, err, "need at least 2 players, got 1")
	assert.Equal(t, KindState, KindOf(err))
}

func TestGame_Start_clampsMaxCards(t *testing.T) {
	// 26 is fine for two players, but four players can only be dealt 13 each
	g := testGame(t, Options{MaxCards: 26}, "a", "b", "c", "d")
	assert.NoError(t, g.Start())

	assert.Equal(t, 25, len(g.roundSequence))
	assert.Equal(t, 13, g.roundSequence[12])
}

func TestGame_dealIsDisjoint(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 13}, "a", "b", "c", "d")
	a.NoError(g.Start())

	// skip ahead to the 13-card round
	g.roundIndex = 12
	a.NoError(g.startRound())

	seen := make(map[deck.Card]bool)
	for _, p := range g.players {
		a.Equal(13, len(p.Hand()))
		for _, c := range p.Hand() {
			a.False(seen[*c], "card dealt twice: %s", c)
			seen[*c] = true
		}
	}

	a.Equal(52, len(seen))
}

func TestGame_deterministicDeal(t *testing.T) {
	build := func() *Game {
		g := testGame(t, Options{MaxCards: 5}, "alice", "bob")
		g.deckSeed = 42
		assert.NoError(t, g.Start())
		return g
	}

	g1 := build()
	g2 := build()

	for i := range g1.players {
		assert.Equal(t, g1.players[i].Hand().String(), g2.players[i].Hand().String())
	}
}

func TestGame_fullGame(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 2}, "alice", "bob", "carol")
	g.deckSeed = 7
	a.NoError(g.Start())

	dealers := playThrough(t, g)

	a.Equal(StateFinished, g.State())
	a.Nil(g.currentRound)
	a.Equal(3, len(g.roundResults))

	// deal rotates left every round
	a.Equal(map[int]int{1: 0, 2: 1, 3: 2}, dealers)

	// every round's tricks are fully accounted for
	for _, result := range g.roundResults {
		total := 0
		for _, pr := range result.Results {
			total += pr.TricksWon
		}
		a.Equal(result.TotalCards, total)
	}

	// nothing left to do on a finished game
	a.Equal(ErrWrongState, g.PlaceBid(g.players[0].ID, 0))
	a.Equal(ErrWrongState, g.PlayCard(g.players[0].ID, deck.CardFromString("2c")))
}

func TestGame_singleCardScenario(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 1}, "a", "b", "c", "d")
	a.NoError(g.Start())

	playThrough(t, g)

	a.Equal(StateFinished, g.State())
	a.Equal(1, len(g.roundResults))

	winners := 0
	for _, pr := range g.roundResults[0].Results {
		if pr.TricksWon == 1 {
			winners++
		}
	}
	a.Equal(1, winners, "exactly one player takes the only trick")

	// everyone bid zero: the trick winner missed, the rest hit
	for _, p := range g.players {
		if p.TricksWon() == 1 {
			a.Equal(0, p.Score())
			a.Equal(1, p.MissedBids())
		} else {
			a.Equal(10, p.Score())
			a.Equal(0, p.MissedBids())
		}
	}
}

func TestGame_Reset(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, Options{MaxCards: 1}, "alice", "bob")
	a.NoError(g.Start())
	playThrough(t, g)
	a.Equal(StateFinished, g.State())

	id := g.ID()
	players := g.Players()

	g.Reset()

	a.Equal(StateLobby, g.State())
	a.Equal(id, g.ID())
	a.Nil(g.currentRound)
	a.Empty(g.roundResults)

	reset := g.Players()
	a.Equal(len(players), len(reset))
	for i, p := range reset {
		a.Equal(players[i].ID, p.ID)
		a.Equal(0, p.Score())
		a.Equal(0, p.TricksWon())
		a.Equal(0, p.MissedBids())
		a.Empty(p.Hand())
	}

	// the same game can be started again
	a.NoError(g.Start())
	a.Equal(StateBidding, g.State())
}

package game

import (
	"updownriver-server/pkg/deck"
)

// Snapshot is the game state as seen by one player.
// Only the requesting player's hand is included; everyone else exposes a
// card count. A snapshot shares no memory with the live game
type Snapshot struct {
	GameID        string         `json:"gameId"`
	State         State          `json:"state"`
	Players       []*PlayerState `json:"players"`
	CurrentRound  *RoundState    `json:"currentRound,omitempty"`
	RoundSequence []int          `json:"roundSequence,omitempty"`
	RoundResults  []RoundResult  `json:"roundResults"`
}

// PlayerState is one player's public state, plus the hand when the snapshot
// belongs to that player
type PlayerState struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Hand        deck.Hand `json:"hand,omitempty"`
	CardsInHand int       `json:"cardsInHand"`
	Score       int       `json:"score"`
	TricksWon   int       `json:"tricksWon"`
	MissedBids  int       `json:"missedBids"`
}

// RoundState is the in-progress round as exposed to clients
type RoundState struct {
	RoundNumber    int            `json:"roundNumber"`
	TotalCards     int            `json:"totalCards"`
	DealerIndex    int            `json:"dealerIndex"`
	BidOrder       []string       `json:"bidOrder"`
	Bids           map[string]int `json:"bids"`
	CurrentBidTurn int            `json:"currentBidTurn"`
	CurrentTrick   *Trick         `json:"currentTrick,omitempty"`
	Tricks         []*Trick       `json:"tricks,omitempty"`
}

// Snapshot returns the state visible to the requesting player.
// An unknown requester gets the spectator view: all hands hidden
func (g *Game) Snapshot(requesterID string) *Snapshot {
	players := make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		ps := &PlayerState{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			CardsInHand: len(p.hand),
			Score:       p.score,
			TricksWon:   p.tricksWon,
			MissedBids:  p.missedBids,
		}

		if p.ID == requesterID {
			ps.Hand = p.hand.Clone()
		}

		players[i] = ps
	}

	snapshot := &Snapshot{
		GameID:        g.id,
		State:         g.state,
		Players:       players,
		RoundSequence: append([]int{}, g.roundSequence...),
		RoundResults:  append([]RoundResult{}, g.roundResults...),
	}

	if r := g.currentRound; r != nil {
		bids := make(map[string]int, len(r.Bids))
		for id, bid := range r.Bids {
			bids[id] = bid
		}

		tricks := make([]*Trick, len(r.Tricks))
		for i, t := range r.Tricks {
			tricks[i] = cloneTrick(t)
		}

		snapshot.CurrentRound = &RoundState{
			RoundNumber:    r.Number,
			TotalCards:     r.TotalCards,
			DealerIndex:    r.DealerIndex,
			BidOrder:       append([]string{}, r.BidOrder...),
			Bids:           bids,
			CurrentBidTurn: r.CurrentBidTurn,
			CurrentTrick:   cloneTrick(r.CurrentTrick),
			Tricks:         tricks,
		}
	}

	return snapshot
}

func cloneTrick(t *Trick) *Trick {
	if t == nil {
		return nil
	}

	plays := make([]*Play, len(t.Plays))
	for i, play := range t.Plays {
		card := *play.Card
		plays[i] = &Play{
			PlayerID: play.PlayerID,
			Card:     &card,
		}
	}

	return &Trick{
		Leader:    t.Leader,
		TurnIndex: t.TurnIndex,
		Plays:     plays,
		WinnerID:  t.WinnerID,
	}
}

package game

import (
	"updownriver-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// PlayCard plays a card for the player whose turn it is.
// When the last card of a trick lands, the trick is resolved immediately:
// the winner's trick count goes up, and either a new trick opens with the
// winner leading, or the round is scored
func (g *Game) PlayCard(playerID string, card *deck.Card) error {
	if g.state != StatePlaying {
		return ErrWrongState
	}

	r := g.currentRound
	t := r.CurrentTrick
	n := len(g.players)

	seat := (t.Leader + t.TurnIndex) % n
	if g.players[seat].ID != playerID {
		return ErrNotYourTurn
	}

	player := g.players[seat]
	if !player.hand.HasCard(card) {
		return ErrCardNotInHand
	}

	if err := g.legalPlay(player, card, t); err != nil {
		return err
	}

	player.hand.Discard(card)
	t.Plays = append(t.Plays, &Play{PlayerID: playerID, Card: card})
	t.TurnIndex++

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"player": playerID,
		"card":   card.String(),
	}).Debug("card played")

	if len(t.Plays) == n {
		return g.finishTrick()
	}

	return nil
}

// legalPlay returns nil if the card may be played on the current trick.
// Leading is unrestricted. A joker is always legal. A follower must play the
// led suit only when they hold a standard card of it; a held joker does not
// force a satisfying play
func (g *Game) legalPlay(player *Player, card *deck.Card, t *Trick) error {
	if len(t.Plays) == 0 {
		return nil
	}

	led := t.LedSuit()
	if card.SatisfiesLead(led) {
		return nil
	}

	if player.hand.HasSuit(led) {
		return ErrMustFollowSuit
	}

	return nil
}

// finishTrick resolves the completed trick, then opens the next trick or
// hands off to scoring once all of the round's tricks have been played
func (g *Game) finishTrick() error {
	r := g.currentRound
	t := r.CurrentTrick

	winner := winningPlay(t)
	t.WinnerID = winner.PlayerID

	seat := g.seatOf(winner.PlayerID)
	g.players[seat].tricksWon++
	r.Tricks = append(r.Tricks, t)

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"winner": winner.PlayerID,
		"card":   winner.Card.String(),
	}).Debug("trick won")

	completed := 0
	for _, p := range g.players {
		completed += p.tricksWon
	}

	if completed == r.TotalCards {
		return g.scoreRound()
	}

	r.CurrentTrick = &Trick{Leader: seat}
	return nil
}

// winningPlay determines the winner of a completed trick.
// Any trump (spade or joker) beats every non-trump; otherwise the highest
// card of the led suit wins. Rank values are tie-free: the two jokers carry
// distinct values above the ace of spades
func winningPlay(t *Trick) *Play {
	var best *Play
	for _, play := range t.Plays {
		if play.Card.IsTrump() {
			if best == nil || !best.Card.IsTrump() || play.Card.RankValue() > best.Card.RankValue() {
				best = play
			}
		}
	}

	if best != nil {
		return best
	}

	led := t.LedSuit()
	for _, play := range t.Plays {
		if play.Card.Suit != led {
			continue
		}

		if best == nil || play.Card.RankValue() > best.Card.RankValue() {
			best = play
		}
	}

	return best
}

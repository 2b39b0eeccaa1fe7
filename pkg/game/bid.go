package game

import (
	"github.com/sirupsen/logrus"
)

// PlaceBid records a bid for the player whose turn it is.
// Once the last player bids, the first trick opens with the player
// immediately after the dealer leading
func (g *Game) PlaceBid(playerID string, bid int) error {
	if g.state != StateBidding {
		return ErrWrongState
	}

	r := g.currentRound
	if r.BidOrder[r.CurrentBidTurn] != playerID {
		return ErrNotYourTurn
	}

	if bid < 0 || bid > r.TotalCards {
		return ErrInvalidBid
	}

	// the dealer bids last
	if g.options.DealerHook && r.CurrentBidTurn == len(r.BidOrder)-1 && r.TotalCards > 1 {
		if r.bidSum()+bid == r.TotalCards {
			return ErrHookedBid
		}
	}

	r.Bids[playerID] = bid
	r.CurrentBidTurn++

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"player": playerID,
		"bid":    bid,
	}).Debug("bid placed")

	if r.CurrentBidTurn == len(r.BidOrder) {
		r.CurrentTrick = &Trick{
			Leader: (r.DealerIndex + 1) % len(g.players),
		}
		g.state = StatePlaying
	}

	return nil
}

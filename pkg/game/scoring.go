package game

// ScoringPolicy determines the points a player earns for a round given their
// bid and the tricks they actually won. A policy must be deterministic and
// must score an exact bid strictly higher than any miss.
type ScoringPolicy func(bid, tricksWon int) int

// TenPlusBid awards 10 points plus the bid for an exact bid, and nothing for
// a miss.
// TODO: confirm the house point values with the product owner; only the
// hit/miss ordering is settled.
func TenPlusBid(bid, tricksWon int) int {
	if bid == tricksWon {
		return 10 + bid
	}

	return 0
}

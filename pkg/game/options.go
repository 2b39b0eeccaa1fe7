package game

// Options configure a game of Up and Down the River
type Options struct {
	// MaxCards is the ceiling of the round-size progression (1..MaxCards..1)
	MaxCards int

	// MinPlayers required to start. Defaults to 2
	MinPlayers int

	// MaxPlayers allowed to join. Defaults to 6
	MaxPlayers int

	// DealerHook forbids the dealer's bid from making the bids add up to the
	// number of tricks when more than one card is dealt. Off by default
	DealerHook bool

	// Scoring determines the points awarded for a (bid, tricksWon) pair.
	// Defaults to TenPlusBid
	Scoring ScoringPolicy
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{
		MaxCards:   10,
		MinPlayers: 2,
		MaxPlayers: 6,
		Scoring:    TenPlusBid,
	}
}

func (o *Options) applyDefaults() {
	if o.MinPlayers == 0 {
		o.MinPlayers = 2
	}

	if o.MaxPlayers == 0 {
		o.MaxPlayers = 6
	}

	if o.Scoring == nil {
		o.Scoring = TenPlusBid
	}
}

package rng

// Generator is a source of random numbers for shuffling
type Generator interface {
	// Intn returns a random number in [0, n)
	Intn(n int) int

	// Int63 returns a non-negative random 63-bit integer
	Int63() int64
}

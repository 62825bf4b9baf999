package blaster

//go:generate go tool mockgen -destination=./mocks/random_mock.go -package=mocks . Random

// Random is the source of every random draw the core makes. *rand.Rand
// satisfies it.
type Random interface {
	Float64() float64
}

// between returns a uniform value in [lo, hi). A reversed range is sampled
// from the other side rather than rejected.
func between(rng Random, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// sign returns -1 or 1 with equal probability.
func sign(rng Random) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

package ports

// Random is the source used to shuffle problems. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

package graveyard

import "hash/maphash"

// newHashSeed returns a fresh per-table seed. Using a random seed per table
// (rather than a single process-wide seed) avoids one table's degenerate
// probe sequences being reproducible by an attacker who can predict
// insertion order, the same rationale github.com/cockroachdb/swiss documents
// for its seed field.
func newHashSeed() maphash.Seed {
	return maphash.MakeSeed()
}

// defaultHashFunc builds the default hash function for a table: Go's
// hash/maphash applied via maphash.Comparable, the idiom demonstrated by
// github.com/philpearl/gcswiss's table.go in place of
// github.com/cockroachdb/swiss's unsafe extraction of the runtime map's
// hash function (which only works for types the runtime itself can hash and
// does not survive being copied out of its original package).
func defaultHashFunc[K comparable](seed maphash.Seed) func(K) uint64 {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

func defaultEqFunc[K comparable]() func(a, b K) bool {
	return func(a, b K) bool { return a == b }
}

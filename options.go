package graveyard

// config collects the configuration enumeration from spec §6, plus the
// generic hooks (allocator, hash, equality) that must be parameterized by
// K and V. It is built up by applying a chain of Option values, the way
// github.com/cockroachdb/swiss's option[K,V] interface configures a Map.
type config[K comparable, V any] struct {
	slotsPerBin int

	fullNumerator, fullDenominator         int
	rehashedNumerator, rehashedDenominator int

	propagateOnCopy, propagateOnMove, propagateOnSwap bool

	debugGenerations    bool
	backwardsInsertFuzz bool

	allocator   Allocator[K, V]
	hash        func(K) uint64
	eq          func(K, K) bool
	telemetry   Telemetry
}

func defaultConfig[K comparable, V any]() config[K, V] {
	seed := newHashSeed()
	return config[K, V]{
		slotsPerBin:            defaultSlotsPerBin,
		fullNumerator:          7,
		fullDenominator:        8,
		rehashedNumerator:      7,
		rehashedDenominator:    16,
		propagateOnCopy:        true,
		propagateOnMove:        true,
		propagateOnSwap:        true,
		debugGenerations:       false,
		backwardsInsertFuzz:    false,
		allocator:              defaultAllocator[K, V]{},
		hash:                   defaultHashFunc[K](seed),
		eq:                     defaultEqFunc[K](),
		telemetry:              noopTelemetry{},
	}
}

// Option configures a Set or Map at construction time.
type Option[K comparable, V any] interface {
	apply(c *config[K, V])
}

type optionFunc[K comparable, V any] func(c *config[K, V])

func (f optionFunc[K, V]) apply(c *config[K, V]) { f(c) }

// WithSlotsPerBin overrides the number of live slots in each bin (B in the
// spec). It must be in [1, 16]; values are clamped.
func WithSlotsPerBin[K comparable, V any](n int) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		if n < 1 {
			n = 1
		}
		if n > groupWidth {
			n = groupWidth
		}
		c.slotsPerBin = n
	})
}

// WithLoadFactor overrides the full_numerator/full_denominator ratio that
// triggers a resize.
func WithLoadFactor[K comparable, V any](numerator, denominator int) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.fullNumerator, c.fullDenominator = numerator, denominator
	})
}

// WithRehashDensity overrides the rehashed_numerator/rehashed_denominator
// target density after a rehash.
func WithRehashDensity[K comparable, V any](numerator, denominator int) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.rehashedNumerator, c.rehashedDenominator = numerator, denominator
	})
}

// WithAllocatorPropagation configures which of copy/move/swap exchange the
// configured Allocator, mirroring the three booleans spec §9 collapses the
// legacy allocator-propagation-trait machinery into.
func WithAllocatorPropagation[K comparable, V any](onCopy, onMove, onSwap bool) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.propagateOnCopy, c.propagateOnMove, c.propagateOnSwap = onCopy, onMove, onSwap
	})
}

// WithDebugGenerations turns on the per-table generation counter used to
// trap use of an iterator that has outlived a rehash.
func WithDebugGenerations[K comparable, V any]() Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.debugGenerations = true })
}

// WithBackwardsInsertFuzz turns on the debug entropy source described in
// spec §4.4: on every seventh insert outside small mode, insert into the
// highest-indexed empty lane of a bin rather than the lowest, to perturb
// iteration order. The choice is counter-driven, so it is the same on
// every run.
func WithBackwardsInsertFuzz[K comparable, V any]() Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.backwardsInsertFuzz = true })
}

// WithAllocator installs a custom Allocator, e.g. MmapAllocator.
func WithAllocator[K comparable, V any](a Allocator[K, V]) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.allocator = a })
}

// WithHash installs a custom hash function in place of the hash/maphash
// default.
func WithHash[K comparable, V any](hash func(K) uint64) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.hash = hash })
}

// WithEqual installs a custom equality function in place of Go's built-in
// ==.
func WithEqual[K comparable, V any](eq func(a, b K) bool) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.eq = eq })
}

// WithTelemetry installs a Telemetry recorder, e.g. for tests that want to
// observe rehash counts (spec §6, "sampling/telemetry").
func WithTelemetry[K comparable, V any](t Telemetry) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) { c.telemetry = t })
}

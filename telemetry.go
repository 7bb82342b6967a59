package graveyard

// Telemetry is the opaque sampling hook referenced in spec §6/§9: a no-op
// in standalone builds, kept as a trait object purely so tests (and callers
// embedding this package in a server) can substitute a recorder. Modeled on
// Abseil's HashtablezInfoHandle, simplified to the handful of events this
// core can report without adding a suspension point or lock of its own.
type Telemetry interface {
	OnRehash(oldCapacity, newCapacity, size int)
	OnResize(oldCapacity, newCapacity int)
}

type noopTelemetry struct{}

func (noopTelemetry) OnRehash(oldCapacity, newCapacity, size int) {}
func (noopTelemetry) OnResize(oldCapacity, newCapacity int)       {}

// Recorder is a Telemetry implementation that accumulates events for use in
// tests, in place of a real sampling backend.
type Recorder struct {
	RehashCount int
	ResizeCount int
	LastSize    int
}

func (r *Recorder) OnRehash(oldCapacity, newCapacity, size int) {
	r.RehashCount++
	r.LastSize = size
}

func (r *Recorder) OnResize(oldCapacity, newCapacity int) {
	r.ResizeCount++
}

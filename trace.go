package graveyard

import "fmt"

// trace is the compile-time tracing switch. It mirrors
// github.com/cockroachdb/swiss's debug const: flip to true and rebuild to
// get a step-by-step log of probing decisions. Left false in committed
// code since the fmt.Printf calls it guards are dead code at that point and
// cost nothing.
const trace = false

func tracef(format string, args ...any) {
	if trace {
		fmt.Printf(format, args...)
	}
}

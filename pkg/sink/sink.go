// Package sink provides output destinations for rendered text fragments.
//
// # Overview
//
// A "sink" is the single capability the formatting core needs from its
// output: accept a string fragment and durably record it. The core writes
// rendered lines fragment by fragment (word, separator run, terminator) and
// never buffers a whole line itself, so a sink must either fully apply each
// fragment or fail the run with an error.
//
// Three implementations are provided:
//
//   - [Stdout]: writes to standard output
//   - [File]: writes to a file it owns; the caller must Close it
//   - [Buffer]: accumulates fragments in memory, for tests and previews
//
// # Ownership
//
// A sink is exclusively borrowed by one formatting run for the call's
// duration. The core never retains a sink after the run returns, and sinks
// are not safe for concurrent use by multiple runs.
package sink

// Sink accepts rendered text fragments.
//
// Write either fully applies the fragment or returns an error, in which
// case the run that borrowed the sink aborts. Implementations perform no
// retries; a failed fragment fails the whole run.
type Sink interface {
	Write(fragment string) error
}

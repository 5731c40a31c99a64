// Package align reformats plain text into fixed-width lines.
//
// # Overview
//
// The package greedily packs words into lines no wider than a configured
// maximum, then renders each completed line through a [sink.Sink] according
// to an alignment [Mode]:
//
//   - [Left]: words joined by single spaces, no padding
//   - [Right]: leading spaces pad the line out to the full width
//   - [Justify]: extra spaces are distributed across the inter-word gaps so
//     every line spans exactly the full width
//
// The entry point is [Run]:
//
//	var buf sink.Buffer
//	err := align.Run("Hi there! My name is Roben Li.\n", &buf, 10, align.Justify)
//	// buf.String() == "Hi  there!\nMy name is\nRoben  Li.\n"
//
// # Tokenization
//
// The whole input is tokenized at once. Line terminators are hard breaks:
// each input line is wrapped independently, and interior blank lines are
// preserved as blank output lines. Within a line, words are split on literal
// space characters. Width is measured in basic code units (bytes), not
// visual columns; grapheme-aware measurement and hyphenation are out of
// scope.
//
// # Errors
//
// A word longer than the configured width can never be placed on any line.
// [Run] detects this before emitting any output and returns an error with
// code [errors.ErrCodeWordTooLong]. Sink write failures are propagated
// verbatim; the core performs no retries and emits nothing further once a
// write fails.
//
// # Concurrency
//
// Run is a pure synchronous function of its inputs. It holds no state across
// calls, but the sink passed to it is exclusively borrowed for the call's
// duration; concurrent runs must not share a sink.
package align

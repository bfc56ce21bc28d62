// Package loader decodes the JSON wire format for a cyclic proof's trace
// structure into a hgraph.HeightedGraph, and decodes the CLI's flag-letter
// string into a closure.Flags. Parse failures here are the only errors this
// module classifies as InputParseError (SPEC_FULL.md §7): every other
// package's errors are InvariantViolation or MalformedGraph.
package loader

// Package parse provides utilities for converting raw LLM text output into
// typed Go values. Because language models frequently emit JSON with minor
// syntax errors or wrap values in schema-style envelopes, this package applies
// a layered recovery strategy (automatic JSON repair, then schema unwrapping)
// before falling back to a clear error.
//
// The main entry point is the generic [ParseStringAs] function, which handles
// both primitive types (string, bool, int, float) and complex types (structs,
// maps, slices) in a single, uniform API.
package parse

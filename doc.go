// Package playfair is a small, immutable engine for the classical Playfair
// cipher — build a 5×5 key square from any key, then transform text two
// letters at a time, forward or back.
//
// 🚀 What is playfair?
//
//	A pure-Go rendition of the historical digraph-substitution cipher:
//		• Key squares: deduplicated key letters + the remaining alphabet, I/J merged
//		• Wrap border: O(1) neighbor lookups past any edge, no modulo arithmetic
//		• Digraph rules: same row, same column, rectangle swap
//		• Filler 'x' for doubled letters and odd trailing letters
//		• Verbatim passthrough for every non-letter byte
//
// ✨ Why choose playfair?
//
//   - Faithful — reproduces the classical algorithm and its edge cases exactly
//   - Rock-solid guarantees — engines are immutable and safe to share across goroutines
//   - Pure Go — no cgo, no hidden deps
//   - Honest — Playfair falls to frequency analysis; use it for history and puzzles, never for secrets
//
// Under the hood, everything is organized under two subpackages:
//
//	cipher/ — the engine: digraph tokenizer, pair substitution, Encode/Decode
//	square/ — the 5×5 key square builder, position encoding & wrap border
//
// Quick ASCII example, key square for "playfair example":
//
//	p l a y f
//	i r e x m
//	b c d g h
//	k n o q s
//	t u v w z
//
// Only lowercase a–z are cipher content: uppercase letters, digits and
// punctuation pass through untouched, so fold case before encoding if you
// want case-insensitive behavior.
//
// Dive into the examples/ programs and each package's example_test.go for
// full walkthroughs.
//
//	go get github.com/katalvlaran/playfair
package playfair

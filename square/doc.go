// Package square builds and serves the Playfair Key Square: the 5×5 grid of
// 25 unique letters (I and J merged) derived from a key string, used as the
// substitution lookup table for digraph ciphers.
//
// What:
//
//   - New(key) arranges deduplicated key letters, then the remaining alphabet
//     in order, into a 5×5 grid — never fails, invalid bytes are skipped.
//   - Positions are packed as row*8+col (row, col ∈ 1..5), so row and column
//     extract independently via bit masks.
//   - The letter table extends the 5×5 interior with a 7×7 wrap border:
//     one step past any edge resolves to the opposite edge without modulo
//     arithmetic.
//   - IndexOf/Letter expose the merged-alphabet mapping (lowercase a–z ↔
//     index 0..24, with 'j' folding onto 'i').
//
// Why:
//
//   - Digraph substitution needs O(1) “letter below/right of” lookups with
//     wrap-around; the border precomputes every such neighbor.
//   - The merged alphabet keeps exactly 25 slots so the grid is a bijection:
//     every index occupies a distinct cell, every cell holds one index.
//
// Complexity:
//
//   - New:        O(len(key) + 25) time, O(1) memory (fixed arrays).
//   - All lookups: O(1).
//
// A Square is immutable once built and safe to share across goroutines
// without locking.
//
// Only lowercase a–z are recognized as letters; everything else (including
// uppercase) is ignored by the builder. Callers wanting case-insensitive
// behavior must fold the key themselves.
package square

// Package cipher implements the classical Playfair digraph-substitution
// cipher on top of a key square: plaintext in, ciphertext out, two letters
// at a time.
//
// What:
//
//   - New(key) builds an immutable engine around a 5×5 key square — never fails.
//   - Encode/Decode transform text in a single left-to-right pass, grouping
//     lowercase letters into digraphs and substituting each pair via the
//     same-row, same-column, or rectangle rule.
//   - Doubled letters within a pair are split by the filler letter 'x';
//     an odd trailing letter is completed with the filler as well.
//   - Every byte outside lowercase a–z (spaces, punctuation, digits, and
//     uppercase letters) passes through verbatim and never participates in
//     pairing.
//
// Why:
//
//   - Historical cipher fidelity: the engine reproduces the pre-modern
//     Playfair algorithm exactly, merged I/J slot and filler rules included.
//   - Teaching and puzzles: round-trippable, deterministic, dependency-free.
//
// Complexity:
//
//   - Encode/Decode: O(len(text)) time, O(len(text)) output memory.
//     Each digraph substitution is O(1) via the square's wrap border.
//
// Errors:
//
//   - ErrEncoding: the transformed stream failed to reassemble into valid
//     UTF-8 text. Unreachable for valid UTF-8 inputs; exists to surface a
//     broken square invariant, not to handle expected input.
//
// Case sensitivity: only lowercase a–z are cipher content. Uppercase letters
// pass through untouched, so callers wanting case-insensitive behavior must
// lowercase the key and text themselves.
//
// Playfair is trivially broken by frequency analysis — this package is a
// classical algorithm, not a security primitive.
package cipher

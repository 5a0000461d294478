// Package cipher provides the Playfair digraph transform:
//
//   - Single-pass tokenizer grouping lowercase letters into pairs
//   - Filler insertion for doubled letters and odd trailing letters
//   - Same-row / same-column / rectangle substitution over the key square
//   - Verbatim passthrough of every non-letter byte
package cipher

import (
	"unicode/utf8"

	"github.com/katalvlaran/playfair/square"
)

// Cipher is an immutable Playfair engine bound to one key square.
// Encode and Decode are pure functions of (square, input); a Cipher is safe
// to share across goroutines without locking.
type Cipher struct {
	sq *square.Square
}

// New builds a Cipher from key. It never fails; key bytes outside lowercase
// a–z are skipped by the square builder.
// Complexity: O(len(key) + 25).
func New(key string) *Cipher {
	return &Cipher{sq: square.New(key)}
}

// Square exposes the engine's key square read-only, e.g. for rendering the
// 5×5 grid via its String method.
func (c *Cipher) Square() *square.Square {
	return c.sq
}

// Encode transforms plaintext into ciphertext.
// Returns ErrEncoding only if the output fails to reassemble into valid
// UTF-8 text (see package docs).
// Complexity: O(len(text)).
func (c *Cipher) Encode(text string) (string, error) {
	return c.Transform(text, Encode)
}

// Decode transforms ciphertext back into plaintext. Inverse of Encode up to
// inserted filler letters.
// Complexity: O(len(text)).
func (c *Cipher) Decode(text string) (string, error) {
	return c.Transform(text, Decode)
}

// Transform runs one directed Playfair pass over text.
//
// The pass keeps at most one pending first letter of an open digraph: its
// output slot temporarily holds the raw alphabet index and is patched in
// place once the pair completes, so passthrough bytes arriving between the
// two letters of a digraph keep their original relative order.
// Complexity: O(len(text)) time, one output buffer allocation.
func (c *Cipher) Transform(text string, dir Direction) (string, error) {
	out := make([]byte, 0, len(text)+1)
	pending := -1 // out-index of an open digraph's first letter, -1 if none
	for i := 0; i < len(text); i++ {
		b := text[i]
		idx, ok := square.IndexOf(b)
		if !ok {
			// Not cipher content: copy verbatim, pairing state unchanged.
			out = append(out, b)
			continue
		}
		if pending >= 0 {
			if out[pending] == idx {
				// Doubled letter: split with the filler and keep the repeat
				// as the next digraph's first letter.
				first, fill := c.pair(out[pending], square.FillerIndex, dir)
				out[pending] = first
				out = append(out, fill)
			} else {
				first, second := c.pair(out[pending], idx, dir)
				out[pending] = first
				out = append(out, second)
				pending = -1
				continue
			}
		}
		pending = len(out)
		out = append(out, idx)
	}
	if pending >= 0 {
		// Odd trailing letter: complete the digraph with the filler.
		first, fill := c.pair(out[pending], square.FillerIndex, dir)
		out[pending] = first
		out = append(out, fill)
	}

	if !utf8.Valid(out) {
		return "", ErrEncoding
	}

	return string(out), nil
}

// pair substitutes one digraph of alphabet indices and returns the two
// output letters. Complexity: O(1), no allocation.
func (c *Cipher) pair(a, b byte, dir Direction) (byte, byte) {
	posA := c.sq.PositionOf(a)
	posB := c.sq.PositionOf(b)
	if posA == posB {
		if a == square.FillerIndex {
			// The filler paired with itself has no classical definition;
			// leave the digraph's letters as they stand.
			return c.sq.At(posA), c.sq.At(posB)
		}
		// Shared cell means a == b: re-pair against the filler. This fires
		// at most once — the filler occupies a distinct cell under the
		// square's bijection — so no further dispatch is possible.
		posB = c.sq.PositionOf(square.FillerIndex)
	}

	switch {
	case square.SameCol(posA, posB):
		// One row down to encode, one row up to decode; the wrap border
		// resolves row 5 ↔ row 1 transparently.
		if dir == Encode {
			return c.sq.At(posA + square.StepRow), c.sq.At(posB + square.StepRow)
		}

		return c.sq.At(posA - square.StepRow), c.sq.At(posB - square.StepRow)
	case square.SameRow(posA, posB):
		// One column right to encode, one column left to decode.
		if dir == Encode {
			return c.sq.At(posA + square.StepCol), c.sq.At(posB + square.StepCol)
		}

		return c.sq.At(posA - square.StepCol), c.sq.At(posB - square.StepCol)
	default:
		// Rectangle swap: each letter moves to its own row at the other's
		// column. Self-inverse, so encode and decode coincide.
		return c.sq.At(square.Corner(posA, posB)), c.sq.At(square.Corner(posB, posA))
	}
}

// Package cipher defines the transform direction enum for the Playfair
// engine.
package cipher

// Direction selects the orientation of a Playfair transform.
//
//   - Encode — substitute each digraph forward (one step right/down, or the
//     rectangle swap).
//   - Decode — the inverse substitution (one step left/up; the rectangle
//     swap is its own inverse).
type Direction int

const (
	// Encode transforms plaintext into ciphertext.
	Encode Direction = iota

	// Decode transforms ciphertext back into plaintext.
	Decode
)

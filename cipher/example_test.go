// File: cipher/example_test.go
package cipher_test

import (
	"fmt"

	"github.com/katalvlaran/playfair/cipher"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encode
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Encode demonstrates the canonical Wikipedia vector.
// Scenario:
//
//   - Key "playfair example" builds the classic 5×5 square.
//   - Spaces pass through verbatim; the doubled 'ee' of "tree" is split by
//     the filler 'x', so the ciphertext carries one extra letter.
//
// Complexity: O(len(text))
func ExampleCipher_Encode() {
	c := cipher.New("playfair example")

	enc, _ := c.Encode("hide the gold in the tree stump")
	fmt.Println(enc)

	// Output:
	// bmod zbx dnab ek udm uixmm ouvif
}

////////////////////////////////////////////////////////////////////////////////
// Example: Decode
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Decode inverts the canonical ciphertext. The inserted filler
// surfaces in the plaintext as the 'x' inside "trexe" — Playfair decoding
// recovers the padded digraph stream, not the pre-padding text.
func ExampleCipher_Decode() {
	c := cipher.New("playfair example")

	dec, _ := c.Decode("bmod zbx dnab ek udm uixmm ouvif")
	fmt.Println(dec)

	// Output:
	// hide the gold in the trexe stump
}

////////////////////////////////////////////////////////////////////////////////
// Example: round trip
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Decode_roundTrip mirrors the engine's doc example: uppercase
// letters are passthrough, so "This is a test." holds an even count of
// doubled-free digraphs and survives the round trip byte for byte.
func ExampleCipher_Decode_roundTrip() {
	c := cipher.New("Hello Playfair Cipher")

	enc, _ := c.Encode("This is a test.")
	dec, _ := c.Decode(enc)
	fmt.Println(dec)

	// Output:
	// This is a test.
}

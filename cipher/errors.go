package cipher

import "errors"

var (
	// ErrEncoding indicates the transformed byte stream did not reassemble
	// into valid UTF-8 text. Substitution outputs are always ASCII letters
	// and passthrough bytes are copied verbatim, so this cannot fire for
	// valid UTF-8 input; it surfaces a corrupted key square instead of being
	// silently swallowed.
	ErrEncoding = errors.New("cipher: transformed stream is not valid UTF-8 text")
)

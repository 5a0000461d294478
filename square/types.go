// Package square defines the alphabet constants and position encoding
// shared by the Key Square builder and its consumers.
package square

// Side is the edge length of the Key Square.
const Side = 5

// IndexCount is the size of the merged cipher alphabet: 26 letters with
// I and J sharing one slot.
const IndexCount = 25

const (
	// MergedIndex is the shared I/J slot of the merged alphabet.
	MergedIndex byte = 'i' - 'a'
	// FillerIndex is the slot of the filler letter 'x', inserted to split
	// doubled digraphs and to complete a trailing odd letter.
	FillerIndex byte = 'x' - 'a' - 1
)

// Encoded positions pack a cell as row*8+col with row, col ∈ 1..5, so a
// single addition moves one cell along either axis.
const (
	// StepRow moves an encoded position one row down (or up, subtracted).
	StepRow byte = 8
	// StepCol moves an encoded position one column right (or left, subtracted).
	StepCol byte = 1

	colMask = 0o07
	rowMask = 0o70
)

// tableSize covers every encoded position of the 7×7 bordered table
// (rows and columns 0..6 under the row*8+col packing).
const tableSize = 64

// unassigned marks a not-yet-placed alphabet index during construction.
const unassigned = 255

// Square is an immutable Playfair key square: a bijection between the 25
// merged-alphabet indices and the cells of a 5×5 grid, plus a wrap border
// for O(1) neighbor lookups. Built once by New; safe to share read-only.
type Square struct {
	// positions maps an alphabet index (0..24) to its encoded position.
	positions [IndexCount]byte
	// letters maps an encoded position to the letter placed there, with the
	// border rows/columns 0 and 6 mirroring rows/columns 5 and 1.
	letters [tableSize]byte
}

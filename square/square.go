// Package square provides construction of the Playfair 5×5 key square and
// O(1) lookups over it:
//
//   - Deduplicated key letters first, remaining alphabet in order after
//   - I/J merged into a single slot ('j' is stored as 'i')
//   - 7×7 wrap border so neighbor lookups past an edge land on the opposite edge
package square

import "strings"

// IndexOf maps a byte to its merged-alphabet index (0..24).
// Only lowercase 'a'..'z' qualify; 'i' and 'j' share index MergedIndex.
// The second result reports whether c is cipher content at all.
// Complexity: O(1).
func IndexOf(c byte) (byte, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	if c <= 'i' {
		return c - 'a', true
	}

	return c - 'a' - 1, true
}

// Letter returns the canonical letter for an alphabet index: indices at or
// below MergedIndex map straight onto 'a'.., later indices skip 'j'.
// Complexity: O(1).
func Letter(idx byte) byte {
	if idx <= MergedIndex {
		return idx + 'a'
	}

	return idx + 'a' + 1
}

// New builds a Square from key. It never fails: bytes outside lowercase
// a–z and repeats of an already-placed slot are skipped, which also
// deduplicates merged 'i'/'j' automatically. Key letters take priority over
// the alphabetical fill; first occurrence wins.
// Complexity: O(len(key) + 25) time, fixed memory.
func New(key string) *Square {
	s := &Square{}
	for i := range s.positions {
		s.positions[i] = unassigned
	}

	// Cursor starts at cell (1,1) and advances left-to-right, top-to-bottom.
	pos := StepRow + StepCol

	// Place deduplicated key letters.
	for i := 0; i < len(key); i++ {
		c := key[i]
		idx, ok := IndexOf(c)
		if !ok || s.positions[idx] != unassigned {
			continue
		}
		s.positions[idx] = pos
		if c == 'j' {
			c = 'i' // the merged slot always displays 'i'
		}
		s.letters[pos] = c
		pos = nextCell(pos)
	}

	// Fill the remaining slots in ascending alphabet order.
	for idx := byte(0); idx < IndexCount; idx++ {
		if s.positions[idx] != unassigned {
			continue
		}
		s.positions[idx] = pos
		s.letters[pos] = Letter(idx)
		pos = nextCell(pos)
	}

	// Populate the wrap border: columns 0/6 mirror columns 5/1 on each row,
	// then rows 0/6 mirror rows 5/1 across all seven columns (corners
	// included by the second pass).
	for row := byte(1); row <= Side; row++ {
		base := row * StepRow
		s.letters[base] = s.letters[base+Side]
		s.letters[base+Side+1] = s.letters[base+StepCol]
	}
	for col := byte(0); col <= Side+1; col++ {
		s.letters[col] = s.letters[col+Side*StepRow]
		s.letters[col+(Side+1)*StepRow] = s.letters[col+StepRow]
	}

	return s
}

// nextCell advances an encoded position one column right, wrapping past
// column 5 to column 1 of the next row.
func nextCell(pos byte) byte {
	pos += StepCol
	if pos&colMask == Side+1 {
		pos += StepRow - Side
	}

	return pos
}

// PositionOf returns the encoded position of an alphabet index (0..24).
// Complexity: O(1).
func (s *Square) PositionOf(idx byte) byte {
	return s.positions[idx]
}

// At returns the letter stored at an encoded position, border cells included.
// Complexity: O(1).
func (s *Square) At(pos byte) byte {
	return s.letters[pos]
}

// Row extracts the row (0..6) of an encoded position.
func Row(pos byte) byte {
	return (pos & rowMask) / StepRow
}

// Col extracts the column (0..6) of an encoded position.
func Col(pos byte) byte {
	return pos & colMask
}

// SameCol reports whether two encoded positions share a column.
func SameCol(p, q byte) bool {
	return p&colMask == q&colMask
}

// SameRow reports whether two encoded positions share a row.
func SameRow(p, q byte) bool {
	return p&rowMask == q&rowMask
}

// Corner returns the encoded position at p's row and q's column — the
// rectangle-rule corner for p against q.
func Corner(p, q byte) byte {
	return p&rowMask | q&colMask
}

// String renders the 5×5 interior as five newline-terminated rows of five
// letters, top to bottom. The wrap border is not included.
// Complexity: O(25).
func (s *Square) String() string {
	var b strings.Builder
	b.Grow(Side * (Side + 1))
	for row := byte(1); row <= Side; row++ {
		for col := byte(1); col <= Side; col++ {
			b.WriteByte(s.letters[row*StepRow+col])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

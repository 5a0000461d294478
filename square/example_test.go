// File: square/example_test.go
package square_test

import (
	"fmt"

	"github.com/katalvlaran/playfair/square"
)

////////////////////////////////////////////////////////////////////////////////
// Example: building a key square
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates building the classic Wikipedia key square.
// Scenario:
//
//   - Key "playfair example": deduplicated key letters fill the first cells,
//     the remaining alphabet (I/J merged, so no 'j') follows in order.
//
// Complexity: O(len(key) + 25)
func ExampleNew() {
	s := square.New("playfair example")
	fmt.Print(s)

	// Output:
	// playf
	// irexm
	// bcdgh
	// knoqs
	// tuvwz
}

////////////////////////////////////////////////////////////////////////////////
// Example: merged I/J slot
////////////////////////////////////////////////////////////////////////////////

// ExampleIndexOf shows that 'i' and 'j' share one alphabet slot while
// uppercase bytes are not cipher content at all.
func ExampleIndexOf() {
	i, _ := square.IndexOf('i')
	j, _ := square.IndexOf('j')
	_, ok := square.IndexOf('J')
	fmt.Println("i:", i, "j:", j, "uppercase accepted:", ok)

	// Output:
	// i: 8 j: 8 uppercase accepted: false
}

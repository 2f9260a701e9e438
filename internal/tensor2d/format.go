package tensor2d

import (
	"fmt"
	"strings"
)

// String renders the tensor contents row by row with one decimal place:
//
//	[[0.0, 1.0]
//	 [2.0, 3.0]]
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < t.nrows; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for c := 0; c < t.ncols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%.1f", t.store.At(t.physical(r, c)))
		}
		sb.WriteByte(']')
		if r < t.nrows-1 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

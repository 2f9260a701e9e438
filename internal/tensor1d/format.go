package tensor1d

import (
	"fmt"
	"strings"
)

// String renders the tensor contents as "[0.0, 1.0, ...]" with one decimal
// place, matching torch's compact repr for small float tensors.
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < t.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%.1f", t.store.At(t.physical(i)))
	}
	sb.WriteByte(']')
	return sb.String()
}

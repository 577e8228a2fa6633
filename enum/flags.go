package enum

import (
	"math/bits"
	"strconv"
	"strings"
)

// Flags is satisfied by every generated flag set. Any uint32 bit pattern is a
// valid flag set, so there is no validity check.
type Flags interface {
	~uint32
}

// Flag names a single bit of a flag set.
type Flag[F Flags] struct {
	Value F
	Name  string
}

// Has reports whether every bit of flag is set in set.
func Has[F Flags](set, flag F) bool {
	return set&flag == flag
}

// Named returns the union of all named bits.
func Named[F Flags](names []Flag[F]) F {
	var all F
	for _, n := range names {
		all |= n.Value
	}

	return all
}

// FormatFlags renders set as "A|B", in the order of names. Bits without a
// name are appended as one hex literal, the empty set renders as "NONE".
func FormatFlags[F Flags](set F, names []Flag[F]) string {
	if set == 0 {
		return "NONE"
	}

	var sb strings.Builder

	rest := set
	for _, n := range names {
		if n.Value == 0 || set&n.Value != n.Value {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('|')
		}

		sb.WriteString(n.Name)

		rest &^= n.Value
	}

	if rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}

		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(rest), 16))
	}

	return sb.String()
}

// IsSingleBit reports whether v has exactly one bit set.
func IsSingleBit(v uint32) bool {
	return bits.OnesCount32(v) == 1
}

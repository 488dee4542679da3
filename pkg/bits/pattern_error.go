package bits

import "fmt"

// InvalidPatternError is returned when a fallible field decodes a bit pattern
// the hardware defines as reserved: a non-zero-constrained field reading as
// zero, or an enumeration field reading an undefined value. The raw pattern is
// carried unchanged so the caller can decide what a reserved reading means,
// instead of this layer coercing it to a default.
type InvalidPatternError struct {
	Field   string
	Pattern uint32
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("reserved bit pattern %#x in field %q", e.Pattern, e.Field)
}

package interp

import "fmt"

// InvalidInstructionError reports a script character outside the
// instruction set. Pos is the rune index at which it was encountered.
type InvalidInstructionError struct {
	Ch  rune
	Pos int
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %q at position %d", e.Ch, e.Pos)
}

// PointerRangeError reports a data pointer move that would leave the
// memory tape. Pointer is the out-of-range value the move would have
// produced.
type PointerRangeError struct {
	Pointer int
	Words   int
	Pos     int
}

func (e *PointerRangeError) Error() string {
	return fmt.Sprintf("data pointer %d out of range [0, %d) at position %d", e.Pointer, e.Words, e.Pos)
}

// UnbalancedLoopError reports a ] with no open loop.
type UnbalancedLoopError struct {
	Pos int
}

func (e *UnbalancedLoopError) Error() string {
	return fmt.Sprintf("unbalanced ] at position %d", e.Pos)
}

package interp

const defaultLoopStackSize = 10

// posStack records the script positions of currently-open loops.
type posStack []int

func newPosStack() *posStack {
	s := new(posStack)
	*s = make([]int, 0, defaultLoopStackSize)
	return s
}

func (s *posStack) Len() int {
	return len(*s)
}

func (s *posStack) Push(pos int) {
	*s = append(*s, pos)
}

// Top returns the most recent open-loop position. The stack must be
// non-empty.
func (s *posStack) Top() int {
	return (*s)[len(*s)-1]
}

func (s *posStack) Pop() int {
	pos := (*s)[len(*s)-1]
	*s = (*s)[0 : len(*s)-1]
	return pos
}

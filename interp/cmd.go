package interp

const (
	CmdDataPtrIncrement Cmd = iota
	CmdDataPtrDecrement
	CmdDataIncrement
	CmdDataDecrement
	CmdInputChar
	CmdOutputChar
	CmdLoopStart
	CmdLoopEnd
	CmdUnknown
)

// Cmd is a single instruction of the eight-token language.
type Cmd byte

func NewCmd(c rune) (cmd Cmd) {
	switch c {
	case '>':
		cmd = CmdDataPtrIncrement
	case '<':
		cmd = CmdDataPtrDecrement
	case '+':
		cmd = CmdDataIncrement
	case '-':
		cmd = CmdDataDecrement
	case '.':
		cmd = CmdOutputChar
	case ',':
		cmd = CmdInputChar
	case '[':
		cmd = CmdLoopStart
	case ']':
		cmd = CmdLoopEnd
	default:
		cmd = CmdUnknown
	}
	return
}

func (cmd Cmd) String() (c string) {
	switch cmd {
	case CmdDataPtrIncrement:
		c = ">"
	case CmdDataPtrDecrement:
		c = "<"
	case CmdDataIncrement:
		c = "+"
	case CmdDataDecrement:
		c = "-"
	case CmdOutputChar:
		c = "."
	case CmdInputChar:
		c = ","
	case CmdLoopStart:
		c = "["
	case CmdLoopEnd:
		c = "]"
	default:
		c = "unknown"
	}
	return
}

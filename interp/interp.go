// Package interp implements a single-pass interpreter for the classic
// 8-instruction tape-machine language.
package interp

import "strings"

// DefaultMemoryWords is the tape length used when a configuration does
// not set one.
const DefaultMemoryWords = 30000

// Config carries the recognized interpreter options. The zero value is
// usable: a 30000-word tape, empty input, no output sink, no
// completion callback.
type Config struct {
	// MemoryWords is the tape length. Non-positive values mean
	// DefaultMemoryWords.
	MemoryWords int
	// Stdin backs the , instruction. Reads past its end store 0.
	Stdin string
	// Output receives the finished output string when Quiet is off.
	// The interpreter never constructs a sink of its own.
	Output Sink
	// Quiet suppresses rendering to Output. It does not affect the
	// completion callback or the returned string.
	Quiet bool
	// Complete, if set, is called exactly once after a successful run,
	// after any rendering, with the final output.
	Complete func(output string)
}

// Interpreter binds a script to a Config. All run state lives inside
// each Interpret call, so a single Interpreter may be used from
// multiple goroutines at once.
type Interpreter struct {
	script string
	cfg    Config
}

func New(script string, cfg Config) *Interpreter {
	if cfg.MemoryWords <= 0 {
		cfg.MemoryWords = DefaultMemoryWords
	}
	return &Interpreter{script: script, cfg: cfg}
}

// Interpret runs the configured script. On success it renders the
// output through the configured sink (unless Quiet), invokes the
// completion callback, and returns the output. On failure the partial
// output is discarded and the error returned.
func (it *Interpreter) Interpret() (string, error) {
	output, err := Interpret(it.script, it.cfg.Stdin, it.cfg.MemoryWords)
	if err != nil {
		return "", err
	}
	if !it.cfg.Quiet && it.cfg.Output != nil {
		it.cfg.Output.Render(output)
	}
	if it.cfg.Complete != nil {
		it.cfg.Complete(output)
	}
	return output, nil
}

// Interpret runs script against input on a fresh memoryWords-cell tape
// and returns the produced output. It is a pure function of its
// arguments.
func Interpret(script, input string, memoryWords int) (string, error) {
	if memoryWords <= 0 {
		memoryWords = DefaultMemoryWords
	}
	m := newMachine(script, input, memoryWords)
	return m.run()
}

// machine is the per-run state container. A machine is good for
// exactly one run.
type machine struct {
	src   []rune
	pos   int
	data  []int
	ptr   int
	in    []rune
	inpos int
	loops *posStack
	out   strings.Builder
}

func newMachine(script, input string, memoryWords int) *machine {
	return &machine{
		src:   []rune(script),
		data:  make([]int, memoryWords),
		in:    []rune(input),
		loops: newPosStack(),
	}
}

func (m *machine) run() (string, error) {
	words := len(m.data)
	for m.pos = 0; m.pos < len(m.src); m.pos++ {
		switch NewCmd(m.src[m.pos]) {
		case CmdDataPtrIncrement:
			m.ptr++
			if m.ptr >= words {
				return "", &PointerRangeError{Pointer: m.ptr, Words: words, Pos: m.pos}
			}
		case CmdDataPtrDecrement:
			m.ptr--
			if m.ptr < 0 {
				return "", &PointerRangeError{Pointer: m.ptr, Words: words, Pos: m.pos}
			}
		case CmdDataIncrement:
			m.data[m.ptr]++
		case CmdDataDecrement:
			m.data[m.ptr]--
		case CmdOutputChar:
			m.out.WriteRune(rune(m.data[m.ptr]))
		case CmdInputChar:
			// Exhausted input reads as null bytes, not as an error.
			if m.inpos < len(m.in) {
				m.data[m.ptr] = int(m.in[m.inpos])
			} else {
				m.data[m.ptr] = 0
			}
			m.inpos++
		case CmdLoopStart:
			m.loops.Push(m.pos)
		case CmdLoopEnd:
			if m.loops.Len() == 0 {
				return "", &UnbalancedLoopError{Pos: m.pos}
			}
			if m.data[m.ptr] == 0 {
				m.loops.Pop()
			} else {
				// Jump targets resolve lazily: rewind to the open
				// bracket and let the loop counter step past it.
				m.pos = m.loops.Top()
			}
		default:
			return "", &InvalidInstructionError{Ch: m.src[m.pos], Pos: m.pos}
		}
	}
	return m.out.String(), nil
}

package tape

import (
	"strings"
)

// Tape is a growable one-dimensional sequence of symbols with a head.
//
// The materialized cells are cells[start:]. The head indexes into the
// materialized cells and is always within [0, Len()).
type Tape struct {
	Alphabet Alphabet // Symbols that may be written.
	Blank    Symbol   // Symbol of unwritten cells.

	cells []Symbol
	start int
	head  int
}

// New creates a wiped tape.
func New(alphabet Alphabet, blank Symbol) (tp *Tape) {
	tp = &Tape{
		Alphabet: alphabet,
		Blank:    blank,
	}

	tp.Wipe()

	return
}

// Wipe resets the tape to a single blank cell under the head.
func (tp *Tape) Wipe() {
	if cap(tp.cells) == 0 {
		tp.cells = make([]Symbol, 1, 16)
	}

	// Leave the front of the backing array as headroom for leftward growth.
	tp.start = min(cap(tp.cells)/2, cap(tp.cells)-1)
	tp.cells = tp.cells[:tp.start+1]
	tp.cells[tp.start] = tp.Blank
	tp.head = 0
}

// Len returns the number of materialized cells.
func (tp *Tape) Len() int {
	return len(tp.cells) - tp.start
}

// Head returns the head index into the materialized cells.
func (tp *Tape) Head() int {
	return tp.head
}

// Read returns the symbol under the head.
func (tp *Tape) Read() Symbol {
	return tp.cells[tp.start+tp.head]
}

// Write replaces the symbol under the head. Symbols outside the alphabet
// are rejected and the tape is left unmodified.
func (tp *Tape) Write(sym Symbol) (err error) {
	if !tp.Alphabet.Contains(sym) {
		err = ErrUndefinedSymbol(sym)
		return
	}

	tp.cells[tp.start+tp.head] = sym

	return
}

// Move shifts the head by the motion's offset, growing the tape by one
// blank cell when the head would leave the materialized cells.
func (tp *Tape) Move(motion Motion) (err error) {
	if !motion.Valid() {
		err = ErrInvalidMotion(motion)
		return
	}

	head := tp.head + motion.Offset()
	switch {
	case head < 0:
		tp.prepend()
		head = 0
	case head >= tp.Len():
		tp.cells = append(tp.cells, tp.Blank)
		head = tp.Len() - 1
	}

	tp.head = head

	return
}

// prepend adds a single blank cell before the first materialized cell.
func (tp *Tape) prepend() {
	if tp.start == 0 {
		size := tp.Len()
		room := max(size, 8)
		cells := make([]Symbol, room+size, 2*(room+size))
		copy(cells[room:], tp.cells)
		tp.cells = cells
		tp.start = room
	}

	tp.start--
	tp.cells[tp.start] = tp.Blank
}

// Load appends syms after the existing cells and moves the head to the
// first appended cell. Symbols are not checked against the alphabet.
// Loading an empty sequence does nothing.
func (tp *Tape) Load(syms []Symbol) {
	if len(syms) == 0 {
		return
	}

	tp.head = tp.Len()
	tp.cells = append(tp.cells, syms...)
}

// Symbols returns a copy of the materialized cells.
func (tp *Tape) Symbols() []Symbol {
	return append([]Symbol(nil), tp.cells[tp.start:]...)
}

// String renders the materialized cells with the head cell bracketed.
func (tp *Tape) String() string {
	var sb strings.Builder
	for n, sym := range tp.cells[tp.start:] {
		if n == tp.head {
			sb.WriteString("[" + string(sym) + "]")
		} else {
			sb.WriteString(string(sym))
		}
	}

	return sb.String()
}

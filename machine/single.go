// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"maps"

	"github.com/ezrec/turing/tape"
)

// Key is the lookup key of a single-tape transition.
type Key struct {
	State  State
	Symbol tape.Symbol
}

func (key Key) String() string {
	return fmt.Sprintf("(%v, %v)", key.State, key.Symbol)
}

// Action is the effect of a single-tape transition.
type Action struct {
	Next  State       // State to enter.
	Write tape.Symbol // Symbol written under the head.
	Move  tape.Motion // Head movement after the write.
}

// Table is a deterministic single-tape transition table.
type Table map[Key]Action

// Config is the configuration of a single-tape machine.
type Config struct {
	States        States        // Declared states.
	InputAlphabet tape.Alphabet // Symbols an input may contain.
	TapeAlphabet  tape.Alphabet // Symbols that may be written; includes Blank.
	Blank         tape.Symbol   // Symbol of unwritten cells.
	Transitions   Table         // Transition table.
	Initial       State         // State at the start of a run.
	Accept        State         // Accepting halt state.
}

// Clone returns a deep copy of the configuration.
func (cfg Config) Clone() Config {
	cfg.States = maps.Clone(cfg.States)
	cfg.InputAlphabet = maps.Clone(cfg.InputAlphabet)
	cfg.TapeAlphabet = maps.Clone(cfg.TapeAlphabet)
	cfg.Transitions = maps.Clone(cfg.Transitions)
	return cfg
}

// Validate checks that every transition has a valid motion.
func (cfg Config) Validate() (err error) {
	for key, act := range cfg.Transitions {
		if !act.Move.Valid() {
			err = &ErrTransition{Key: key.String(), Err: tape.ErrInvalidMotion(act.Move)}
			return
		}
	}

	return
}

// Single is a single-tape Turing machine.
type Single struct {
	Verbose bool // If set, logs every transition.

	config Config
}

// NewSingle creates a single-tape machine from a copy of cfg.
func NewSingle(cfg Config) (m *Single, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	if len(cfg.Blank) == 0 {
		cfg.Blank = tape.BLANK
	}

	m = &Single{
		config: cfg.Clone(),
	}

	return
}

// Config returns the machine configuration. It must not be modified.
func (m *Single) Config() Config {
	return m.config
}

// Start begins a new execution with input loaded on the tape.
func (m *Single) Start(input []tape.Symbol) (ex *Execution) {
	ex = &Execution{
		machine: m,
		state:   m.config.Initial,
		tape:    tape.New(m.config.TapeAlphabet, m.config.Blank),
	}

	ex.tape.Load(input)

	return
}

// Run executes the machine on input until it halts, and reports whether
// it halted in the accept state.
func (m *Single) Run(input []tape.Symbol) (accepted bool, err error) {
	ex := m.Start(input)
	for done, err := ex.Tick(); !done; done, err = ex.Tick() {
		if err != nil {
			return false, err
		}
	}

	return ex.Accepted(), nil
}

// Execution is the runtime state of a single-tape run.
type Execution struct {
	machine *Single
	state   State
	tape    *tape.Tape
	steps   int
	halted  bool
}

// State returns the current state.
func (ex *Execution) State() State {
	return ex.state
}

// Tape returns the execution tape.
func (ex *Execution) Tape() *tape.Tape {
	return ex.tape
}

// Steps returns the number of transitions applied.
func (ex *Execution) Steps() int {
	return ex.steps
}

// Halted returns true once no transition applies.
func (ex *Execution) Halted() bool {
	return ex.halted
}

// Accepted returns true if the execution has halted in the accept state.
func (ex *Execution) Accepted() bool {
	return ex.halted && ex.state == ex.machine.config.Accept
}

// Tick applies a single transition. done is set once the machine halts.
func (ex *Execution) Tick() (done bool, err error) {
	if ex.halted {
		return true, nil
	}

	key := Key{State: ex.state, Symbol: ex.tape.Read()}
	act, ok := ex.machine.config.Transitions[key]
	if !ok {
		ex.halted = true
		if ex.machine.Verbose {
			log.Printf("%d: halt %v accept:%v", ex.steps, key, ex.Accepted())
		}
		return true, nil
	}

	if ex.machine.Verbose {
		log.Printf("%d: %v -> (%v, %v, %v) %v", ex.steps, key, act.Next, act.Write, act.Move, ex.tape)
	}

	ex.state = act.Next
	err = ex.tape.Write(act.Write)
	if err == nil {
		err = ex.tape.Move(act.Move)
	}
	if err != nil {
		err = &ErrRuntime{Step: ex.steps, State: ex.state, Err: err}
		return
	}

	ex.steps++

	return
}

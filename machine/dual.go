// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"maps"

	"github.com/ezrec/turing/tape"
)

// DualKey is the lookup key of a dual-tape transition.
type DualKey struct {
	State   State
	Symbol1 tape.Symbol // Symbol under the head of tape 1.
	Symbol2 tape.Symbol // Symbol under the head of tape 2.
}

func (key DualKey) String() string {
	return fmt.Sprintf("(%v, %v, %v)", key.State, key.Symbol1, key.Symbol2)
}

// DualAction is the effect of a dual-tape transition.
type DualAction struct {
	Next   State
	Write1 tape.Symbol
	Write2 tape.Symbol
	Move1  tape.Motion
	Move2  tape.Motion
}

// DualTable is a deterministic dual-tape transition table.
type DualTable map[DualKey]DualAction

// DualConfig is the configuration of a dual-tape machine. Both tapes share
// the tape alphabet.
type DualConfig struct {
	States        States
	InputAlphabet tape.Alphabet
	TapeAlphabet  tape.Alphabet
	Blank         tape.Symbol
	Transitions   DualTable
	Initial       State
	Accept        State
}

// Clone returns a deep copy of the configuration.
func (cfg DualConfig) Clone() DualConfig {
	cfg.States = maps.Clone(cfg.States)
	cfg.InputAlphabet = maps.Clone(cfg.InputAlphabet)
	cfg.TapeAlphabet = maps.Clone(cfg.TapeAlphabet)
	cfg.Transitions = maps.Clone(cfg.Transitions)
	return cfg
}

// Validate checks that every transition has valid motions.
func (cfg DualConfig) Validate() (err error) {
	for key, act := range cfg.Transitions {
		for _, motion := range []tape.Motion{act.Move1, act.Move2} {
			if !motion.Valid() {
				err = &ErrTransition{Key: key.String(), Err: tape.ErrInvalidMotion(motion)}
				return
			}
		}
	}

	return
}

// Dual is a dual-tape Turing machine. Input is loaded on tape 1; tape 2
// starts blank.
type Dual struct {
	Verbose bool // If set, logs every transition.

	config DualConfig
}

// NewDual creates a dual-tape machine from a copy of cfg.
func NewDual(cfg DualConfig) (m *Dual, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	if len(cfg.Blank) == 0 {
		cfg.Blank = tape.BLANK
	}

	m = &Dual{
		config: cfg.Clone(),
	}

	return
}

// Config returns the machine configuration. It must not be modified.
func (m *Dual) Config() DualConfig {
	return m.config
}

// Start begins a new execution with input loaded on tape 1.
func (m *Dual) Start(input []tape.Symbol) (ex *DualExecution) {
	ex = &DualExecution{
		machine: m,
		state:   m.config.Initial,
		tape1:   tape.New(m.config.TapeAlphabet, m.config.Blank),
		tape2:   tape.New(m.config.TapeAlphabet, m.config.Blank),
	}

	ex.tape1.Load(input)

	return
}

// Run executes the machine on input until it halts, and reports whether
// it halted in the accept state.
func (m *Dual) Run(input []tape.Symbol) (accepted bool, err error) {
	ex := m.Start(input)
	for done, err := ex.Tick(); !done; done, err = ex.Tick() {
		if err != nil {
			return false, err
		}
	}

	return ex.Accepted(), nil
}

// DualExecution is the runtime state of a dual-tape run.
type DualExecution struct {
	machine *Dual
	state   State
	tape1   *tape.Tape
	tape2   *tape.Tape
	steps   int
	halted  bool
}

// State returns the current state.
func (ex *DualExecution) State() State {
	return ex.state
}

// Tapes returns both execution tapes.
func (ex *DualExecution) Tapes() (tape1 *tape.Tape, tape2 *tape.Tape) {
	return ex.tape1, ex.tape2
}

// Steps returns the number of transitions applied.
func (ex *DualExecution) Steps() int {
	return ex.steps
}

// Halted returns true once no transition applies.
func (ex *DualExecution) Halted() bool {
	return ex.halted
}

// Accepted returns true if the execution has halted in the accept state.
func (ex *DualExecution) Accepted() bool {
	return ex.halted && ex.state == ex.machine.config.Accept
}

// Tick applies a single transition. done is set once the machine halts.
func (ex *DualExecution) Tick() (done bool, err error) {
	if ex.halted {
		return true, nil
	}

	key := DualKey{State: ex.state, Symbol1: ex.tape1.Read(), Symbol2: ex.tape2.Read()}
	act, ok := ex.machine.config.Transitions[key]
	if !ok {
		ex.halted = true
		if ex.machine.Verbose {
			log.Printf("%d: halt %v accept:%v", ex.steps, key, ex.Accepted())
		}
		return true, nil
	}

	if ex.machine.Verbose {
		log.Printf("%d: %v -> (%v, %v, %v, %v, %v) %v | %v", ex.steps, key,
			act.Next, act.Write1, act.Write2, act.Move1, act.Move2, ex.tape1, ex.tape2)
	}

	ex.state = act.Next
	err = ex.tape1.Write(act.Write1)
	if err == nil {
		err = ex.tape1.Move(act.Move1)
	}
	if err == nil {
		err = ex.tape2.Write(act.Write2)
	}
	if err == nil {
		err = ex.tape2.Move(act.Move2)
	}
	if err != nil {
		err = &ErrRuntime{Step: ex.steps, State: ex.state, Err: err}
		return
	}

	ex.steps++

	return
}

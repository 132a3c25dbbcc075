// Package convert translates single-tape machines into equivalent
// dual-tape machines.
//
// The dual-tape machine keeps the simulated state as a symbol under the
// head of tape 2, which never moves. It has only two states of its own:
// RUNNING while simulating and HALTED_ACCEPT once the simulated machine
// enters its accept state.
package convert

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/turing/internal"
	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

const (
	RUNNING       = machine.State("running")       // Initial state of converted machines.
	HALTED_ACCEPT = machine.State("halted-accept") // Accept state of converted machines.
)

// stateSymbol encodes a source state as a tape 2 symbol.
func stateSymbol(state machine.State) tape.Symbol {
	return tape.Symbol(state)
}

// referencedStates yields every state the source configuration mentions.
func referencedStates(cfg machine.Config) iter.Seq[machine.State] {
	return internal.IterSeqUnique(internal.IterSeqConcat(
		cfg.States.All(),
		slices.Values([]machine.State{cfg.Initial, cfg.Accept}),
		func(yield func(machine.State) bool) {
			for key, act := range cfg.Transitions {
				if !yield(key.State) || !yield(act.Next) {
					return
				}
			}
		},
	))
}

// readSymbols yields every symbol the source machine may read.
func readSymbols(cfg machine.Config) iter.Seq[tape.Symbol] {
	return internal.IterSeqUnique(internal.IterSeqConcat(
		cfg.TapeAlphabet.All(),
		cfg.InputAlphabet.All(),
		func(yield func(tape.Symbol) bool) {
			for key := range maps.Keys(cfg.Transitions) {
				if !yield(key.Symbol) {
					return
				}
			}
		},
	))
}

// Convert returns a dual-tape configuration that simulates cfg step for
// step.
//
// The source states must not be named RUNNING or HALTED_ACCEPT, and no
// state may be named after the blank symbol; see Check.
func Convert(cfg machine.Config) (dual machine.DualConfig) {
	blank := cfg.Blank
	if len(blank) == 0 {
		blank = tape.BLANK
	}

	bootTarget := RUNNING
	if cfg.Initial == cfg.Accept {
		bootTarget = HALTED_ACCEPT
	}

	table := machine.DualTable{}

	// Seed tape 2 with the initial state without moving either head.
	for sym := range readSymbols(cfg) {
		table[machine.DualKey{State: RUNNING, Symbol1: sym, Symbol2: blank}] = machine.DualAction{
			Next:   bootTarget,
			Write1: sym,
			Write2: stateSymbol(cfg.Initial),
			Move1:  tape.MOTION_STAY,
			Move2:  tape.MOTION_STAY,
		}
	}

	for key, act := range cfg.Transitions {
		target := RUNNING
		if act.Next == cfg.Accept {
			target = HALTED_ACCEPT
		}

		table[machine.DualKey{State: RUNNING, Symbol1: key.Symbol, Symbol2: stateSymbol(key.State)}] = machine.DualAction{
			Next:   target,
			Write1: act.Write,
			Write2: stateSymbol(act.Next),
			Move1:  act.Move,
			Move2:  tape.MOTION_STAY,
		}
	}

	states := make([]tape.Symbol, 0, len(cfg.States))
	for state := range referencedStates(cfg) {
		states = append(states, stateSymbol(state))
	}

	dual = machine.DualConfig{
		States:        machine.NewStates(RUNNING, HALTED_ACCEPT),
		InputAlphabet: maps.Clone(cfg.InputAlphabet),
		TapeAlphabet:  cfg.TapeAlphabet.Union(slices.Values(states)),
		Blank:         blank,
		Transitions:   table,
		Initial:       RUNNING,
		Accept:        HALTED_ACCEPT,
	}

	return
}

// Check reports whether cfg satisfies the preconditions of Convert.
func Check(cfg machine.Config) (err error) {
	blank := cfg.Blank
	if len(blank) == 0 {
		blank = tape.BLANK
	}

	for state := range referencedStates(cfg) {
		switch {
		case state == RUNNING, state == HALTED_ACCEPT:
			err = ErrStateCollision{State: state, Reason: ErrReservedName}
		case stateSymbol(state) == blank:
			err = ErrStateCollision{State: state, Reason: ErrBlankName}
		}
		if err != nil {
			return
		}
	}

	return
}

// Machine checks and converts a single-tape machine into a dual-tape
// machine with the same verbosity.
func Machine(single *machine.Single) (dual *machine.Dual, err error) {
	cfg := single.Config()

	err = Check(cfg)
	if err != nil {
		return
	}

	dual, err = machine.NewDual(Convert(cfg))
	if err != nil {
		return
	}

	dual.Verbose = single.Verbose

	return
}

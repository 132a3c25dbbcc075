// Package definition loads machine configurations from definition files.
//
// Two formats are understood: Starlark (.star), where the definition is the
// set of global variables left by the script, and CUE (.cue), validated
// against a closed schema. Both describe the same fields:
//
//	states          list of state names
//	input_alphabet  list of input symbols
//	tape_alphabet   list of tape symbols, including the blank
//	blank           blank symbol (optional, default "_")
//	initial         initial state
//	accept          accept state
//	transitions     the transition table
//
// A transition that reads two symbols describes a dual-tape machine. All
// transitions of a definition must read the same number of symbols.
package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

// Definition is a loaded machine. Exactly one of Single and Dual is set.
type Definition struct {
	Name   string
	Single *machine.Config
	Dual   *machine.DualConfig
}

// Load reads a definition file, choosing the format by extension.
func Load(path string) (def *Definition, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".star", ".sky", ".bzl":
		def, err = LoadStarlark(path, src)
	case ".cue":
		def, err = LoadCUE(path, src)
	default:
		err = ErrFormatUnknown(path)
	}

	return
}

// rawTransition is a transition as written in a definition file.
type rawTransition struct {
	State  string  `json:"state"`
	Read   string  `json:"read"`
	Read2  *string `json:"read2,omitempty"`
	Next   string  `json:"next"`
	Write  string  `json:"write"`
	Write2 *string `json:"write2,omitempty"`
	Move   string  `json:"move"`
	Move2  *string `json:"move2,omitempty"`
}

// rawDefinition is a definition as written in a definition file.
type rawDefinition struct {
	Name          string          `json:"name,omitempty"`
	States        []string        `json:"states"`
	InputAlphabet []string        `json:"input_alphabet"`
	TapeAlphabet  []string        `json:"tape_alphabet"`
	Blank         string          `json:"blank,omitempty"`
	Initial       string          `json:"initial"`
	Accept        string          `json:"accept"`
	Transitions   []rawTransition `json:"transitions"`
}

func toSymbols(names []string) (syms []tape.Symbol) {
	syms = make([]tape.Symbol, len(names))
	for n, name := range names {
		syms[n] = tape.Symbol(name)
	}

	return
}

func toStates(names []string) machine.States {
	states := make([]machine.State, len(names))
	for n, name := range names {
		states[n] = machine.State(name)
	}

	return machine.NewStates(states...)
}

func parseMove(field string, text string) (m tape.Motion, err error) {
	m, err = tape.ParseMotion(text)
	if err != nil {
		err = &ErrField{Field: field, Err: err}
	}

	return
}

// build converts a raw definition into a machine configuration.
func (raw *rawDefinition) build(name string) (def *Definition, err error) {
	def = &Definition{Name: raw.Name}
	if len(def.Name) == 0 {
		def.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	blank := tape.Symbol(raw.Blank)
	if len(blank) == 0 {
		blank = tape.BLANK
	}

	dual := false
	for n, tr := range raw.Transitions {
		if n == 0 {
			dual = tr.Read2 != nil
		} else if dual != (tr.Read2 != nil) {
			err = &ErrField{Field: fmt.Sprintf("transitions[%d]", n), Err: ErrDefinitionMixed}
			return nil, err
		}
	}

	if dual {
		var table machine.DualTable
		table, err = raw.dualTable()
		if err != nil {
			return nil, err
		}
		def.Dual = &machine.DualConfig{
			States:        toStates(raw.States),
			InputAlphabet: tape.NewAlphabet(toSymbols(raw.InputAlphabet)...),
			TapeAlphabet:  tape.NewAlphabet(toSymbols(raw.TapeAlphabet)...),
			Blank:         blank,
			Transitions:   table,
			Initial:       machine.State(raw.Initial),
			Accept:        machine.State(raw.Accept),
		}
		return
	}

	table, err := raw.table()
	if err != nil {
		return nil, err
	}
	def.Single = &machine.Config{
		States:        toStates(raw.States),
		InputAlphabet: tape.NewAlphabet(toSymbols(raw.InputAlphabet)...),
		TapeAlphabet:  tape.NewAlphabet(toSymbols(raw.TapeAlphabet)...),
		Blank:         blank,
		Transitions:   table,
		Initial:       machine.State(raw.Initial),
		Accept:        machine.State(raw.Accept),
	}

	return
}

func (raw *rawDefinition) table() (table machine.Table, err error) {
	table = machine.Table{}
	for n, tr := range raw.Transitions {
		field := fmt.Sprintf("transitions[%d]", n)

		key := machine.Key{State: machine.State(tr.State), Symbol: tape.Symbol(tr.Read)}
		if _, ok := table[key]; ok {
			return nil, &ErrField{Field: field, Err: ErrTransitionDuplicate}
		}

		var move tape.Motion
		move, err = parseMove(field+".move", tr.Move)
		if err != nil {
			return nil, err
		}

		table[key] = machine.Action{
			Next:  machine.State(tr.Next),
			Write: tape.Symbol(tr.Write),
			Move:  move,
		}
	}

	return
}

func (raw *rawDefinition) dualTable() (table machine.DualTable, err error) {
	table = machine.DualTable{}
	for n, tr := range raw.Transitions {
		field := fmt.Sprintf("transitions[%d]", n)

		if tr.Write2 == nil {
			return nil, &ErrField{Field: field + ".write2", Err: ErrFieldMissing}
		}
		if tr.Move2 == nil {
			return nil, &ErrField{Field: field + ".move2", Err: ErrFieldMissing}
		}

		key := machine.DualKey{
			State:   machine.State(tr.State),
			Symbol1: tape.Symbol(tr.Read),
			Symbol2: tape.Symbol(*tr.Read2),
		}
		if _, ok := table[key]; ok {
			return nil, &ErrField{Field: field, Err: ErrTransitionDuplicate}
		}

		var move1, move2 tape.Motion
		move1, err = parseMove(field+".move", tr.Move)
		if err != nil {
			return nil, err
		}
		move2, err = parseMove(field+".move2", *tr.Move2)
		if err != nil {
			return nil, err
		}

		table[key] = machine.DualAction{
			Next:   machine.State(tr.Next),
			Write1: tape.Symbol(tr.Write),
			Write2: tape.Symbol(*tr.Write2),
			Move1:  move1,
			Move2:  move2,
		}
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package definition

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/turing/tape"
)

// starlarkPredeclared are the names visible to definition scripts.
var starlarkPredeclared = starlark.StringDict{
	"L":     starlark.String(tape.MOTION_LEFT.String()),
	"S":     starlark.String(tape.MOTION_STAY.String()),
	"R":     starlark.String(tape.MOTION_RIGHT.String()),
	"BLANK": starlark.String(tape.BLANK),
}

// LoadStarlark executes a Starlark definition script. src may be anything
// starlark.ExecFileOptions accepts; if nil, filename is read.
//
// Transitions are a dict from (state, read) to (next, write, move), or from
// (state, read1, read2) to (next, write1, write2, move1, move2). Moves are
// "L", "S", "R" (predeclared as L, S and R) or the integers -1, 0 and 1.
func LoadStarlark(filename string, src any) (def *Definition, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{
		Set:             true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, starlarkPredeclared)
	if err != nil {
		return
	}

	raw := &rawDefinition{}

	lists := []struct {
		field string
		dest  *[]string
	}{
		{"states", &raw.States},
		{"input_alphabet", &raw.InputAlphabet},
		{"tape_alphabet", &raw.TapeAlphabet},
	}
	for _, list := range lists {
		*list.dest, err = starlarkStrings(list.field, globals[list.field])
		if err != nil {
			return
		}
	}

	strs := []struct {
		field    string
		dest     *string
		optional bool
	}{
		{"name", &raw.Name, true},
		{"blank", &raw.Blank, true},
		{"initial", &raw.Initial, false},
		{"accept", &raw.Accept, false},
	}
	for _, str := range strs {
		value := globals[str.field]
		if value == nil && str.optional {
			continue
		}
		*str.dest, err = starlarkString(str.field, value)
		if err != nil {
			return
		}
	}

	raw.Transitions, err = starlarkTransitions(globals["transitions"])
	if err != nil {
		return
	}

	def, err = raw.build(filename)

	return
}

func starlarkString(field string, value starlark.Value) (str string, err error) {
	if value == nil {
		err = &ErrField{Field: field, Err: ErrFieldMissing}
		return
	}

	str, ok := starlark.AsString(value)
	if !ok {
		err = &ErrField{Field: field, Err: ErrFieldType}
	}

	return
}

func starlarkStrings(field string, value starlark.Value) (strs []string, err error) {
	if value == nil {
		err = &ErrField{Field: field, Err: ErrFieldMissing}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = &ErrField{Field: field, Err: ErrFieldType}
		return
	}

	it := iterable.Iterate()
	defer it.Done()

	var elem starlark.Value
	for n := 0; it.Next(&elem); n++ {
		var str string
		str, err = starlarkString(fmt.Sprintf("%v[%d]", field, n), elem)
		if err != nil {
			return
		}
		strs = append(strs, str)
	}

	return
}

func starlarkMove(field string, value starlark.Value) (move string, err error) {
	if _, ok := value.(starlark.Int); ok {
		var offset int
		offset, err = starlark.AsInt32(value)
		if err != nil {
			err = &ErrField{Field: field, Err: err}
			return
		}
		move = tape.Motion(offset).String()
		return
	}

	return starlarkString(field, value)
}

func starlarkTransitions(value starlark.Value) (trs []rawTransition, err error) {
	if value == nil {
		err = &ErrField{Field: "transitions", Err: ErrFieldMissing}
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrField{Field: "transitions", Err: ErrFieldType}
		return
	}

	for n, item := range dict.Items() {
		field := fmt.Sprintf("transitions[%d]", n)

		key, ok := item[0].(starlark.Tuple)
		if !ok {
			return nil, &ErrField{Field: field, Err: ErrFieldType}
		}
		act, ok := item[1].(starlark.Tuple)
		if !ok {
			return nil, &ErrField{Field: field, Err: ErrFieldType}
		}

		var tr rawTransition
		switch {
		case len(key) == 2 && len(act) == 3:
			tr, err = starlarkSingle(field, key, act)
		case len(key) == 3 && len(act) == 5:
			tr, err = starlarkDual(field, key, act)
		default:
			err = &ErrField{Field: field, Err: ErrTransitionArity}
		}
		if err != nil {
			return nil, err
		}

		trs = append(trs, tr)
	}

	return
}

func starlarkSingle(field string, key, act starlark.Tuple) (tr rawTransition, err error) {
	dests := []*string{&tr.State, &tr.Read, &tr.Next, &tr.Write}
	for n, value := range append(append(starlark.Tuple{}, key...), act[:2]...) {
		*dests[n], err = starlarkString(field, value)
		if err != nil {
			return
		}
	}

	tr.Move, err = starlarkMove(field+".move", act[2])

	return
}

func starlarkDual(field string, key, act starlark.Tuple) (tr rawTransition, err error) {
	var read2, write2, move2 string

	dests := []*string{&tr.State, &tr.Read, &read2, &tr.Next, &tr.Write, &write2}
	for n, value := range append(append(starlark.Tuple{}, key...), act[:3]...) {
		*dests[n], err = starlarkString(field, value)
		if err != nil {
			return
		}
	}

	tr.Move, err = starlarkMove(field+".move", act[3])
	if err != nil {
		return
	}
	move2, err = starlarkMove(field+".move2", act[4])
	if err != nil {
		return
	}

	tr.Read2 = &read2
	tr.Write2 = &write2
	tr.Move2 = &move2

	return
}

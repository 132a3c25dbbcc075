package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

func aStarTable() machine.Table {
	return machine.Table{
		{State: "q0", Symbol: "a"}: {Next: "q1", Write: "a", Move: tape.MOTION_RIGHT},
		{State: "q0", Symbol: "b"}: {Next: "qf", Write: "b", Move: tape.MOTION_LEFT},
		{State: "q0", Symbol: "_"}: {Next: "qf", Write: "_", Move: tape.MOTION_LEFT},
		{State: "q1", Symbol: "a"}: {Next: "q1", Write: "a", Move: tape.MOTION_RIGHT},
		{State: "q1", Symbol: "_"}: {Next: "qf", Write: "_", Move: tape.MOTION_LEFT},
	}
}

func assertAStar(t *testing.T, def *Definition) {
	assert := assert.New(t)

	if !assert.NotNil(def) || !assert.NotNil(def.Single) {
		return
	}
	assert.Nil(def.Dual)

	cfg := def.Single
	assert.Equal("astar", def.Name)
	assert.Equal(machine.NewStates("q0", "q1", "qf"), cfg.States)
	assert.Equal(tape.NewAlphabet("a", "b"), cfg.InputAlphabet)
	assert.Equal(tape.NewAlphabet("a", "b", "_"), cfg.TapeAlphabet)
	assert.Equal(tape.BLANK, cfg.Blank)
	assert.Equal(machine.State("q0"), cfg.Initial)
	assert.Equal(machine.State("qf"), cfg.Accept)
	assert.Equal(aStarTable(), cfg.Transitions)
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/astar.star", "testdata/astar.cue"} {
		t.Run(path, func(t *testing.T) {
			def, err := Load(path)
			assert.NoError(t, err)
			assertAStar(t, def)
		})
	}
}

func TestLoad_Dual(t *testing.T) {
	assert := assert.New(t)

	def, err := Load("testdata/copy.cue")
	assert.NoError(err)
	assert.Nil(def.Single)
	assert.Equal("copy", def.Name)

	cfg := def.Dual
	assert.Len(cfg.Transitions, 3)
	assert.Equal(machine.DualAction{
		Next:   "copy",
		Write1: "a",
		Write2: "a",
		Move1:  tape.MOTION_RIGHT,
		Move2:  tape.MOTION_RIGHT,
	}, cfg.Transitions[machine.DualKey{State: "copy", Symbol1: "a", Symbol2: "_"}])

	m, err := machine.NewDual(*cfg)
	assert.NoError(err)

	accepted, err := m.Run(tape.Symbols("aaa"))
	assert.NoError(err)
	assert.True(accepted)
}

func TestLoad_Unknown(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("testdata/astar.cue.missing")
	assert.Error(err)

	def, err := Load("definition.go")
	assert.Nil(def)
	assert.Equal(ErrFormatUnknown("definition.go"), err)
}

func TestLoadStarlark_Dual(t *testing.T) {
	assert := assert.New(t)

	src := `
states = ["s", "t"]
input_alphabet = ["x"]
tape_alphabet = ["x", "#"]
blank = "#"
initial = "s"
accept = "t"
transitions = {("s", "x", "#"): ("t", "x", "x", S, 1)}
`
	def, err := LoadStarlark("dual.star", src)
	assert.NoError(err)
	assert.Equal("dual", def.Name)
	assert.Equal(tape.Symbol("#"), def.Dual.Blank)
	assert.Equal(machine.DualTable{
		{State: "s", Symbol1: "x", Symbol2: "#"}: {Next: "t", Write1: "x", Write2: "x", Move1: tape.MOTION_STAY, Move2: tape.MOTION_RIGHT},
	}, def.Dual.Transitions)
}

func TestLoadStarlark_Errors(t *testing.T) {
	assert := assert.New(t)

	base := `
states = ["s"]
input_alphabet = ["x"]
tape_alphabet = ["x", "_"]
initial = "s"
accept = "s"
`
	table := []struct {
		src string
		err error
	}{
		{base, ErrFieldMissing},
		{base + "transitions = []", ErrFieldType},
		{base + "transitions = {'s': 'x'}", ErrFieldType},
		{base + "transitions = {('s',): ('s',)}", ErrTransitionArity},
		{base + "transitions = {('s', 1): ('s', 'x', R)}", ErrFieldType},
		{base + "transitions = {('s', 'x'): ('s', 'x', 'U')}", tape.ErrMotionName("U")},
		{base + "transitions = {('s', 'x'): ('s', 'x', R), ('s', 'x', '_'): ('s', 'x', 'x', R, R)}", ErrDefinitionMixed},
		{base + "transitions = {}\ninitial = 3", ErrFieldType},
		{base + "transitions = {}\nstates = 's'", ErrFieldType},
	}

	for _, entry := range table {
		def, err := LoadStarlark("bad.star", entry.src)
		assert.Nil(def, entry.src)
		assert.ErrorIs(err, entry.err, entry.src)

		var ferr *ErrField
		assert.ErrorAs(err, &ferr, entry.src)
	}

	_, err := LoadStarlark("syntax.star", "states = [")
	assert.Error(err)
}

func TestLoadStarlark_Empty(t *testing.T) {
	assert := assert.New(t)

	src := `
states = set(["s"])
input_alphabet = ()
tape_alphabet = ("_",)
initial = "s"
accept = "s"
transitions = {}
`
	def, err := LoadStarlark("empty.star", src)
	assert.NoError(err)
	assert.NotNil(def.Single)
	assert.Len(def.Single.Transitions, 0)

	m, err := machine.NewSingle(*def.Single)
	assert.NoError(err)
	accepted, err := m.Run(nil)
	assert.NoError(err)
	assert.True(accepted)
}

func TestLoadCUE_Errors(t *testing.T) {
	assert := assert.New(t)

	base := `
states: ["s"]
input_alphabet: ["x"]
tape_alphabet: ["x", "_"]
initial: "s"
accept: "s"
`
	// Schema violations.
	for _, src := range []string{
		base + `transitions: [{state: "s", read: "x", next: "s", write: "x", move: "U"}]`,
		base + `transitions: []` + "\nextra: 1",
		base + `transitions: [{state: "s", read: "x", next: "s", write: "x"}]`,
		`states: [`,
	} {
		def, err := LoadCUE("bad.cue", []byte(src))
		assert.Nil(def, src)
		assert.Error(err, src)
	}

	table := map[string]error{
		base + `transitions: [
			{state: "s", read: "x", next: "s", write: "x", move: "R"},
			{state: "s", read: "x", next: "s", write: "_", move: "L"},
		]`: ErrTransitionDuplicate,
		base + `transitions: [
			{state: "s", read: "x", next: "s", write: "x", move: "R"},
			{state: "s", read: "_", read2: "_", next: "s", write: "x", write2: "x", move: "R", move2: "R"},
		]`: ErrDefinitionMixed,
		base + `transitions: [
			{state: "s", read: "x", read2: "_", next: "s", write: "x", move: "R", move2: "R"},
		]`: ErrFieldMissing,
	}

	for src, expected := range table {
		def, err := LoadCUE("bad.cue", []byte(src))
		assert.Nil(def, src)
		assert.ErrorIs(err, expected, src)
	}
}

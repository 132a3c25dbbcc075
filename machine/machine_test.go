package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/turing/tape"
)

// aStarConfig accepts a* and a+b, rejecting everything else.
func aStarConfig() Config {
	return Config{
		States:        NewStates("q0", "q1", "qf"),
		InputAlphabet: tape.NewAlphabet("a", "b"),
		TapeAlphabet:  tape.NewAlphabet("a", "b", tape.BLANK),
		Blank:         tape.BLANK,
		Transitions: Table{
			{"q0", "a"}: {"q1", "a", tape.MOTION_RIGHT},
			{"q0", "b"}: {"qf", "b", tape.MOTION_LEFT},
			{"q0", "_"}: {"qf", "_", tape.MOTION_LEFT},
			{"q1", "a"}: {"q1", "a", tape.MOTION_RIGHT},
			{"q1", "_"}: {"qf", "_", tape.MOTION_LEFT},
		},
		Initial: "q0",
		Accept:  "qf",
	}
}

func newSingle(t *testing.T, cfg Config) *Single {
	m, err := NewSingle(cfg)
	assert.NoError(t, err)
	return m
}

func TestSingle_Run(t *testing.T) {
	assert := assert.New(t)

	m := newSingle(t, aStarConfig())

	table := map[string]bool{
		"":     true,
		"a":    true,
		"aaaa": true,
		"b":    true,
		"ab":   false,
		"aaab": false,
		"ba":   true,
		"bbbb": true,
	}

	for input, expected := range table {
		accepted, err := m.Run(tape.Symbols(input))
		assert.NoError(err, input)
		assert.Equal(expected, accepted, input)
	}
}

func TestSingle_Run_ReadsB(t *testing.T) {
	assert := assert.New(t)

	cfg := aStarConfig()
	cfg.Transitions[Key{"q1", "b"}] = Action{"qf", "b", tape.MOTION_LEFT}
	m := newSingle(t, cfg)

	accepted, err := m.Run(tape.Symbols("aaab"))
	assert.NoError(err)
	assert.True(accepted)
}

func TestSingle_Run_PastInput(t *testing.T) {
	assert := assert.New(t)

	m := newSingle(t, aStarConfig())

	ex := m.Start(tape.Symbols(strings.Repeat("a", 100)))
	for done, err := ex.Tick(); !done; done, err = ex.Tick() {
		assert.NoError(err)
	}

	assert.True(ex.Accepted())
	assert.Equal(State("qf"), ex.State())
	assert.Equal(101, ex.Steps())

	// One blank appended past the input, none prepended.
	assert.Equal(102, ex.Tape().Len())
	assert.Equal(100, ex.Tape().Head())
}

func TestSingle_Run_NoTransition(t *testing.T) {
	assert := assert.New(t)

	cfg := aStarConfig()
	m := newSingle(t, cfg)

	ex := m.Start([]tape.Symbol{"c"})
	done, err := ex.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, ex.Steps())
	assert.False(ex.Accepted())

	cfg.Accept = "q0"
	m = newSingle(t, cfg)
	accepted, err := m.Run([]tape.Symbol{"c"})
	assert.NoError(err)
	assert.True(accepted)
}

func TestSingle_Run_Idempotent(t *testing.T) {
	assert := assert.New(t)

	m := newSingle(t, aStarConfig())

	for _, input := range []string{"aab", "aaa", "", "aab"} {
		first, err := m.Run(tape.Symbols(input))
		assert.NoError(err)
		second, err := m.Run(tape.Symbols(input))
		assert.NoError(err)
		assert.Equal(first, second, input)
	}
}

func TestSingle_Run_UndefinedSymbol(t *testing.T) {
	assert := assert.New(t)

	cfg := aStarConfig()
	cfg.Transitions[Key{"q1", "a"}] = Action{"q1", "z", tape.MOTION_RIGHT}
	m := newSingle(t, cfg)

	ex := m.Start(tape.Symbols("aa"))
	done, err := ex.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = ex.Tick()
	assert.False(done)
	assert.ErrorIs(err, tape.ErrUndefinedSymbol(""))

	var rterr *ErrRuntime
	assert.ErrorAs(err, &rterr)
	assert.Equal(1, rterr.Step)
	assert.Equal(State("q1"), rterr.State)

	// The write was refused and the head did not move.
	assert.Equal(tape.Symbol("a"), ex.Tape().Read())
	assert.Equal(2, ex.Tape().Head())

	accepted, err := m.Run(tape.Symbols("aa"))
	assert.False(accepted)
	assert.ErrorIs(err, tape.ErrUndefinedSymbol(""))

	// A run that never reaches the bad entry is unaffected.
	accepted, err = m.Run(tape.Symbols("b"))
	assert.NoError(err)
	assert.True(accepted)
}

func TestNewSingle_InvalidMotion(t *testing.T) {
	assert := assert.New(t)

	cfg := aStarConfig()
	cfg.Transitions[Key{"q1", "b"}] = Action{"qf", "b", tape.Motion(7)}

	m, err := NewSingle(cfg)
	assert.Nil(m)
	assert.ErrorIs(err, tape.ErrInvalidMotion(0))

	var trerr *ErrTransition
	assert.ErrorAs(err, &trerr)
	assert.Equal("(q1, b)", trerr.Key)
}

func TestNewSingle_Copy(t *testing.T) {
	assert := assert.New(t)

	cfg := aStarConfig()
	cfg.Blank = ""
	m := newSingle(t, cfg)

	// Later edits to the caller's table do not leak into the machine.
	delete(cfg.Transitions, Key{"q0", "a"})

	accepted, err := m.Run(tape.Symbols("a"))
	assert.NoError(err)
	assert.True(accepted)
	assert.Equal(tape.BLANK, m.Config().Blank)
}

func TestExecution_TickAfterHalt(t *testing.T) {
	assert := assert.New(t)

	m := newSingle(t, aStarConfig())
	ex := m.Start(nil)

	done, err := ex.Tick()
	assert.NoError(err)
	assert.False(done)

	for range 3 {
		done, err = ex.Tick()
		assert.NoError(err)
		assert.True(done)
		assert.True(ex.Halted())
	}
	assert.Equal(1, ex.Steps())
}

func TestSingle_Verbose(t *testing.T) {
	assert := assert.New(t)

	m := newSingle(t, aStarConfig())
	m.Verbose = true

	accepted, err := m.Run(tape.Symbols("aa"))
	assert.NoError(err)
	assert.True(accepted)
}

func BenchmarkSingle_Run(b *testing.B) {
	m, err := NewSingle(aStarConfig())
	if err != nil {
		b.Fatal(err)
	}

	input := tape.Symbols(strings.Repeat("a", 100000) + "b")

	for b.Loop() {
		_, err = m.Run(input)
		if err != nil {
			b.Fatal(err)
		}
	}
}

package definition

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// cueSchema constrains CUE definitions. Transitions reading two symbols
// carry read2, write2 and move2.
const cueSchema = `
#Move: "L" | "S" | "R" | "l" | "s" | "r" | "left" | "stay" | "right"

name?:          string
states:         [...string]
input_alphabet: [...string]
tape_alphabet:  [...string]
blank?:         string
initial:        string
accept:         string
transitions: [...{
	state:   string
	read:    string
	read2?:  string
	next:    string
	write:   string
	write2?: string
	move:    #Move
	move2?:  #Move
}]
`

// LoadCUE compiles and validates a CUE definition.
func LoadCUE(filename string, src []byte) (def *Definition, err error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({"+cueSchema+"})", cue.Filename("schema.cue"))
	if err = schema.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err = value.Err(); err != nil {
		return
	}

	value = schema.Unify(value)
	if err = value.Validate(cue.Concrete(true)); err != nil {
		return
	}

	raw := &rawDefinition{}
	if err = value.Decode(raw); err != nil {
		return
	}

	def, err = raw.build(filename)

	return
}

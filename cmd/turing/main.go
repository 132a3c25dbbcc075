// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/turing/convert"
	"github.com/ezrec/turing/definition"
	"github.com/ezrec/turing/equivalence"
	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

// runner is a machine that can be started for step-wise execution.
type runner interface {
	Run(input []tape.Symbol) (bool, error)
	start(input []tape.Symbol) ticker
}

// ticker is a started execution.
type ticker interface {
	Tick() (done bool, err error)
	Accepted() bool
	Steps() int
}

type single struct{ *machine.Single }

func (m single) start(input []tape.Symbol) ticker { return m.Start(input) }

type dual struct{ *machine.Dual }

func (m dual) start(input []tape.Symbol) ticker { return m.Start(input) }

func main() {
	var def string
	var conv bool
	var input string
	var sep string
	var steps int
	var trials int
	var length int
	var seed uint64
	var verbose bool

	flag.StringVar(&def, "m", "", ".star or .cue machine definition")
	flag.BoolVar(&conv, "c", false, "Convert a single tape machine to dual tape before running")
	flag.StringVar(&input, "i", "", "File of inputs, one per line ('-' for stdin)")
	flag.StringVar(&sep, "sep", "", "Symbol separator within an input (default: one symbol per character)")
	flag.IntVar(&steps, "n", 0, "Give up after this many steps (0: never)")
	flag.IntVar(&trials, "e", 0, "Check equivalence with the converted machine on this many random inputs")
	flag.IntVar(&length, "l", equivalence.DEFAULT_LENGTH, "Length of random equivalence inputs")
	flag.Uint64Var(&seed, "seed", 1, "Seed for random equivalence inputs")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(def) == 0 {
		log.Fatalf("%v: -m is required", os.Args[0])
	}

	d, err := definition.Load(def)
	if err != nil {
		log.Fatalf("%v: %v", def, err)
	}

	var m runner
	var sm *machine.Single

	if d.Single != nil {
		sm, err = machine.NewSingle(*d.Single)
		if err != nil {
			log.Fatalf("%v: %v", def, err)
		}
		sm.Verbose = verbose
		m = single{sm}
	} else {
		dm, err := machine.NewDual(*d.Dual)
		if err != nil {
			log.Fatalf("%v: %v", def, err)
		}
		dm.Verbose = verbose
		m = dual{dm}
	}

	if conv || trials > 0 {
		if sm == nil {
			log.Fatalf("%v: only single tape machines can be converted", def)
		}
		dm, err := convert.Machine(sm)
		if err != nil {
			log.Fatalf("%v: %v", def, err)
		}
		if conv {
			m = dual{dm}
		}

		if trials > 0 {
			ck := &equivalence.Checker{
				Verbose:  verbose,
				Trials:   trials,
				Length:   length,
				Alphabet: slices.Collect(d.Single.InputAlphabet.All()),
				Seed:     seed,
			}
			// Per-step logging from thousands of runs is noise.
			sm.Verbose, dm.Verbose = false, false
			err = ck.Check(context.Background(), sm, dm)
			sm.Verbose, dm.Verbose = verbose, verbose
			if err != nil {
				log.Fatalf("%v: equivalence: %v", d.Name, err)
			}
			fmt.Printf("%v: %d trials equivalent\n", d.Name, trials)
		}
	}

	var inputs []string
	inputs = append(inputs, flag.Args()...)

	if len(input) != 0 {
		var inf io.Reader = os.Stdin
		if input != "-" {
			file, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer file.Close()
			inf = file
		}

		scanner := bufio.NewScanner(inf)
		scanner.Buffer(nil, 1<<24)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	for _, text := range inputs {
		var syms []tape.Symbol
		if len(sep) == 0 {
			syms = tape.Symbols(text)
		} else if len(text) != 0 {
			for _, part := range strings.Split(text, sep) {
				syms = append(syms, tape.Symbol(part))
			}
		}

		accepted, err := run(m, syms, steps)
		if err != nil {
			log.Fatalf("%v: %q: %v", d.Name, text, err)
		}

		result := "reject"
		if accepted {
			result = "accept"
		}
		fmt.Printf("%v\t%v\n", result, text)
	}
}

// run executes m on syms, stopping after limit steps when limit is
// positive.
func run(m runner, syms []tape.Symbol, limit int) (accepted bool, err error) {
	if limit <= 0 {
		return m.Run(syms)
	}

	ex := m.start(syms)
	for done, err := ex.Tick(); !done; done, err = ex.Tick() {
		if err != nil {
			return false, err
		}
		if ex.Steps() > limit {
			return false, fmt.Errorf("no halt after %d steps", limit)
		}
	}

	return ex.Accepted(), nil
}

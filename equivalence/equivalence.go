// Package equivalence compares two machines on randomly generated inputs.
package equivalence

import (
	"context"
	"log"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/turing/tape"
)

const (
	DEFAULT_TRIALS = 10000 // Default number of random inputs.
	DEFAULT_LENGTH = 1000  // Default symbols per input.
)

// Acceptor runs a machine to completion on an input.
type Acceptor interface {
	Run(input []tape.Symbol) (accepted bool, err error)
}

// Checker generates random inputs and compares two acceptors on them.
// Acceptors are run from several goroutines and must be safe for
// concurrent use.
type Checker struct {
	Verbose  bool          // If set, logs progress.
	Trials   int           // Number of inputs; DEFAULT_TRIALS if zero.
	Length   int           // Symbols per input; DEFAULT_LENGTH if zero.
	Alphabet []tape.Symbol // Symbols inputs are drawn from.
	Seed     uint64        // Seed of the input generator.
	Workers  int           // Concurrent trials; GOMAXPROCS if zero.
}

// Input returns the input of a trial. Inputs depend only on the seed and
// the trial number.
func (ck *Checker) Input(trial int) (input []tape.Symbol) {
	length := ck.Length
	if length == 0 {
		length = DEFAULT_LENGTH
	}

	rng := rand.New(rand.NewPCG(ck.Seed, uint64(trial)))
	input = make([]tape.Symbol, length)
	for n := range input {
		input[n] = ck.Alphabet[rng.IntN(len(ck.Alphabet))]
	}

	return
}

// Check runs a and b on every trial input. It returns an *ErrMismatch for
// the first disagreement observed, or the first error returned by either
// acceptor.
func (ck *Checker) Check(ctx context.Context, a, b Acceptor) (err error) {
	if len(ck.Alphabet) == 0 {
		err = ErrAlphabetEmpty
		return
	}

	trials := ck.Trials
	if trials == 0 {
		trials = DEFAULT_TRIALS
	}

	workers := ck.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for trial := range trials {
		if gctx.Err() != nil {
			break
		}

		group.Go(func() error {
			return ck.trial(gctx, trial, a, b)
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err == nil && ck.Verbose {
		log.Printf("equivalence: %d trials agree", trials)
	}

	return
}

func (ck *Checker) trial(ctx context.Context, trial int, a, b Acceptor) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	input := ck.Input(trial)

	ra, err := a.Run(input)
	if err != nil {
		return &ErrTrial{Trial: trial, Err: err}
	}

	rb, err := b.Run(input)
	if err != nil {
		return &ErrTrial{Trial: trial, Err: err}
	}

	if ra != rb {
		return &ErrMismatch{Trial: trial, Input: input, A: ra, B: rb}
	}

	if ck.Verbose && trial%1000 == 0 {
		log.Printf("equivalence: trial %d: %v", trial, ra)
	}

	return
}

package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqUnique yields each distinct value of seq once, in first-seen order.
func IterSeqUnique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := map[T]struct{}{}
		for val := range seq {
			if _, ok := seen[val]; ok {
				continue
			}
			seen[val] = struct{}{}
			if !yield(val) {
				return
			}
		}
	}
}

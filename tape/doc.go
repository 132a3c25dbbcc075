// Package tape implements the storage medium of the Turing machine
// simulators.
//
// A Tape is logically infinite in both directions. Only the cells the head
// has visited, plus any loaded input, are materialized; moving the head off
// either end grows the tape by exactly one blank cell. Cells are kept in a
// slice with a start offset, so growth to the left is amortized constant
// time just like growth to the right.
package tape

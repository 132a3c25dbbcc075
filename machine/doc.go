// Package machine implements deterministic single-tape and dual-tape
// Turing machines driven by finite transition tables.
//
// A machine is built from an immutable configuration. Each Run (or Start)
// creates a fresh Execution holding the current state and tapes, so a
// machine value may be shared by concurrent callers. A run halts when no
// transition is defined for the current state and the symbols under the
// heads, and accepts when it halts in the accept state. No step limit is
// imposed: a table that cycles forever never halts.
package machine

// Package challenge holds the contract every puzzle solver implements.
//
// A solver is built once from its input by the package-level New of its
// kind, which may pre-process the input. Solve must always return an answer
// for a well-formed input, even when no solution exists. Verify is a pure
// predicate consistent with what Solve produces.
package challenge

type Challenge[Output any] interface {
	Name() string
	Solve() Output
	Verify(answer Output) bool
}

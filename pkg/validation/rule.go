package validation

// Next is the optional input handed to the following rule.
type Next[I any] struct {
	value   I
	present bool
}

// Forward passes v on to the next rule.
func Forward[I any](v I) Next[I] {
	return Next[I]{value: v, present: true}
}

// Stop signals that no further input is produced.
func Stop[I any]() Next[I] {
	return Next[I]{}
}

func (n Next[I]) IsPresent() bool {
	return n.present
}

// Value returns the carried input and whether it is present.
func (n Next[I]) Value() (I, bool) {
	return n.value, n.present
}

// Rule inspects the current input and returns its verdict together with the
// input for the next rule. An error verdict pairs with Stop.
type Rule[S, E, I any] func(in I) (Result[S, E], Next[I])

// Pass builds a successful rule return that forwards next.
func Pass[S, E, I any](success S, next I) (Result[S, E], Next[I]) {
	return Ok[S, E](success), Forward(next)
}

// Reject builds a failing rule return; there is never a next input after a failure.
func Reject[S, E, I any](failure E) (Result[S, E], Next[I]) {
	return Err[S](failure), Stop[I]()
}

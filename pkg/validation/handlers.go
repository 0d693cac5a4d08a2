package validation

// Finally collapses a result into a single value.
func Finally[S, E, Out any](r Result[S, E],
	onOk func(success S) Out,
	onErr func(failure E) Out) Out {

	if r.IsOk() {
		return onOk(r.success)
	}
	return onErr(r.failure)
}

// Map transforms the success payload and keeps an error as is.
func Map[S, E, Out any](r Result[S, E], onOk func(success S) Out) Result[Out, E] {
	if r.IsOk() {
		return Ok[Out, E](onOk(r.success))
	}
	return Err[Out](r.failure)
}

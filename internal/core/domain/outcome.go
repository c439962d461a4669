package domain

// Outcome is returned by best-effort operations. Value always holds a
// usable result: either the real one or the operation's default when Err
// is set. Callers that only care about the value may ignore Err; callers
// that need to tell "legitimately empty" from "failed" inspect it.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Succeeded wraps a real result.
func Succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Defaulted wraps the default value of a failed operation together with
// the failure that forced it.
func Defaulted[T any](def T, err error) Outcome[T] {
	return Outcome[T]{Value: def, Err: err}
}

// Failed reports whether Value is a default caused by Err.
func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

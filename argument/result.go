package argument

// Result is the outcome of parsing an argument. A successful result may carry a potential
// error: a failure that was tolerated, for instance by an optional argument, and that only
// surfaces if the rest of the command line cannot be explained otherwise.
type Result[T any] struct {
	value     T
	potential error
	err       error
}

// Success returns a successful result holding v
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Partial returns a successful result holding v together with a potential error
func Partial[T any](v T, potential error) Result[T] {
	return Result[T]{value: v, potential: potential}
}

// Failure returns a failed result
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Ok reports whether the parse succeeded
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Value returns the parsed value, or the zero value of T for a failed result
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure of the result
func (r Result[T]) Err() error {
	return r.err
}

// Potential returns the potential error of a successful result
func (r Result[T]) Potential() error {
	return r.potential
}

// Get returns the value and the failure of the result
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// MapResult transforms the value of a successful result, keeping its potential error
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Failure[U](r.err)
	}
	return Partial(fn(r.value), r.potential)
}

// Merge combines two successful results. The potential error of b takes precedence over that of a.
// The first failure is propagated.
func Merge[A, B, R any](a Result[A], b Result[B], fn func(A, B) R) Result[R] {
	if a.err != nil {
		return Failure[R](a.err)
	}
	if b.err != nil {
		return Failure[R](b.err)
	}

	return Partial(fn(a.value, b.value), latest(a.potential, b.potential))
}

func latest(errs ...error) error {
	var last error
	for _, err := range errs {
		if err != nil {
			last = err
		}
	}
	return last
}

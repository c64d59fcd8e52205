// Package result provides a two-variant success/failure type used by the
// ticket lifecycle engine. Every fallible domain operation returns a Result
// instead of an (value, error) pair so that rejections compose through
// Map/FlatMap without intermediate nil checks.
package result

import "fmt"

// Result holds either a success value of type T or an error value of type E.
// The zero value is an Err carrying E's zero value; use Ok/Err to construct.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps an error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value and panics on an Err result. Calling it
// on the wrong variant is a programming bug, not a domain failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Unwrap called on Err(%v)", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value and panics on an Ok result.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("result: UnwrapErr called on Ok(%v)", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback when the result is an Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Map applies fn to the success value; an Err passes through unchanged.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr applies fn to the error value; an Ok passes through unchanged.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// FlatMap chains a result-returning operation, short-circuiting on the
// first Err encountered.
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(r.value)
}

// Match folds both variants into a single value.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// All combines an ordered slice of results into a single result of a slice,
// short-circuiting on the first Err left to right. An empty or nil input
// yields Ok of an empty slice.
func All[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T, E](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// FromPtr lifts a possibly-nil pointer into a Result. Only a nil pointer
// becomes an Err; zero values behind a valid pointer stay Ok.
func FromPtr[T, E any](ptr *T, onNil func() E) Result[T, E] {
	if ptr == nil {
		return Err[T, E](onNil())
	}
	return Ok[T, E](*ptr)
}

// TryCatch runs fn, converting any panic through mapPanic into an Err.
// A normal return becomes Ok.
func TryCatch[T, E any](fn func() T, mapPanic func(any) E) (res Result[T, E]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			res = Err[T, E](mapPanic(recovered))
		}
	}()
	return Ok[T, E](fn())
}

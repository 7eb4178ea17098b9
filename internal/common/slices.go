package common

// UnknownStr is the String() form of enum values outside their declared range.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Filter returns the elements of s for which keep returns true, preserving order.
// The result is never nil.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// Map applies fn to every element of s.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	out := make([]R, 0, len(s))
	for _, e := range s {
		out = append(out, fn(e))
	}

	return out
}

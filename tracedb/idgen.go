package tracedb

// Some helpers using closures to generate run labels.

// NewConstSeq returns a generator that always yields the same label,
// useful in tests that don't care about ordering.
func NewConstSeq(constant int) func() int {
	return func() int {
		return constant
	}
}

// NewIncreasingSeq returns a generator that yields strictly increasing
// labels starting just above start, used by Store to tag each
// recorded run with a monotonic sequence number independent of wall
// clock time.
func NewIncreasingSeq(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

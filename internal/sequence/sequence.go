package sequence

import (
	"math"
	"strconv"
	"strings"
)

// Sequence is an immutable, ascending run of Fibonacci numbers.
// The zero value is an empty sequence.
type Sequence struct {
	values []int
}

// Generate returns every Fibonacci number that does not exceed limit, in
// ascending order, starting from the seed previous=0, current=1.
//
// A term equal to the last stored term is skipped, so for limit >= 1 the
// result starts 1, 2, 3 rather than 1, 1, 2. A limit below 1 yields an empty
// sequence.
func Generate(limit int) Sequence {
	var values []int
	previous, current := 0, 1

	for current <= limit {
		if len(values) == 0 || values[len(values)-1] != current {
			values = append(values, current)
		}

		// The next term would not fit in an int, so it exceeds limit too.
		if previous > math.MaxInt-current {
			break
		}

		next := previous + current
		previous = current
		current = next
	}

	return Sequence{values: values}
}

// Len returns the number of stored terms.
func (s Sequence) Len() int {
	return len(s.values)
}

// At returns the i-th term in ascending order. It panics if i is out of range.
func (s Sequence) At(i int) int {
	return s.values[i]
}

// Last returns the largest term. ok is false for an empty sequence.
func (s Sequence) Last() (value int, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

// Values returns a copy of the terms in ascending order.
func (s Sequence) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// Tail returns the last min(n, Len()) terms, most recent first.
// It returns nil when n <= 0 or the sequence is empty.
func (s Sequence) Tail(n int) []int {
	count := min(n, len(s.values))
	if count <= 0 {
		return nil
	}

	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = s.values[len(s.values)-1-i]
	}
	return out
}

// FormatLastN renders the last min(n, s.Len()) terms of s in descending order,
// separated by single spaces. The result carries no trailing separator and no
// newline; it is empty when there is nothing to print.
func FormatLastN(s Sequence, n int) string {
	tail := s.Tail(n)
	if len(tail) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, v := range tail {
		if i > 0 {
			builder.WriteString(Separator)
		}
		builder.WriteString(strconv.Itoa(v))
	}
	return builder.String()
}

// MaxLen returns an upper bound on Generate(limit).Len(). The n-th Fibonacci
// number is the integer nearest phi^n/sqrt(5), so at most
// ceil(log_phi(limit*sqrt(5))) + 1 distinct indices fit under limit.
func MaxLen(limit int) int {
	if limit < 1 {
		return 0
	}
	bound := math.Log(float64(limit)*math.Sqrt(5)) / math.Log(goldenRatio)
	return int(math.Ceil(bound)) + 1
}

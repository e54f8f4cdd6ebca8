// Package sequence generates the ascending run of Fibonacci numbers that do
// not exceed a bound and formats its tail for display.
//
// The sequence is seeded with 0, 1 and built iteratively. A value equal to
// the last stored one is never appended, which drops the second leading 1.
package sequence

// Package oddrange computes the odd integers of an inclusive range in
// descending order. It performs no I/O; callers own prompting and printing.
package oddrange

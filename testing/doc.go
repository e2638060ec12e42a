// Package testing provides test helpers for users of the Partita library.
//
// It includes a testing.T-backed logger for observing planner output during
// test runs and a recording logger for asserting on emitted diagnostics.
package testing

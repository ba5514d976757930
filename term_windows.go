//go:build windows

package main

// setRawIO is a no-op on windows: the REPL falls back to line-buffered
// stdin instead of raw single-key reads.
func setRawIO() (func(), error) {
	return func() {}, nil
}

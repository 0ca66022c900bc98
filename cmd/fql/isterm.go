package main

import "os"

// isTerminal reports whether f is attached to a character device rather than
// a pipe or redirected file, used only to pick between slog's text and JSON
// handlers. Good enough for a CLI's own stderr; not a general TTY detector.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

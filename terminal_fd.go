package tui

import (
	"golang.org/x/term"
)

// inputFD returns the console input's file descriptor. It reports
// false for consoles built over plain readers and for descriptors that
// do not fit in an int.
func (c *Console) inputFD() (int, bool) {
	if c.file == nil {
		return 0, false
	}
	fd := c.file.Fd()
	if fd > uintptr(int(^uint(0)>>1)) {
		return 0, false
	}
	return int(fd), true // #nosec G115 -- os.File descriptors fit into int on supported platforms
}

// inputIsTerminal reports whether the console reads from an
// interactive terminal rather than a pipe or redirected file.
func (c *Console) inputIsTerminal() bool {
	fd, ok := c.inputFD()
	return ok && term.IsTerminal(fd)
}

// readNoEcho reads a line from the console's terminal with echo
// disabled. Callers must check inputIsTerminal first.
func (c *Console) readNoEcho() ([]byte, error) {
	fd, ok := c.inputFD()
	if !ok {
		return nil, ErrAborted
	}
	return term.ReadPassword(fd)
}

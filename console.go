package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
)

// ErrAborted reports that input went away while a read was pending:
// end-of-input on an empty read, or the input stream being closed
// (for example by NotifyInterrupts when an interrupt arrives).
var ErrAborted = errors.New("input aborted")

// ErrNoOptions reports a Choice call with an empty option list.
var ErrNoOptions = errors.New("choice requires at least one option")

// Console pairs an input stream with an output stream for prompting.
// It holds no state between calls beyond the input read buffer.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	file *os.File // set when in is file-backed; enables secret reads and interrupt conversion
}

// New returns a Console reading from in and writing to out. If in is
// an *os.File the console can additionally read secrets without echo
// and convert interrupts via NotifyInterrupts.
func New(in io.Reader, out io.Writer) *Console {
	console := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	if file, ok := in.(*os.File); ok {
		console.file = file
	}
	return console
}

// Stdio returns a Console bound to standard input and standard output.
func Stdio() *Console {
	return New(os.Stdin, os.Stdout)
}

// Display writes the textual form of value followed by a newline.
func (c *Console) Display(value any) {
	fmt.Fprintln(c.out, value)
}

// NotifyInterrupts arranges for an interrupt signal to abort any
// pending or future read on the console with ErrAborted instead of
// terminating the process. The first interrupt closes the console's
// input file, which unblocks a pending read. The returned stop
// function releases the signal registration; it does not reopen the
// input. Only file-backed consoles (see New, Stdio) support this.
func (c *Console) NotifyInterrupts() (stop func(), err error) {
	if c.file == nil {
		return nil, errors.New("console input is not an operating system file")
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	stopped := make(chan struct{})

	go func() {
		select {
		case <-interrupts:
			c.file.Close()
		case <-stopped:
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(stopped)
	}, nil
}

// readLine blocks until one line is available and returns it without
// the trailing line terminator. A final unterminated line before
// end-of-input still counts as a line; end-of-input with nothing read
// is reported as ErrAborted, as is a closed input stream.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if line != "" && errors.Is(err, io.EOF) {
			return trimLineEnding(line), nil
		}
		if isClosedInput(err) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimLineEnding(line), nil
}

// trimLineEnding removes one trailing LF or CRLF, preserving all other
// whitespace in the line.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func isClosedInput(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, fs.ErrClosed)
}

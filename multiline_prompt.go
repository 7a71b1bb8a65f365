package tui

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSentinel is the conventional line that ends multi-line input.
const DefaultSentinel = ".."

// MultilinePrompt writes message plus a help line naming the sentinel,
// then reads lines until one exactly equals sentinel. The sentinel
// line is excluded; the remaining lines are joined with newlines. An
// empty sentinel means a blank line ends the input. End-of-input
// before the sentinel returns whatever was accumulated with a nil
// error, since partial multi-line text is still useful.
func (c *Console) MultilinePrompt(message, sentinel string) (string, error) {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	if sentinel != "" {
		message += fmt.Sprintf("(To finish, type '%s' on a line by itself and press enter.)\n", sentinel)
	} else {
		message += "(To finish, press enter twice.)\n"
	}
	fmt.Fprint(c.out, message)

	var accumulated strings.Builder
	first := true
	for {
		line, err := c.readLine()
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return accumulated.String(), nil
			}
			return accumulated.String(), err
		}
		if line == sentinel {
			return accumulated.String(), nil
		}
		if !first {
			accumulated.WriteByte('\n')
		}
		accumulated.WriteString(line)
		first = false
	}
}

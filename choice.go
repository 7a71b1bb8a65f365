package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errNoMatch   = errors.New("selector matches no option")
	errAmbiguous = errors.New("selector matches more than one option")
)

// Choice presents options as a numbered menu and reads selections
// until one resolves. The optional message (ignored when empty) is
// printed above the menu. The user may answer with a 1-based option
// number or with a case-insensitive prefix of an option's text; a
// selection that matches nothing, or more than one option, prints a
// notice and re-prompts without re-listing the menu. Returns the
// zero-based index of the chosen option. An empty options slice
// returns ErrNoOptions before anything is printed.
func (c *Console) Choice(options []string, message string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	if message != "" {
		c.Display(message)
	}
	c.Display("Please choose one of the following options:")
	for i, option := range options {
		fmt.Fprintf(c.out, "    %d. %s\n", i+1, option)
	}
	c.Display("")

	for {
		selector, err := c.Prompt("Type the number or the option:")
		if err != nil {
			return 0, err
		}

		index, err := resolveSelector(options, selector)
		switch {
		case errors.Is(err, errAmbiguous):
			c.Display(fmt.Sprintf("Sorry, %q matches more than one option.", strings.TrimSpace(selector)))
		case err != nil:
			c.Display(fmt.Sprintf("Sorry, please enter a number between 1 and %d or the start of an option.", len(options)))
		default:
			return index, nil
		}
	}
}

// resolveSelector maps one line of user input to a zero-based option
// index. A selector that parses as an in-range 1-based number wins;
// otherwise it must be a case-insensitive prefix of exactly one
// option. An out-of-range number is still tried as a prefix.
func resolveSelector(options []string, selector string) (int, error) {
	selector = strings.TrimSpace(selector)

	if number, err := strconv.Atoi(selector); err == nil {
		if number >= 1 && number <= len(options) {
			return number - 1, nil
		}
	}

	if selector == "" {
		return 0, errNoMatch
	}

	lowered := strings.ToLower(selector)
	matched := -1
	for i, option := range options {
		if !strings.HasPrefix(strings.ToLower(option), lowered) {
			continue
		}
		if matched >= 0 {
			return 0, errAmbiguous
		}
		matched = i
	}
	if matched < 0 {
		return 0, errNoMatch
	}
	return matched, nil
}

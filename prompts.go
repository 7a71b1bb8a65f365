package tui

import (
	"fmt"
	"strings"
)

// Validator checks a candidate line. A nil return accepts the
// candidate; any error rejects it and triggers a re-prompt.
type Validator func(candidate string) error

// Prompt writes message and reads one line in response. When the
// message does not already end in a space, tab, or newline, a single
// space is appended so the response has room. The returned line has
// its terminator removed; other whitespace is preserved. End-of-input
// or a closed stream yields ErrAborted.
func (c *Console) Prompt(message string) (string, error) {
	c.writePrompt(message)
	return c.readLine()
}

// ValidPrompt repeats Prompt until validate accepts the response. A
// rejected response prints a short notice and re-prompts; the loop is
// unbounded and ends only on an accepted response or a read error.
func (c *Console) ValidPrompt(message string, validate Validator) (string, error) {
	for {
		response, err := c.Prompt(message)
		if err != nil {
			return "", err
		}
		if validate(response) != nil {
			c.Display("That was not a valid response.")
			continue
		}
		return response, nil
	}
}

// PromptSecret reads one line without echoing it when the console's
// input is a terminal. On non-terminal input (pipes, redirected files)
// it falls back to a plain line read.
func (c *Console) PromptSecret(message string) (string, error) {
	if !c.inputIsTerminal() {
		return c.Prompt(message)
	}

	c.writePrompt(message)
	secret, err := c.readNoEcho()
	fmt.Fprintln(c.out)
	if err != nil {
		if isClosedInput(err) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}

func (c *Console) writePrompt(message string) {
	if !strings.HasSuffix(message, " ") &&
		!strings.HasSuffix(message, "\t") &&
		!strings.HasSuffix(message, "\n") {
		message += " "
	}
	fmt.Fprint(c.out, message)
}

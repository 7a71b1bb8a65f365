package tui

// std is the console the package-level functions operate on. It binds
// the process's standard streams once, at first use.
var std *Console

func stdConsole() *Console {
	if std == nil {
		std = Stdio()
	}
	return std
}

// Display writes value and a newline to standard output.
func Display(value any) {
	stdConsole().Display(value)
}

// Prompt prompts on the standard streams. See Console.Prompt.
func Prompt(message string) (string, error) {
	return stdConsole().Prompt(message)
}

// ValidPrompt prompts on the standard streams until validate accepts
// the response. See Console.ValidPrompt.
func ValidPrompt(message string, validate Validator) (string, error) {
	return stdConsole().ValidPrompt(message, validate)
}

// PromptSecret reads a secret on the standard streams without echo
// when standard input is a terminal. See Console.PromptSecret.
func PromptSecret(message string) (string, error) {
	return stdConsole().PromptSecret(message)
}

// MultilinePrompt collects multi-line input from the standard streams.
// See Console.MultilinePrompt.
func MultilinePrompt(message, sentinel string) (string, error) {
	return stdConsole().MultilinePrompt(message, sentinel)
}

// Choice presents a menu on the standard streams. See Console.Choice.
func Choice(options []string, message string) (int, error) {
	return stdConsole().Choice(options, message)
}

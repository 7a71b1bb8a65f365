package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	tui "github.com/Jadiker/simple-tui"
)

var sentinel string

var rootCmd = &cobra.Command{
	Use:          "tui-demo",
	Short:        "Walk through the simple-tui console helpers",
	Long:         "tui-demo exercises each interactive helper in turn: multi-line input, plain and validated prompts, and a choice menu.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.Flags().StringVar(&sentinel, "sentinel", tui.DefaultSentinel, "line that ends multi-line input (empty means a blank line)")
}

func runDemo() error {
	console := tui.Stdio()
	if stop, err := console.NotifyInterrupts(); err == nil {
		defer stop()
	}

	story, err := console.MultilinePrompt("Tell me something interesting", sentinel)
	if err != nil {
		return err
	}
	console.Display("Got back:")
	console.Display(story)

	console.Display("Hello world!")

	answer, err := console.Prompt("Testing user input:")
	if err != nil {
		return err
	}
	console.Display(fmt.Sprintf("Got back: %s", answer))

	age, err := console.ValidPrompt("How old are you?", func(candidate string) error {
		_, err := strconv.Atoi(candidate)
		return err
	})
	if err != nil {
		return err
	}
	console.Display(fmt.Sprintf("Noted: %s.", age))

	options := []string{"The first option", "The second option"}
	picked, err := console.Choice(options, "Here are a few options.")
	if err != nil {
		return err
	}
	console.Display(fmt.Sprintf("The user chose to do the following: %s", options[picked]))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		os.Exit(1)
	}
}

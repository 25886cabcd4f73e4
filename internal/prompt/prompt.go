// Package prompt asks the user for confirmations and selections on a terminal.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

const (
	selectionPageSize = 15

	errorConfirmFormat = "confirm %q: %w"
	errorSelectFormat  = "select %q: %w"
)

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes or no question. The default answer is no.
	Confirm(message string) (bool, error)
	// SelectMany offers choices as a checkbox list and returns the zero-based indexes picked, in choice order.
	SelectMany(message string, choices []string) ([]int, error)
}

// AskFunc runs a single survey question.
type AskFunc func(question survey.Prompt, response interface{}, options ...survey.AskOpt) error

// Terminal implements Prompter with survey prompts.
type Terminal struct {
	ask     AskFunc
	options []survey.AskOpt
}

// NewTerminal creates a Terminal that reads keys from input and draws prompts on output.
func NewTerminal(input terminal.FileReader, output terminal.FileWriter, diagnostics io.Writer) *Terminal {
	return NewTerminalWithAsk(survey.AskOne, survey.WithStdio(input, output, diagnostics))
}

// NewTerminalWithAsk creates a Terminal around a custom question runner.
func NewTerminalWithAsk(ask AskFunc, options ...survey.AskOpt) *Terminal {
	return &Terminal{ask: ask, options: options}
}

// Confirm implements Prompter.
func (prompter *Terminal) Confirm(message string) (bool, error) {
	confirmed := false
	question := &survey.Confirm{Message: message, Default: false}
	if askError := prompter.ask(question, &confirmed, prompter.options...); askError != nil {
		return false, fmt.Errorf(errorConfirmFormat, message, askError)
	}
	return confirmed, nil
}

// SelectMany implements Prompter. No question is asked when there is nothing to choose from.
func (prompter *Terminal) SelectMany(message string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, nil
	}
	var selected []int
	question := &survey.MultiSelect{
		Message:  message,
		Options:  choices,
		PageSize: selectionPageSize,
	}
	if askError := prompter.ask(question, &selected, prompter.options...); askError != nil {
		return nil, fmt.Errorf(errorSelectFormat, message, askError)
	}
	return selected, nil
}

// IsInteractive reports whether file is attached to a terminal.
func IsInteractive(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

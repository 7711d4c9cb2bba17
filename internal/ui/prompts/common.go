package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Option is one entry of a select prompt: what is shown and what is returned.
type Option struct {
	Label string
	Value string
}

// PromptDescription prompts for a description text
func PromptDescription(message string, required bool, maxLen int) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		CharLimit(maxLen).
		Value(&desc)

	if required {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
	}

	err := input.Run()
	return strings.TrimSpace(desc), err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptInput prompts for a generic text input with optional default and validator.
// An empty answer returns the default.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" {
		return defaultValue, nil
	}
	return inputVal, nil
}

// PromptSelect prompts for a selection and returns the chosen Value. defaultValue is
// preselected when present.
func PromptSelect(message string, options []Option, defaultValue string) (string, error) {
	selected := defaultValue

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value).Selected(o.Value == defaultValue))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

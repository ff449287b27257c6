package cmd

import (
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/erikgeiser/promptkit/selection"
)

// Confirm asks a yes/no question, defaulting to no.
var Confirm = func(prompt string) (bool, error) {
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}

// Select asks the user to pick one of choices.
var Select = func(prompt string, choices []string) (string, error) {
	sel := selection.New(prompt, choices)
	sel.Filter = nil
	return sel.RunPrompt()
}

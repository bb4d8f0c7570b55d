package snake

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var answerTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Confirm asks a yes/no question. Declining is not an error.
func Confirm(cmd *cobra.Command, label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     stdin(cmd),
		Stdout:    stdout(cmd),
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Text asks for a line of text. An empty answer yields def; when def is also
// empty and required is set the answer is rejected.
func Text(cmd *cobra.Command, label, def string, required bool) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: answerTemplates,
		Validate: func(input string) error {
			if required && strings.TrimSpace(input) == "" && def == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  stdin(cmd),
		Stdout: stdout(cmd),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if result == "" {
		result = def
	}
	return result, nil
}

// Choose lets the user pick one of items and returns its index.
func Choose(cmd *cobra.Command, label string, items []string) (int, error) {
	prompt := promptui.Select{
		HideHelp: true,
		Label:    label,
		Items:    items,
		Size:     10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(squash(items[index]), squash(input))
		},
		Stdin:  stdin(cmd),
		Stdout: stdout(cmd),
	}
	i, _, err := prompt.Run()
	return i, err
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

package snake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// promptable flag value types. Everything else is skipped.
var promptable = map[string]bool{
	"bool":        true,
	"string":      true,
	"int":         true,
	"stringSlice": true,
	"stringArray": true,
	"duration":    true,
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return "--" + f.Name
}

// PromptFlag asks for the value of f and returns it as a "--name=value"
// argument. Blank answers take the flag default.
func PromptFlag(cmd *cobra.Command, f *pflag.Flag) (string, error) {
	kind := f.Value.Type()
	if !promptable[kind] {
		return "", fmt.Errorf("%q flag type not supported interactively", kind)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, kind, f.DefValue)

	p := promptui.Prompt{
		Templates: answerTemplates,
		Stdin:     stdin(cmd),
		Stdout:    stdout(cmd),
	}
	if kind == "bool" {
		p.Label = boolChoices(f.DefValue)
		p.Validate = func(in string) error {
			if in == "" {
				return nil
			}
			_, err := ParseBool(in)
			return err
		}
	} else {
		p.Label = fmt.Sprintf("[%q]", f.DefValue)
		p.Validate = func(in string) error {
			if in == "" && f.DefValue == "" {
				return errors.New("empty")
			}
			return nil
		}
	}

	answer, err := p.Run()
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = f.DefValue
	}
	if kind == "bool" {
		b, _ := ParseBool(answer)
		answer = strconv.FormatBool(b)
	}
	return flagArg(f.Name, answer), nil
}

func boolChoices(def string) string {
	b, err := ParseBool(def)
	switch {
	case err != nil:
		return "true/false"
	case b:
		return "[true]/false"
	}
	return "true/[false]"
}

func flagArg(name, value string) string {
	return "--" + name + "=" + value
}

// ParseBool is strconv.ParseBool with the addition of yes/no, in any case.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "1", "t", "true", "y", "yes":
		return true, nil
	case "0", "f", "false", "n", "no":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

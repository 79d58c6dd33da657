package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	copyFlagTypeName            = "copy"
	invalidCopyFlagValueMessage = "invalid copy flag value '%s'"
)

var (
	trueCopyFlagLiterals = map[string]struct{}{
		"":     {},
		"true": {},
		"t":    {},
		"1":    {},
		"yes":  {},
		"y":    {},
	}
	falseCopyFlagLiterals = map[string]struct{}{
		"false": {},
		"f":     {},
		"0":     {},
		"no":    {},
		"n":     {},
	}
)

// interpretCopyFlagLiteral maps a copy flag argument onto a boolean. The
// second return value reports whether the argument is a recognized literal.
func interpretCopyFlagLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if _, matches := trueCopyFlagLiterals[normalized]; matches {
		return true, true
	}
	if _, matches := falseCopyFlagLiterals[normalized]; matches {
		return false, true
	}
	return false, false
}

// copyFlagValue adapts a boolean target to the pflag.Value interface while
// accepting the relaxed set of boolean literals.
type copyFlagValue struct {
	target *bool
}

func (value *copyFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	booleanValue, recognized := interpretCopyFlagLiteral(input)
	if !recognized {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	*value.target = booleanValue
	return nil
}

func (value *copyFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return "false"
	}
	return "true"
}

func (value *copyFlagValue) Type() string {
	return copyFlagTypeName
}

// registerCopyFlag registers the copy flag so that a bare --copy enables
// copying without consuming the following positional path argument.
func registerCopyFlag(flagSet *pflag.FlagSet, target *bool) {
	if flagSet == nil || target == nil {
		return
	}
	*target = false
	flagSet.Var(&copyFlagValue{target: target}, copyFlagName, copyFlagDescription)
	if registeredFlag := flagSet.Lookup(copyFlagName); registeredFlag != nil {
		registeredFlag.NoOptDefVal = "true"
	}
}

// normalizeCopyFlagArguments rewrites a space-separated copy flag into its
// --copy=value form. A following boolean literal is consumed as the value;
// any other following token (a path, another flag) leaves the flag bare so
// the token stays positional.
func normalizeCopyFlagArguments(arguments []string) []string {
	normalized := make([]string, 0, len(arguments))
	argumentIndex := 0
	for argumentIndex < len(arguments) {
		currentArgument := arguments[argumentIndex]
		if currentArgument == "--" {
			normalized = append(normalized, arguments[argumentIndex:]...)
			break
		}
		if currentArgument == "--"+copyFlagName {
			nextIndex := argumentIndex + 1
			if nextIndex < len(arguments) && !strings.HasPrefix(arguments[nextIndex], "-") {
				if booleanValue, recognized := interpretCopyFlagLiteral(arguments[nextIndex]); recognized {
					normalized = append(normalized, fmt.Sprintf("--%s=%t", copyFlagName, booleanValue))
					argumentIndex += 2
					continue
				}
			}
			normalized = append(normalized, fmt.Sprintf("--%s=true", copyFlagName))
			argumentIndex++
			continue
		}
		normalized = append(normalized, currentArgument)
		argumentIndex++
	}
	return normalized
}

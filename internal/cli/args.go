// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// splitOptions ends option parsing at the first argument that is not one of
// cmd's flags, so that tokens such as -5 or - reach the evaluator.
func splitOptions(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()
	flags := cmd.Flags()

	for i := 0; i < len(args); {
		if args[i] == "--" {
			return args
		}
		consumed, ok := flagArity(flags, args[i])
		if !ok {
			split := make([]string, 0, len(args)+1)
			split = append(split, args[:i]...)
			split = append(split, "--")
			return append(split, args[i:]...)
		}
		i += consumed
	}
	return args
}

// flagArity reports whether arg names flags in set and how many arguments
// it spans, 2 when the flag's value is the next argument.
func flagArity(set *pflag.FlagSet, arg string) (int, bool) {
	if name, found := strings.CutPrefix(arg, "--"); found {
		name, _, hasValue := strings.Cut(name, "=")
		flag := set.Lookup(name)
		if flag == nil {
			return 0, false
		}
		if hasValue || flag.NoOptDefVal != "" {
			return 1, true
		}
		return 2, true
	}

	shorthands, found := strings.CutPrefix(arg, "-")
	if !found || shorthands == "" {
		return 0, false
	}
	for i := 0; i < len(shorthands); i++ {
		c := shorthands[i]
		if c >= 0x80 {
			return 0, false
		}
		flag := set.ShorthandLookup(string(c))
		if flag == nil {
			return 0, false
		}
		if flag.NoOptDefVal == "" {
			// -p2 or -p 2
			if i+1 < len(shorthands) {
				return 1, true
			}
			return 2, true
		}
	}
	return 1, true
}

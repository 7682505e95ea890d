package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// normalizeArgs lets "ipc metadata -5" reach the command as an id instead of
// failing as an unknown shorthand flag. For the metadata command, flags are
// kept in front and positionals move behind a "--" terminator. Other
// commands get args unchanged.
func normalizeArgs(root *cobra.Command, args []string) []string {
	cmd, rest, err := root.Find(args)
	if err != nil || cmd != metadataCmd || !hasNegativeInt(rest) {
		return args
	}

	// Find strips the subcommand name from rest
	var flags, positional []string
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			positional = append(positional, rest[i+1:]...)
			i = len(rest)
		case negativeInt.MatchString(arg):
			positional = append(positional, arg)
		case strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(rest) {
				i++
				flags = append(flags, rest[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	out := append([]string{cmd.Name()}, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func hasNegativeInt(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if negativeInt.MatchString(arg) {
			return true
		}
	}
	return false
}

// takesValue reports whether a flag written without "=" consumes the next arg
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var name string
	switch {
	case strings.HasPrefix(arg, "--"):
		name = strings.TrimPrefix(arg, "--")
	case len(arg) == 2:
		if f := cmd.Flags().ShorthandLookup(arg[1:]); f != nil {
			return f.NoOptDefVal == ""
		}
		return false
	default:
		return false
	}

	f := cmd.Flag(name)
	return f != nil && f.NoOptDefVal == ""
}

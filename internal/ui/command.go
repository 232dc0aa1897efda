package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/csvtrim/csvtrim/internal/profile"
)

// CommandSpec represents a non-interactive CLI invocation derived from an
// interactive session, so a run can be replayed in scripts.
type CommandSpec struct {
	Args []string
}

// BuildCommand builds the equivalent `csvtrim trim` invocation. A named
// profile is referenced by name; an ad-hoc profile is spelled out as inline
// step flags.
func BuildCommand(input, output, profileName string, p profile.Profile) CommandSpec {
	args := []string{"csvtrim", "trim", input}

	if profileName != "" {
		args = append(args, "--profile", profileName)
	} else {
		if p.RemoveBlankRows {
			args = append(args, "--remove-blank-rows")
		}
		for _, prefix := range p.TrimPrefixes {
			args = append(args, "--trim-prefix", prefix)
		}
		if !p.DeleteColumn.IsZero() {
			args = append(args, "--delete-column", p.DeleteColumn.String())
		}
		if p.FormatDatetime != nil {
			args = append(args, "--format-datetime", strconv.Itoa(*p.FormatDatetime))
		}
		if p.UseFirstRowAsHeader {
			args = append(args, "--header")
		}
	}

	if output != "" {
		args = append(args, "--out", output)
	}
	return CommandSpec{Args: args}
}

// FormatCommand renders the args as a shell-pasteable line, quoting anything
// a shell would split.
func FormatCommand(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			parts[i] = strconv.Quote(arg)
		} else {
			parts[i] = arg
		}
	}
	return strings.Join(parts, " ")
}

// CopyCommand puts the formatted command on the system clipboard.
func CopyCommand(command CommandSpec) error {
	return clipboard.WriteAll(FormatCommand(command.Args))
}

// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur cmd i line
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd=""

    # Find the sub-command
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            cmd="${COMP_WORDS[i]}"
            break
        fi
    done
`, programName))

	if len(data.Dynamic) > 0 && data.Hook != "" {
		script.WriteString(fmt.Sprintf(`
    # Everything after a dynamic sub-command is a command line of its own
    case "${cmd}" in
        %s)
            line="${COMP_LINE:0:COMP_POINT}"
            line="${line#*${cmd}}"
            line="${line# }"
            local IFS=$'\n'
            COMPREPLY=( $(%s %s --shell bash -- "${line}" 2>/dev/null) )
            return
            ;;
    esac
`, strings.Join(data.Dynamic, "|"), programName, data.Hook))
	}

	script.WriteString(`
    # If we're completing a flag
    if [[ "$cur" == -* ]]; then
        local flags=(`)

	flagStrs := make([]string, 0, len(data.Flags))
	for _, flag := range data.Flags {
		flagStrs = append(flagStrs, fmt.Sprintf("%s[%s]", flag.Name, escapeBash(flag.Description)))
	}
	script.WriteString(strings.Join(flagStrs, " "))

	script.WriteString(`)
        COMPREPLY=( $(compgen -W "${flags[*]%%[*}" -- "$cur") )
        return
    fi

    # Complete commands if no command is present yet
    if [[ -z "$cmd" ]]; then
        local commands=(`)

	cmdStrs := make([]string, 0, len(data.Commands))
	for _, cmd := range data.Commands {
		cmdStrs = append(cmdStrs, fmt.Sprintf("%s[%s]", cmd.Name, escapeBash(cmd.Description)))
	}
	script.WriteString(strings.Join(cmdStrs, " "))

	script.WriteString(fmt.Sprintf(`)
        COMPREPLY=( $(compgen -W "${commands[*]%%%%[*}" -- "$cur") )
    fi
}

complete -F __%[1]s_completion %[1]s
`, programName))

	return script.String()
}

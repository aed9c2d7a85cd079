// completion/zsh.go
package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    local curcontext="$curcontext" state line cmd i
    typeset -A opt_args
    local -a commands candidates

    commands=(`, programName))

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`
        '%s:%s'`, strings.ReplaceAll(cmd.Name, ":", `\:`), escapeZsh(cmd.Description)))
	}
	script.WriteString(`
    )
`)

	if len(data.Dynamic) > 0 && data.Hook != "" {
		script.WriteString(fmt.Sprintf(`
    # Everything after a dynamic sub-command is a command line of its own
    for ((i=2; i < CURRENT; i++)); do
        if [[ ${words[i]} != -* ]]; then
            cmd=${words[i]}
            break
        fi
    done
    case $cmd in
        %s)
            line="${(j: :)words[i+1,CURRENT]}"
            candidates=("${(@f)$(%s %s --shell zsh -- "$line" 2>/dev/null)}")
            _describe -t values 'values' candidates
            return
            ;;
    esac
`, strings.Join(data.Dynamic, "|"), programName, data.Hook))
	}

	script.WriteString(`
    _arguments -C \`)
	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
        '*%s[%s]' \`, flag.Name, escapeZsh(flag.Description)))
	}

	script.WriteString(fmt.Sprintf(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe -t commands 'commands' commands
            ;;
    esac
}

__%[1]s_completion "$@"
`, programName))

	return script.String()
}

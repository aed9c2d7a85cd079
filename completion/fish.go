package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	if len(data.Dynamic) > 0 && data.Hook != "" {
		// tokens after the dynamic sub-command are handed to the hook as one line
		script.WriteString(fmt.Sprintf(`function __%[1]s_dynamic
    set -l tokens (commandline -opc) (commandline -ct)
    set -l dynamic %[2]s
    for i in (seq 2 (count $tokens))
        if contains -- $tokens[$i] $dynamic
            %[1]s %[3]s --shell fish -- (string join ' ' $tokens[(math $i + 1)..-1])
            return
        end
    end
end

`, programName, strings.Join(data.Dynamic, " "), data.Hook))
	}

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		switch {
		case strings.HasPrefix(flag.Name, "--"):
			cmd = fmt.Sprintf("%s -l %s", cmd, strings.TrimPrefix(flag.Name, "--"))
		case strings.HasPrefix(flag.Name, "-"):
			cmd = fmt.Sprintf("%s -s %s", cmd, strings.TrimPrefix(flag.Name, "-"))
		default:
			continue
		}
		script.WriteString(fmt.Sprintf("%s -d '%s'\n", cmd, escapeFish(flag.Description)))
	}

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(
			"complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, cmd.Name, escapeFish(cmd.Description)))
	}

	if len(data.Dynamic) > 0 && data.Hook != "" {
		script.WriteString(fmt.Sprintf(
			"complete -c %[1]s -f -n '__fish_seen_subcommand_from %[2]s' -a '(__%[1]s_dynamic)'\n",
			programName, strings.Join(data.Dynamic, " ")))
	}

	return script.String()
}

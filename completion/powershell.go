// completion/powershell.go
package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`
Register-ArgumentCompleter -Native -CommandName %[1]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $line = $commandAst.ToString()
    if ($cursorPosition -lt $line.Length) {
        $line = $line.Substring(0, $cursorPosition)
    }
    $commandElements = $line -split "\s+"
`, programName))

	if len(data.Dynamic) > 0 && data.Hook != "" {
		quoted := make([]string, len(data.Dynamic))
		for i, d := range data.Dynamic {
			quoted[i] = "'" + d + "'"
		}
		script.WriteString(fmt.Sprintf(`
    # Everything after a dynamic sub-command is a command line of its own
    for ($i = 1; $i -lt $commandElements.Count - 1; $i++) {
        if (@(%s) -contains $commandElements[$i]) {
            $rest = ($commandElements[($i + 1)..($commandElements.Count - 1)]) -join ' '
            & %s %s --shell powershell -- $rest 2>$null | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
    }
`, strings.Join(quoted, ", "), programName, data.Hook))
	}

	script.WriteString(`
    if ($wordToComplete.StartsWith('-')) {
        @(`)
	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
            [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')`,
			flag.Name, strings.TrimLeft(flag.Name, "-"), escapePowerShell(flag.Description)))
	}
	script.WriteString(`
        ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
        return
    }

    @(`)
	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'Command', '%s')`,
			cmd.Name, cmd.Name, escapePowerShell(cmd.Description)))
	}
	script.WriteString(`
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}

package completion

import (
	"strings"

	"github.com/napalu/kommando/argument"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	desc = strings.ReplaceAll(desc, "`", "``")
	desc = strings.ReplaceAll(desc, `"`, "`\"")
	desc = strings.ReplaceAll(desc, `$`, "`$")
	desc = strings.ReplaceAll(desc, `'`, `''`)
	return desc
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// Candidates renders suggestions the way the hook of shell prints them, one per line. zsh
// reads "text:tooltip" and fish "text<TAB>tooltip"; the other shells only read the text.
func Candidates(shell string, suggestions []argument.Suggestion) string {
	var b strings.Builder
	for _, s := range suggestions {
		switch {
		case shell == "zsh":
			b.WriteString(strings.ReplaceAll(s.Text, ":", `\:`))
			if s.Tooltip != "" {
				b.WriteString(":" + s.Tooltip)
			}
		case shell == "fish" && s.Tooltip != "":
			b.WriteString(s.Text + "\t" + s.Tooltip)
		default:
			b.WriteString(s.Text)
		}
		b.WriteString("\n")
	}

	return b.String()
}

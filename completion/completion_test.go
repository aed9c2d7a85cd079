package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/kommando/argument"
)

func testData() CompletionData {
	return CompletionData{
		Commands: []Entry{
			{Name: "exec", Description: "Execute a command line"},
			{Name: "usage", Description: "Show the usage of a command"},
		},
		Flags: []Entry{
			{Name: "--spec", Description: "Command document"},
			{Name: "-v", Description: "Increase verbosity"},
		},
		Dynamic: []string{"exec", "suggest"},
		Hook:    "complete",
	}
}

func TestBashCompletion(t *testing.T) {
	script := (&BashGenerator{}).Generate("testapp", testData())

	for _, expected := range []string{
		"function __testapp_completion",
		"exec[Execute a command line]",
		"--spec[Command document]",
		"exec|suggest)",
		`COMPREPLY=( $(testapp complete --shell bash -- "${line}" 2>/dev/null) )`,
		`"${commands[*]%%[*}"`,
		"complete -F __testapp_completion testapp",
	} {
		assert.Contains(t, script, expected)
	}
}

func TestBashCompletionWithoutHook(t *testing.T) {
	data := testData()
	data.Hook = ""
	script := (&BashGenerator{}).Generate("testapp", data)
	assert.NotContains(t, script, "COMP_LINE")
}

func TestZshCompletion(t *testing.T) {
	script := (&ZshGenerator{}).Generate("testapp", testData())

	for _, expected := range []string{
		"#compdef testapp",
		"'exec:Execute a command line'",
		"'*--spec[Command document]'",
		"exec|suggest)",
		"testapp complete --shell zsh -- \"$line\"",
		"__testapp_completion \"$@\"",
	} {
		assert.Contains(t, script, expected)
	}
}

func TestFishCompletion(t *testing.T) {
	script := (&FishGenerator{}).Generate("testapp", testData())

	for _, expected := range []string{
		"function __testapp_dynamic",
		"set -l dynamic exec suggest",
		"testapp complete --shell fish --",
		"complete -c testapp -l spec -d 'Command document'",
		"complete -c testapp -s v -d 'Increase verbosity'",
		"complete -c testapp -f -n '__fish_use_subcommand' -a 'exec' -d 'Execute a command line'",
		"complete -c testapp -f -n '__fish_seen_subcommand_from exec suggest' -a '(__testapp_dynamic)'",
	} {
		assert.Contains(t, script, expected)
	}
}

func TestPowerShellCompletion(t *testing.T) {
	script := (&PowerShellGenerator{}).Generate("testapp", testData())

	for _, expected := range []string{
		"Register-ArgumentCompleter -Native -CommandName testapp",
		"@('exec', 'suggest') -contains $commandElements[$i]",
		"& testapp complete --shell powershell -- $rest",
		"::new('--spec', 'spec', 'ParameterName', 'Command document')",
		"::new('usage', 'usage', 'Command', 'Show the usage of a command')",
	} {
		assert.Contains(t, script, expected)
	}
}

func TestGetGenerator(t *testing.T) {
	tests := []struct {
		shell    string
		expected Generator
	}{
		{"bash", &BashGenerator{}},
		{"zsh", &ZshGenerator{}},
		{"fish", &FishGenerator{}},
		{"powershell", &PowerShellGenerator{}},
		{"unknown", &BashGenerator{}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			assert.IsType(t, tt.expected, GetGenerator(tt.shell))
		})
	}
}

func TestEscapeDescription(t *testing.T) {
	assert.Equal(t, `say \"hi\" \[now\] for \$5`, escapeBash(`say "hi" [now] for $5`))
	assert.Equal(t, `don\'t`, escapeFish(`don't`))
	assert.Equal(t, "``a`\" `$b ''c''", escapePowerShell("`a\" $b 'c'"))
	assert.Equal(t, `\[x\] \"y\"`, escapeZsh(`[x] "y"`))
}

func TestCandidates(t *testing.T) {
	suggestions := []argument.Suggestion{
		{Text: "minecraft:stone", Tooltip: "a block"},
		{Text: "plain"},
	}

	assert.Equal(t, "minecraft:stone\nplain\n", Candidates("bash", suggestions))
	assert.Equal(t, "minecraft\\:stone:a block\nplain\n", Candidates("zsh", suggestions))
	assert.Equal(t, "minecraft:stone\ta block\nplain\n", Candidates("fish", suggestions))
	assert.Empty(t, Candidates("bash", nil))
}

func TestDynamicCommand(t *testing.T) {
	data := testData()
	assert.True(t, data.DynamicCommand("exec"))
	assert.False(t, data.DynamicCommand("usage"))
}

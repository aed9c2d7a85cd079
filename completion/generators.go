package completion

// Generator renders the completion script of a shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// Shells lists the shells a script can be generated for
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GetGenerator returns the generator of shell, defaulting to bash
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	case "bash":
		fallthrough
	default:
		return &BashGenerator{}
	}
}

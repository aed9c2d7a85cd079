package completion

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/napalu/kommando/errs"
)

// layout is where a shell looks for user completion scripts and how it expects them to be named
type layout struct {
	primary  []string
	fallback []string
	prefix   string
	ext      string
}

var (
	bashLayout = layout{
		primary:  []string{".local", "share", "bash-completion", "completions"},
		fallback: []string{".bash_completion.d"},
	}
	zshLayout = layout{
		primary:  []string{".zsh", "completion"},
		fallback: []string{".zfunc"},
		prefix:   "_",
	}
	fishLayout = layout{
		primary:  []string{".config", "fish", "completions"},
		fallback: []string{".local", "share", "fish", "completions"},
		ext:      ".fish",
	}
)

// layouts lists the shells per GOOS. Any other GOOS uses the linux entry.
var layouts = map[string]map[string]layout{
	"linux": {
		"bash": bashLayout,
		"zsh":  zshLayout,
		"fish": fishLayout,
		"powershell": {
			primary:  []string{".config", "powershell", "Completions"},
			fallback: []string{".local", "share", "powershell", "Completions"},
			ext:      ".ps1",
		},
	},
	"darwin": {
		"bash": bashLayout,
		"zsh":  zshLayout,
		"fish": fishLayout,
		"powershell": {
			primary:  []string{"Library", "PowerShell", "Completions"},
			fallback: []string{".config", "powershell", "Completions"},
			ext:      ".ps1",
		},
	},
	"windows": {
		"bash": bashLayout,
		"zsh":  zshLayout,
		"fish": fishLayout,
		"powershell": {
			primary:  []string{"Documents", "WindowsPowerShell", "Completions"},
			fallback: []string{".config", "WindowsPowerShell", "Completions"},
			ext:      ".ps1",
		},
	},
}

// pwshLayout replaces the windows powershell entry when PowerShell Core is installed
var pwshLayout = layout{
	primary:  []string{"Documents", "PowerShell", "Completions"},
	fallback: []string{".config", "powershell", "Completions"},
	ext:      ".ps1",
}

func lookupLayout(goos, shell string) (layout, error) {
	shells, ok := layouts[goos]
	if !ok {
		shells = layouts["linux"]
	}
	l, ok := shells[shell]
	if !ok {
		return layout{}, errs.ErrUnsupportedShell.WithArgs(shell)
	}
	if goos == "windows" && shell == "powershell" && isPowerShellCore() {
		return pwshLayout, nil
	}

	return l, nil
}

func (l layout) paths(home string) CompletionPaths {
	return CompletionPaths{
		Primary:  filepath.Join(append([]string{home}, l.primary...)...),
		Fallback: filepath.Join(append([]string{home}, l.fallback...)...),
		Prefix:   l.prefix,
		Ext:      l.ext,
	}
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

func getCompletionPaths(goos, shell string) (CompletionPaths, error) {
	l, err := lookupLayout(goos, shell)
	if err != nil {
		return CompletionPaths{}, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, err
	}

	return l.paths(home), nil
}

// ensureDir creates dir with perm, correcting the mode of an existing directory
func ensureDir(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return err
	}
	return ensurePermission(dir, perm)
}

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" || info.Mode().Perm() == perm {
		return nil
	}

	return os.Chmod(path, perm)
}

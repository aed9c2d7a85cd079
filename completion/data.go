package completion

// Entry is a static completion candidate
type Entry struct {
	Name        string
	Description string
}

// CompletionData describes the command line of a program. The words following one of the
// Dynamic sub-commands form a command line of their own that the shell completes by running
// "<program> <Hook> --shell <shell> -- <line>".
type CompletionData struct {
	Commands []Entry
	Flags    []Entry
	Dynamic  []string
	Hook     string
}

// DynamicCommand reports whether name is completed through the hook
func (d CompletionData) DynamicCommand(name string) bool {
	for _, c := range d.Dynamic {
		if c == name {
			return true
		}
	}
	return false
}

// CompletionPaths is where a completion script is installed and how its file is named
type CompletionPaths struct {
	Primary  string
	Fallback string
	Prefix   string
	Ext      string
}

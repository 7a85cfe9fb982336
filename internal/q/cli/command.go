// Package cli is a small typed-flag framework for single-command CLI
// programs. It parses flags and positional args, generates help, and maps
// handler errors to process exit codes (usage mistakes exit 2, runtime
// failures exit 1 unless the error carries its own code).
package cli

// RunFunc is the command handler.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. It should return a UsageError (or any
// ExitCoder with code 2) for user-facing usage mistakes.
type ArgsFunc func(args []string) error

// Command defines a CLI program.
type Command struct {
	// Name is the program name shown in help and usage lines.
	Name string

	Short   string
	Long    string
	Example string

	// UsageArgs describes the positional args in the usage line
	// (ex: "<file1> <file2>"). If empty, no args are shown.
	UsageArgs string

	Args ArgsFunc // optional
	Run  RunFunc  // required by Run()

	flags *FlagSet
}

// Flags returns c's flags, creating the set on first use.
func (c *Command) Flags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned by Execute for a name that was never registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one CLI subcommand. Run sees the flag values parsed into FlagSet.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry dispatches os.Args-style argument lists to registered subcommands.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a registry with no commands.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand selected by name (e.g. "mesh"). A later call with the
// same name replaces the earlier one.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute parses args[1:] with the FlagSet of the command named by args[0] and runs it.
// Parse errors (including flag.ErrHelp) and Run errors are returned unchanged.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("missing subcommand")
	}
	c, found := r.cmds[args[0]]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := c.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return c.Run()
}

// Usage writes one line per command: name and summary.
func (r *Registry) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <command> [flags]\n\ncommands:\n", program)
	width := 0
	for _, name := range r.Names() {
		width = max(width, len(name))
	}
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %s%s  %s\n", name, strings.Repeat(" ", width-len(name)), r.cmds[name].Summary)
	}
}

package command

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

type Command interface {
	command()
}

type (
	// Echo prints its arguments back to the transcript.
	Echo struct{ Args []string }
	// History lists the focused field's committed entries.
	History struct{}
	// Clear wipes the screen.
	Clear struct{}
	// Quit shuts the pad down.
	Quit struct{}
)

func (e Echo) command()    {}
func (h History) command() {}
func (c Clear) command()   {}
func (q Quit) command()    {}

// Parse splits input shell-style and returns the matching command. Empty
// input parses to nil.
func Parse(input string) (Command, error) {
	args, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, nil
	}
	switch args[0] {
	case "echo", "e":
		return Echo{Args: args[1:]}, nil
	case "history", "hist":
		return parseBare(History{}, args[1:])
	case "clear":
		return parseBare(Clear{}, args[1:])
	case "quit", "q":
		return parseBare(Quit{}, args[1:])
	default:
		return nil, errors.New(fmt.Sprintf("Unknown command: %s", args[0]))
	}
}

func parseBare(cmd Command, args []string) (Command, error) {
	if len(args) > 0 {
		return nil, errors.New("Too many arguments")
	}
	return cmd, nil
}

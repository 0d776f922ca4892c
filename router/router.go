package router

import (
	"errors"
	"fmt"
	"strings"

	"histpad/command"
	"histpad/message"
)

// Router executes the commands committed in the UI and reports results back
// on its output channel.
type Router struct {
	input  chan message.Message
	output chan message.Message
}

func New(input chan message.Message, output chan message.Message) *Router {
	return &Router{
		input:  input,
		output: output,
	}
}

// Run consumes the input channel until the UI closes it, then closes the
// output channel so the host can unwind.
func (r *Router) Run() {
	for msg := range r.input {
		switch msg := msg.(type) {
		case message.Command:
			if err := r.handleCommand(msg.Cmd); err != nil {
				r.println(err)
			}
		}
	}
	close(r.output)
}

func (r *Router) handleCommand(cmd command.Command) error {
	switch cmd := cmd.(type) {
	case command.Echo:
		r.println(strings.Join(cmd.Args, " "))
		return nil
	default:
		// History, Clear, and Quit are resolved in the UI and never routed.
		return errors.New(fmt.Sprintf("Command %T cannot be handled here", cmd))
	}
}

func (r *Router) printf(format string, args ...any) {
	r.println(fmt.Sprintf(format, args...))
}

func (r *Router) println(input ...any) {
	r.output <- message.Print{Obj: input}
}

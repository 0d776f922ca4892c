package message

import (
	"histpad/command"
)

type Message interface {
	msg()
}

type (
	Command struct{ Cmd command.Command }
	Print   struct{ Obj []any }
)

func (c Command) msg() {}
func (p Print) msg()   {}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/adrg/xdg"

	"histpad/config"
	"histpad/message"
	"histpad/router"
	"histpad/ui"
)

func abort(reason error) {
	if reason != nil {
		fmt.Println(reason)
	}
	os.Exit(1)
}

func main() {
	// Logging
	logPath, err := xdg.StateFile("histpad.log")
	if err != nil {
		abort(err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		abort(err)
	}
	log.SetOutput(file)

	cfg, err := config.New(".histpad")
	if err != nil {
		abort(err)
	}

	routerInput := make(chan message.Message)
	routerOutput := make(chan message.Message)

	p := ui.New(cfg, routerInput)
	go router.New(routerInput, routerOutput).Run()
	go func() {
		for msg := range routerOutput {
			p.Send(msg)
		}
	}()

	if _, err := p.Run(); err != nil {
		abort(err)
	}
}

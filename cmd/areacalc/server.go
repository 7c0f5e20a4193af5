package main

import (
	"github.com/pescuma/areacalc/lib/server"
)

type ServerCmd struct {
	Port uint `default:"2531" help:"Port to listen to."`
}

func (c *ServerCmd) Run(ctx *context) error {
	return server.Run(ctx.console, &server.Options{
		Port: c.Port,
	})
}

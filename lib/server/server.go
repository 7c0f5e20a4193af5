package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/areacalc/lib/consoles"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, opts *Options) error {
	s := newServer(opts)

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options
}

func newServer(opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2531
	}

	return &server{
		opts: opts,
	}
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initShapes(r)
	s.initGreet(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}

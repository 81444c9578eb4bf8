package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnalang/dnalang/server"
)

type ServeCmd struct {
	Addr string `help:"Address to listen on." default:":8080" env:"DNALANG_ADDR"`
}

func (s *ServeCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(s.Addr).ListenAndServe(ctx)
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lox/rpsarena/cmd/rpsarena/shared"
	"github.com/lox/rpsarena/internal/server"
)

// ServeCmd runs the tournament server.
type ServeCmd struct {
	Config  string `kong:"default='rpsarena.hcl',help='Path to HCL config file'"`
	Address string `kong:"help='Listen address (overrides config)'"`
	Port    int    `kong:"help='Listen port (overrides config)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Address != "" {
		cfg.Server.Address = c.Address
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}

	logger := shared.SetupLogger(cfg.Server.LogLevel, c.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	return srv.Run(ctx)
}

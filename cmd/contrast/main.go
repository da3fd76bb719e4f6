// contrast - WCAG 2.1 colour contrast checker
//
// contrast computes the contrast ratio between a foreground and background
// colour and reports AA/AAA compliance for normal and large text.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/contrast/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

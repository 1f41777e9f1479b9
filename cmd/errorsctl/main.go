// Command errorsctl is the command line client for the errors playground.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/syntaxlabz/errors-playground/internal/cli"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	cli.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

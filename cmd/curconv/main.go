package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Lutefd/curconv/internal/cli"
	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env")
	env, err := commons.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(cli.ExitFailure)
	}
	logger.Init(env.LogLevel, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	app := cli.NewApp(env, cli.WithProgram(filepath.Base(os.Args[0])))
	code := app.Run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/birbparty/perch/internal/cli"
	"github.com/birbparty/perch/internal/telemetry"
)

func main() {
	telCfg := telemetry.NewConfigFromEnv("perchctl")
	if os.Getenv("LOG_LEVEL") == "" {
		telCfg.LogLevel = "warn"
	}
	if err := telemetry.Init(telCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
	}

	err := cli.NewRootCommand().Execute()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = telemetry.Shutdown(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pusewicz/tacticaltwo-game/internal/game"
	"github.com/pusewicz/tacticaltwo-game/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Telemetry is optional: without a collector endpoint the game runs
	// without observability.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	return g.Run(ctx)
}

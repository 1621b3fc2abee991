package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pusewicz/tacticaltwo-game/internal/game"
	"github.com/pusewicz/tacticaltwo-game/internal/save"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	RunE:  runSaves,
}

func runSaves(cmd *cobra.Command, args []string) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	store, err := save.Open(cfg.SavePath)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("no saves")
		return nil
	}

	for _, info := range infos {
		fmt.Printf("slot %d  %-14s %s\n", info.Slot, info.State, info.SavedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

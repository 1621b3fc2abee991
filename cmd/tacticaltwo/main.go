// Package main is the entry point for TacticalTwo.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tacticaltwo",
	Short: "TacticalTwo terminal side-scroller",
	Long:  `TacticalTwo is a tactical side-scroller demo built around a resumable character state machine.`,
}

func main() {
	// Load .env file for local development; env vars may also be set
	// directly, so a missing file is not fatal.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
}

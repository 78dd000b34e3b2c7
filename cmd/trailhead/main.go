package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trailhead",
	Short: "Trailhead trail catalogue API",
	Long:  "Trailhead is a REST service exposing CRUD over walking trails, backed by Postgres, with password verification delegated to an external identity service and role-based authorization carried in signed tokens.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: configs/trailhead.yaml)")
}

func main() {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

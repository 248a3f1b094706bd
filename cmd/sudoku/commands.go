package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	solveFile    string
	solveTimeout time.Duration
	solveSaveAs  string
	solveDataDir string

	serveAddr    string
	serveDataDir string
	serveLogLvl  string
	serveConfig  string

	rootCmd = &cobra.Command{
		Use:   "sudoku",
		Short: "An N×N sudoku solver built on constraint propagation and backtracking",
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle entered interactively or loaded from storage",
		RunE:  runSolve, // defined in cmd_solve.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver JSON API over HTTP",
		RunE:  runServe, // defined in cmd_serve.go
	}
)

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "load a puzzle JSON file instead of prompting")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the solve after this long (0 = no limit)")
	solveCmd.Flags().StringVar(&solveSaveAs, "save", "", "save the entered puzzle under this name before solving")
	solveCmd.Flags().StringVar(&solveDataDir, "data-dir", "./data", "puzzle storage directory")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "puzzle storage directory (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLvl, "log-level", "", "debug|info|warn|error (overrides config)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(solveCmd, serveCmd)
}

// Package cli wires the command line to the TUI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stagerhq/stager/internal/config"
	"github.com/stagerhq/stager/internal/gitx"
	"github.com/stagerhq/stager/internal/log"
	"github.com/stagerhq/stager/internal/tui"
)

// Version is stamped at build time.
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "stager [path]",
		Short: "Stage, commit and push git changes from a TUI",
		Long:  "Stager: review working-tree changes, stage or ignore files, and commit, pull and push without leaving the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := mustGetStringFlag(cmd, "repo")
			if len(args) == 1 {
				repoPath = args[0]
			}
			return runTUI(repoPath)
		},
	}

	root.PersistentFlags().StringP("repo", "r", ".", "Path to repository root (default: current dir)")
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func runTUI(repoPath string) error {
	repoRoot, err := gitx.RepoRoot(repoPath)
	if err != nil {
		return fmt.Errorf("not a git repo: %w", err)
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		// a broken config file should not keep the tool from starting
		fmt.Fprintln(os.Stderr, "config:", err)
		cfg = config.Default()
	}
	if cfg.DebugLog != "" {
		if err := log.SetFile(cfg.DebugLog); err != nil {
			fmt.Fprintln(os.Stderr, "debug log:", err)
		}
	}
	return tui.Run(repoRoot, *cfg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stager version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("stager", Version)
		},
	}
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/config"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/gitops"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

func newInitCommand() *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new vgk project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(dir, name string, noGit bool) error {
	dirs := []string{
		dataSubdir,
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "vgk.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	store, err := storage.NewFileStore(filepath.Join(dir, dataSubdir))
	if err != nil {
		return err
	}

	entries := ledger.NewEntryStore(store)
	registry := ledger.NewRegistry(store, entries)
	seeded, err := registry.Seed(ledger.DefaultChart(time.Now()))
	if err != nil {
		return fmt.Errorf("seeding chart of accounts: %w", err)
	}
	if err := store.Set(storage.KeyInitialized, true); err != nil {
		return fmt.Errorf("marking initialized: %w", err)
	}

	gitignore := "*.tmp\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized vgk project at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	if seeded {
		fmt.Printf("Initialized vgk project at %s with default chart of accounts (%s)\n", dir, hash)
	} else {
		fmt.Printf("Initialized vgk project at %s (%s)\n", dir, hash)
	}
	return nil
}

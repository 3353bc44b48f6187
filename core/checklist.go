package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/outwriter"
	"github.com/benchwatch/benchwatch/schema"
)

// ExecuteConfigShow prints the whole checklist document.
func ExecuteConfigShow(_ context.Context, cfg *contract.Config) error {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	return outwriter.PrintConfigRoot(root, cfg)
}

// ExecuteConfigPath prints the resolved checklist location.
func ExecuteConfigPath(_ context.Context, cfg *contract.Config) error {
	path := cfg.ChecklistPath
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fmt.Println(path)

	if _, err := os.Stat(cfg.ChecklistPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Println("Checklist not created yet; run 'benchwatch config init'")
	}
	return nil
}

// ExecuteConfigInit creates a fresh checklist with the built-in scenarios.
// An existing file is never overwritten.
func ExecuteConfigInit(_ context.Context, cfg *contract.Config) error {
	if _, err := os.Stat(cfg.ChecklistPath); err == nil {
		return fmt.Errorf("checklist already exists at %s", cfg.ChecklistPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat checklist: %w", err)
	}

	root := schema.DefaultConfig()
	if err := root.Save(cfg.ChecklistPath); err != nil {
		return err
	}
	fmt.Printf("Created checklist with %d built-in scenario(s) at %s\n", len(root.Scenarios), cfg.ChecklistPath)
	return nil
}

// ExecuteConfigMigrate rewrites the checklist in the current shape. Loading
// already lifts legacy documents, so a rewrite is all migration takes; the
// command is idempotent on current-shape files.
func ExecuteConfigMigrate(_ context.Context, cfg *contract.Config) error {
	root, err := schema.Load(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	if err := root.Save(cfg.ChecklistPath); err != nil {
		return err
	}
	fmt.Printf("Checklist at %s is now at version %d\n", cfg.ChecklistPath, schema.CurrentConfigVersion)
	return nil
}

package core

import (
	"context"
	"fmt"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/library"
	"github.com/benchwatch/benchwatch/internal/outwriter"
	"github.com/benchwatch/benchwatch/schema"
)

// ExecuteLibraryList prints the built-in check catalog.
func ExecuteLibraryList(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintLibrary(library.All(), cfg)
}

// ExecuteLibraryAdd instantiates a catalog entry into the active scenario
// and persists the checklist.
func ExecuteLibraryAdd(_ context.Context, cfg *contract.Config, id string) error {
	entry, ok := library.Find(id)
	if !ok {
		return fmt.Errorf("Library check '%s' not found", id)
	}

	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return err
	}
	activeID, sc, err := resolveScenario(root, cfg)
	if err != nil {
		return err
	}

	chk := entry.Instantiate()
	if sc.FindCheck(chk.ID) >= 0 {
		return fmt.Errorf("Check '%s' already exists", chk.ID)
	}
	sc.Checks = append(sc.Checks, chk)
	root.Scenarios[activeID] = sc

	if err := root.Save(cfg.ChecklistPath); err != nil {
		return err
	}
	fmt.Printf("Added '%s' to scenario '%s'\n", chk.ID, activeID)
	return nil
}

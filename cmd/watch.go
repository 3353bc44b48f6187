package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/notify"
	"github.com/benchwatch/benchwatch/internal/osprobe"
	"github.com/benchwatch/benchwatch/internal/watchshell"
)

// watchCmd runs the background poller together with an interactive shell.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the active scenario and drive it from an interactive shell.",
	Long: `Start the background poller for the active scenario and open an
interactive shell sharing its state.

The poller reruns the scenario's checks at its poll interval and prints a
drift notification whenever a previously passing check starts failing.
Shell commands (status, run, results, fix, scenario, interval, notify,
save, reload) act on the same live state the poller sees.

Examples:
  # Watch the saved default scenario
  benchwatch watch

  # Watch with a slower cadence and notifications off
  benchwatch watch --interval 60 --notify no

  # Watch a specific scenario without switching the default
  benchwatch watch --scenario cpu_benchmark

Ctrl-C returns to the prompt; 'quit' or Ctrl-D saves and exits.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runWatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run watch mode", err)
		}
	},
}

// runWatch wires the coordinator, poller and shell together, and tears
// them down in order when the shell ends.
func runWatch(ctx context.Context, cfg *contract.Config) error {
	coord, err := core.NewCoordinator(cfg, osprobe.New(), notify.NewConsoleNotifier())
	if err != nil {
		return err
	}

	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		core.NewPoller(coord).Run(pollCtx)
	}()

	shellErr := watchshell.New(coord, cfg).Run()

	coord.SignalExit()
	cancel()
	wg.Wait()

	if err := coord.Save(); err != nil {
		contract.LogWarn("Cannot save checklist on exit", err)
	}
	fmt.Println("Watch mode stopped")
	return shellErr
}

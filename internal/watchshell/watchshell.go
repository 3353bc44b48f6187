// Package watchshell implements the interactive shell for watch mode.
//
// The shell shares one Coordinator with the background poller, so every
// command here serializes through the same mutex as the polling cycles
// and drift notifications keep printing while the prompt is open.
package watchshell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/outwriter"
	"github.com/benchwatch/benchwatch/schema"
)

// Shell drives a Coordinator from an interactive prompt.
type Shell struct {
	coord *core.Coordinator
	cfg   *contract.Config
	out   io.Writer
}

// New returns a shell bound to the given coordinator.
func New(coord *core.Coordinator, cfg *contract.Config) *Shell {
	return &Shell{coord: coord, cfg: cfg, out: os.Stdout}
}

// Run reads commands until 'quit', Ctrl-D, or a readline failure.
// Ctrl-C clears the current line and returns to the prompt.
func (s *Shell) Run() error {
	rl, err := readline.New(contract.InfoColor.Sprint("benchwatch> "))
	if err != nil {
		return fmt.Errorf("cannot open prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintf(s.out, "Watching scenario '%s' every %ds. Type 'help' for commands.\n",
		s.coord.ActiveID(), s.coord.PollInterval())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt read failed: %w", err)
		}

		if err := s.handle(line); err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Fprintf(s.out, "%s %v\n", contract.FailColor.Sprint("Error:"), err)
		}
	}
}

// handle dispatches one input line. It returns io.EOF to end the session.
func (s *Shell) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "status":
		return s.cmdStatus()
	case "run":
		return s.cmdRun()
	case "results":
		return s.cmdResults()
	case "fix":
		return s.cmdFix(args)
	case "scenario":
		return s.cmdScenario(args)
	case "interval":
		return s.cmdInterval(args)
	case "notify":
		return s.cmdNotify(args)
	case "save":
		return s.cmdSave()
	case "reload":
		return s.cmdReload()
	case "help":
		return s.cmdHelp()
	case "quit", "exit":
		return io.EOF
	default:
		return fmt.Errorf("unknown command '%s' (try 'help')", command)
	}
}

// cmdStatus summarizes the most recent cycle without running a new one.
func (s *Shell) cmdStatus() error {
	if s.coord.LastRun().IsZero() {
		fmt.Fprintf(s.out, "%s: no checks run yet\n", s.coord.ActiveID())
		return nil
	}

	results := s.coord.LastResults()
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	fmt.Fprintf(s.out, "%s: %s (%d/%d), last run %s\n",
		s.coord.ActiveID(),
		contract.GetColorStatusLabel(s.coord.Status()),
		passed, len(results),
		s.coord.LastRun().Format("15:04:05"))
	return nil
}

// cmdRun evaluates the active scenario immediately.
func (s *Shell) cmdRun() error {
	start := time.Now()
	results, _, err := s.coord.RunChecks()
	if err != nil {
		return err
	}
	return outwriter.PrintCheckResults(results, s.cfg, time.Since(start))
}

// cmdResults lists the cached per-check results in compact form.
func (s *Shell) cmdResults() error {
	results := s.coord.LastResults()
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No checks run yet")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(s.out, "%s %s: %s\n", contract.GetColorResultLabel(r), r.ID, r.Message)
	}
	return nil
}

// cmdFix repairs one failing check by id, or every failing check when
// called with no argument or 'all'.
func (s *Shell) cmdFix(args []string) error {
	if len(args) == 0 || args[0] == "all" {
		fixes := s.coord.FixFailing()
		if len(fixes) == 0 {
			fmt.Fprintln(s.out, "No failing checks to fix")
			return nil
		}
		return outwriter.PrintFixResults(fixes, s.cfg)
	}

	fix, err := s.coord.FixCheck(args[0])
	if err != nil {
		return err
	}
	return outwriter.PrintFixResults([]schema.FixResult{fix}, s.cfg)
}

// cmdScenario lists scenarios, or switches to the named one.
func (s *Shell) cmdScenario(args []string) error {
	if len(args) == 0 {
		active := s.coord.ActiveID()
		for _, summary := range s.coord.Scenarios() {
			marker := " "
			if summary.ID == active {
				marker = "*"
			}
			fmt.Fprintf(s.out, "%s %s (%s) - %d check(s)\n", marker, summary.ID, summary.Name, summary.Checks)
		}
		return nil
	}

	if err := s.coord.SwitchScenario(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Switched to scenario '%s', polling every %ds\n", args[0], s.coord.PollInterval())
	return nil
}

// cmdInterval changes the poll interval for the running session.
func (s *Shell) cmdInterval(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: interval <seconds>")
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid interval '%s'", args[0])
	}
	if err := s.coord.SetPollInterval(seconds); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Poll interval set to %d seconds\n", seconds)
	return nil
}

// cmdNotify switches drift notifications on or off.
func (s *Shell) cmdNotify(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: notify on|off")
	}

	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		parsed, err := contract.ParseBoolString(args[0])
		if err != nil {
			return fmt.Errorf("usage: notify on|off")
		}
		enabled = parsed
	}

	s.coord.SetNotifyOnDrift(enabled)
	if enabled {
		fmt.Fprintln(s.out, "Drift notifications enabled")
	} else {
		fmt.Fprintln(s.out, "Drift notifications disabled")
	}
	return nil
}

// cmdSave writes the checklist to disk.
func (s *Shell) cmdSave() error {
	if err := s.coord.Save(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Checklist saved")
	return nil
}

// cmdReload rereads the checklist from disk, dropping unsaved edits.
func (s *Shell) cmdReload() error {
	if err := s.coord.Reload(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Checklist reloaded, scenario '%s'\n", s.coord.ActiveID())
	return nil
}

func (s *Shell) cmdHelp() error {
	fmt.Fprint(s.out, `Commands:
  status           Summarize the latest cycle
  run              Run all enabled checks now
  results          Show the latest per-check results
  fix [id|all]     Fix one failing check, or every failing check
  scenario [id]    List scenarios, or switch to one
  interval <secs>  Change the poll interval
  notify on|off    Toggle drift notifications
  save             Save the checklist to disk
  reload           Reload the checklist from disk
  help             Show this help
  quit             Exit watch mode
`)
	return nil
}

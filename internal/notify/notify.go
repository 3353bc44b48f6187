// Package notify delivers drift notifications to the console.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// maxBodyLines caps how many drifted checks one notification lists.
const maxBodyLines = 3

// ConsoleNotifier prints drift notifications, standing in for the toast
// notifications of a desktop build.
type ConsoleNotifier struct {
	out io.Writer
}

var _ contract.Notifier = &ConsoleNotifier{} // Compile-time check

// NewConsoleNotifier returns a notifier printing to stderr, keeping stdout
// clean for command output.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stderr}
}

// NewConsoleNotifierTo returns a notifier printing to w.
func NewConsoleNotifierTo(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: w}
}

// Drift implements the Notifier interface. An empty subset prints nothing.
func (n *ConsoleNotifier) Drift(results []schema.CheckResult) {
	if len(results) == 0 {
		return
	}

	title := "⚠ Setting Changed"
	if len(results) > 1 {
		title = fmt.Sprintf("⚠ %d Settings Changed", len(results))
	}
	fmt.Fprintln(n.out, contract.WarnColor.Sprint(title))

	for i, r := range results {
		if i == maxBodyLines {
			fmt.Fprintf(n.out, "... and %d more\n", len(results)-maxBodyLines)
			break
		}
		fmt.Fprintf(n.out, "• %s: %s → %s\n", r.Name, r.Expected, r.Current)
	}
}

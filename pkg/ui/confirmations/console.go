// Package confirmations provides yes/no confirmation dialogs for
// destructive operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Request is a single question put to the user.
type Request struct {
	Title       string
	Description string
	// Items lists what the operation will touch. Only the first few are shown.
	Items []string
	// Default is the answer used when the user just presses enter.
	Default bool
}

// Confirmer asks the user to approve an operation.
type Confirmer interface {
	Confirm(req Request) (bool, error)
}

// ConsoleDialog implements Confirmer by prompting on a terminal
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a new console confirmation dialog
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prints the request and reads a y/n answer
func (d *ConsoleDialog) Confirm(req Request) (bool, error) {
	fmt.Fprintf(d.out, "\n%s %s\n", pterm.Warning.Prefix.Text, pterm.Bold.Sprint(req.Title))
	if len(req.Items) > 0 {
		if len(req.Items) <= 3 {
			fmt.Fprintf(d.out, "└── %s\n", strings.Join(req.Items, ", "))
		} else {
			fmt.Fprintf(d.out, "└── %s and %d more\n", strings.Join(req.Items[:3], ", "), len(req.Items)-3)
		}
	}
	if req.Description != "" {
		fmt.Fprintf(d.out, "└── %s\n", req.Description)
	}

	marker := "[y/N]"
	if req.Default {
		marker = "[Y/n]"
	}
	fmt.Fprintf(d.out, "Continue? %s: ", marker)

	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(line))
	if response == "" {
		return req.Default, nil
	}
	return response == "y" || response == "yes", nil
}

// AutoConfirm approves every request. Used for --yes.
type AutoConfirm struct{}

// Confirm always returns true
func (AutoConfirm) Confirm(Request) (bool, error) {
	return true, nil
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

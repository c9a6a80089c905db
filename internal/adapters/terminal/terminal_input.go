package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"redeploy/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput provides terminal input operations using golang.org/x/term.
type TerminalInput struct{}

// ProvideTerminalInput creates a new TerminalInput adapter.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

// ReadPassword prompts for a secret and returns the input without echoing to the terminal.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// ReadAll reads a piped secret, such as `echo $TOKEN | redeploy credential add --token-stdin`.
func (t *TerminalInput) ReadAll(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

package ports

import "io"

// TerminalInput provides methods for reading user input from the terminal.
type TerminalInput interface {
	// ReadPassword prompts for a secret and returns the input without echoing to the terminal.
	ReadPassword(prompt string) (string, error)
	// ReadAll reads a secret piped through stdin, trimming the trailing newline.
	ReadAll(reader io.Reader) (string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}

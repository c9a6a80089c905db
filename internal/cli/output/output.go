package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	plain  bool
)

// Redirect sends all output to the given writers with colors disabled and returns
// a function restoring the previous writers.
func Redirect(out, errOut io.Writer) func() {
	previousOut, previousErr, previousPlain := stdout, stderr, plain
	stdout, stderr, plain = out, errOut, true
	return func() {
		stdout, stderr, plain = previousOut, previousErr, previousPlain
	}
}

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if plain {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

func style(text string, codes ...string) string {
	if !ColorsEnabled() {
		return text
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

func Bold(text string) string { return style(text, bold) }

func Dim(text string) string { return style(text, dim) }

func Success(text string) string { return style(text, green) }

func Error(text string) string { return style(text, red) }

func Warning(text string) string { return style(text, yellow) }

func Info(text string) string { return style(text, cyan) }

// Header returns text styled as a section header
func Header(text string) string { return style(text, bold, white) }

// Secondary returns text in dim cyan for supplementary information
func Secondary(text string) string { return style(text, dim, cyan) }

func Println(a ...any) {
	fmt.Fprintln(stdout, a...)
}

func Printf(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

func PrintHeader(text string) {
	fmt.Fprintln(stdout, Header(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints to stderr
func PrintError(message string) {
	fmt.Fprintf(stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints to stderr
func PrintWarning(message string) {
	fmt.Fprintf(stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

func PrintInfo(message string) {
	fmt.Fprintf(stdout, "%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Fprintf(stdout, "  %s %s\n", SymbolArrow, message)
}

func PrintSecondary(message string) {
	fmt.Fprintf(stdout, "  %s %s\n", SymbolArrow, Secondary(message))
}

// PrintBullet prints one list entry with an optional dimmed detail.
func PrintBullet(item string, detail string) {
	if detail == "" {
		fmt.Fprintf(stdout, "  %s %s\n", SymbolBullet, Bold(item))
		return
	}
	fmt.Fprintf(stdout, "  %s %s  %s\n", SymbolBullet, Bold(item), Dim(detail))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

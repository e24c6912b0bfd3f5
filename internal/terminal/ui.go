package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

var (
	mu    sync.Mutex
	out   io.Writer = os.Stdout
	color           = term.IsTerminal(int(os.Stdout.Fd()))
)

// SetOutput redirects UI output. Colour is enabled only when w is a terminal.
// It returns a function restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevColor := out, color
	out = w
	color = false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out, color = prevOut, prevColor
	}
}

// Writer returns the current UI writer.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// Colored reports whether ANSI colours are written.
func Colored() bool {
	mu.Lock()
	defer mu.Unlock()
	return color
}

func style(codes ...string) string {
	if !color {
		return ""
	}
	return strings.Join(codes, "")
}

func printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, args...)
}

// UI helper functions.

// Success prints a green success message.
func Success(msg string) {
	printf("%s✓%s %s\n", style(Bold, Green), style(Reset), msg)
}

// Error prints a red error message.
func Error(msg string) {
	printf("%s✗%s %s\n", style(Bold, Red), style(Reset), msg)
}

// Info prints a blue info message.
func Info(msg string) {
	printf("%si%s %s\n", style(Bold, Blue), style(Reset), msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	printf("%s!%s %s\n", style(Bold, Yellow), style(Reset), msg)
}

// Header prints a bold header.
func Header(msg string) {
	printf("\n%s%s%s\n", style(Bold), msg, style(Reset))
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	printf("  %s%s:%s %s\n", style(Dim), label, style(Reset), value)
}

// Progress prints a progress line for batch runs.
func Progress(current, total int, label string) {
	printf("  %s[%d/%d]%s %s\n", style(Cyan), current, total, style(Reset), label)
}

// Divider prints a horizontal line.
func Divider() {
	printf("%s%s%s\n", style(Dim), strings.Repeat("─", 60), style(Reset))
}

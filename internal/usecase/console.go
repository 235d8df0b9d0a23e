package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
)

// console reads one answer per line and remembers the first write error.
type console struct {
	scanner *bufio.Scanner
	out     io.Writer
	err     error
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *console) say(format string, args ...any) {
	if that.err != nil {
		return
	}

	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// ask writes prompt and returns the next input line without its line ending.
func (that *console) ask(prompt string) (string, error) {
	that.say("%s", prompt)
	if that.err != nil {
		return "", that.err
	}

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", apperror.ErrInputClosed
	}

	return strings.TrimRight(that.scanner.Text(), "\r"), nil
}

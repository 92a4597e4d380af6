package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ecocity/internal/shared"
	"github.com/dmitrijs2005/ecocity/internal/verdict"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// readLine reads one line from reader with the trailing newline removed.
// If EOF occurs after some input was read, the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. Surrounding whitespace is trimmed.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password. On a
// terminal the input is not echoed; otherwise (piped input) the next line
// of reader is used. Surrounding whitespace is trimmed.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		return []byte(strings.TrimSpace(line)), nil
	}

	raw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	pw := bytes.TrimSpace(raw)
	if len(pw) == len(raw) {
		return raw, nil
	}
	out := append([]byte(nil), pw...)
	shared.WipeByteArray(raw)
	return out, nil
}

// GetLines prints a prompt to w and reads lines until an empty line or EOF.
// The raw lines are returned unchanged; parsing is left to the caller.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(empty line to finish)\n"); err != nil {
		return nil, err
	}

	lines := make([]string, 0)
	for {
		line, err := readLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseScores turns "label=score" lines into scores, keeping their order.
// Only the last '=' separates label from score, so labels may contain '='.
func ParseScores(lines []string) ([]verdict.Score, error) {
	scores := make([]verdict.Score, 0, len(lines))
	for _, line := range lines {
		i := strings.LastIndex(line, "=")
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrIncorrectScore, line)
		}
		label := strings.TrimSpace(line[:i])
		v, err := strconv.ParseFloat(strings.TrimSpace(line[i+1:]), 64)
		if label == "" || err != nil {
			return nil, fmt.Errorf("%w: %q", ErrIncorrectScore, line)
		}
		scores = append(scores, verdict.Score{Label: label, Value: v})
	}
	return scores, nil
}

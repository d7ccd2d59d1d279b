package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/hovertip/internal/core/domain"
)

// Script operations.
const (
	opEnter  = "enter"
	opMove   = "move"
	opLeave  = "leave"
	opClick  = "click"
	opScroll = "scroll"
	opWait   = "wait"
	opShow   = "show"
	opHide   = "hide"
	opPin    = "pin"
)

// scriptArgs lists the argument names of each operation. Coordinates
// are optional for leave and click.
var scriptArgs = map[string][]string{
	opEnter:  {"ID", "X", "Y"},
	opMove:   {"ID", "X", "Y"},
	opLeave:  {"ID"},
	opClick:  {"ID"},
	opScroll: {"X", "Y"},
	opWait:   {"DURATION"},
	opShow:   {"ID", "X", "Y"},
	opHide:   {"ID"},
	opPin:    {"ID"},
}

// step is one parsed script line.
type step struct {
	Line      int
	Op        string
	ElementID string
	X, Y      int
	Wait      time.Duration
	Source    string
}

// parseScript reads one operation per line. Blank lines and lines
// starting with # are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		s.Line = n
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	return steps, nil
}

func parseStep(line string) (step, error) {
	fields := strings.Fields(line)
	s := step{Op: strings.ToLower(fields[0]), Source: strings.Join(fields, " ")}
	args := fields[1:]

	names, ok := scriptArgs[s.Op]
	if !ok {
		return step{}, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, fields[0])
	}

	optionalXY := s.Op == opLeave || s.Op == opClick
	switch {
	case len(args) == len(names):
	case optionalXY && len(args) == 3:
	default:
		return step{}, fmt.Errorf("%w: %s takes %s", domain.ErrInvalidInput, s.Op, strings.Join(names, " "))
	}

	var err error
	switch s.Op {
	case opScroll:
		s.X, s.Y, err = parseXY(args[0], args[1])
	case opWait:
		s.Wait, err = parseWait(args[0])
	default:
		s.ElementID = args[0]
		if len(args) == 3 {
			s.X, s.Y, err = parseXY(args[1], args[2])
		}
	}
	if err != nil {
		return step{}, err
	}

	return s, nil
}

func parseXY(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x %q", domain.ErrInvalidInput, xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y %q", domain.ErrInvalidInput, ys)
	}
	return x, y, nil
}

// parseWait accepts a Go duration or a bare number of milliseconds.
func parseWait(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("%w: negative wait %q", domain.ErrInvalidInput, s)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: wait %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}

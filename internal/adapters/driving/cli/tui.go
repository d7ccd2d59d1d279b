package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
	"github.com/custodia-labs/hovertip/internal/logger"
)

// timerQueueSize bounds callbacks waiting for the update loop.
const timerQueueSize = 16

var (
	tuiPage     string
	tuiMarkdown bool
)

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore a page with hover tooltips in the terminal",
	Long: `Open a page in the terminal and hover its elements with the mouse.

The page comes from --page, then the page setting, then the built-in
demo. Page files are reloaded when they are saved.

Controls:
  mouse     - Hover to show, click to pin, wheel to scroll
  ↑/k, ↓/j  - Scroll
  r         - Reload the page file
  ?         - Toggle help
  q         - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiPage, "page", "p", "", "page file (.toml, .yaml or .yml)")
	tuiCmd.Flags().BoolVar(&tuiMarkdown, "markdown", false, "render tooltip content as markdown")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("tui needs a terminal; use simulate for scripted runs")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports, err := tuiPorts(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// The TUI owns the terminal until it exits.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(cmd.ErrOrStderr())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiPorts loads the page once and returns ports that can reload it.
// Attach warnings of the first load go to w.
func tuiPorts(w io.Writer) (*tui.Ports, error) {
	path := pagePath(tuiPage)
	timers := make(chan func(), timerQueueSize)
	sched := timer.NewClock(nil, timer.Channel(timers))

	load := func(w io.Writer) (*dom.Document, driving.TooltipRegistry, error) {
		p, err := readPage(path)
		if err != nil {
			return nil, nil, err
		}
		doc, reg, err := buildPage(w, p, sched)
		if err != nil {
			return nil, nil, err
		}
		return doc, reg, nil
	}

	doc, reg, err := load(w)
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	markdown := tuiMarkdown
	if configStore != nil && configStore.GetBool(file.KeyMarkdown) {
		markdown = true
	}

	return &tui.Ports{
		Document:  doc,
		Tooltips:  reg,
		Timers:    timers,
		Reload:    func() (*dom.Document, driving.TooltipRegistry, error) { return load(io.Discard) },
		WatchPath: path,
		Markdown:  markdown,
	}, nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
)

var (
	simulatePage string
	simulateJSON bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Run a pointer script against a headless page",
	Long: `Run a script of pointer events and tooltip calls against a page
without a terminal, and print the tooltip states after every step.

The script is read from the named file, or from stdin when the name is
omitted or "-". Time is virtual: wait advances the clock and fires the
auto-dismiss timers that fall due.

Host events go through the listeners each tooltip registered:
  enter ID X Y     move ID X Y     leave ID     click ID [X Y]

Direct calls on a tooltip:
  show ID X Y      hide ID         pin ID

Page and clock:
  scroll X Y       wait DURATION   (e.g. 150ms, 2s, or 100 for 100ms)

Lines starting with # are comments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulatePage, "page", "p", "", "page file (.toml, .yaml or .yml)")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(simulateCmd)
}

// AnnotationResult describes the annotation of a tooltip after a step.
type AnnotationResult struct {
	ID      string `json:"id"`
	Class   string `json:"class"`
	Content string `json:"content"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// TooltipResult describes one tooltip after a step.
type TooltipResult struct {
	ElementID  string            `json:"element_id"`
	State      string            `json:"state"`
	Annotation *AnnotationResult `json:"annotation,omitempty"`
}

// StepResult is the page state after one script step.
type StepResult struct {
	Line             int             `json:"line"`
	Step             string          `json:"step"`
	ElapsedMS        int64           `json:"elapsed_ms"`
	TimersFired      int             `json:"timers_fired,omitempty"`
	DefaultPrevented bool            `json:"default_prevented,omitempty"`
	Tooltips         []TooltipResult `json:"tooltips"`
}

// SimulationResult is the JSON document printed by simulate --json.
type SimulationResult struct {
	Page  string       `json:"page"`
	Steps []StepResult `json:"steps"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	script, closeScript, err := openScript(cmd, args)
	if err != nil {
		return err
	}
	defer closeScript()

	steps, err := parseScript(script)
	if err != nil {
		return err
	}

	p, err := readPage(pagePath(simulatePage))
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}

	clock := timer.NewManual()
	doc, reg, err := buildPage(cmd.ErrOrStderr(), p, clock)
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}

	sim := &simulator{doc: doc, tooltips: reg, clock: clock}
	result := SimulationResult{Page: p.Title, Steps: make([]StepResult, 0, len(steps))}
	for _, s := range steps {
		r, err := sim.run(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", s.Line, err)
		}
		result.Steps = append(result.Steps, r)
	}

	if simulateJSON {
		return outputSimulationJSON(cmd, result)
	}
	return outputSimulationText(cmd, result)
}

func openScript(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// simulator applies script steps to a headless page on a virtual clock.
type simulator struct {
	doc      *dom.Document
	tooltips driving.TooltipRegistry
	clock    *timer.Manual
}

func (s *simulator) run(st step) (StepResult, error) {
	r := StepResult{Line: st.Line, Step: st.Source}

	switch st.Op {
	case opEnter, opMove, opLeave, opClick:
		kind, err := domain.ParseEventKind(st.Op)
		if err != nil {
			return r, err
		}
		ev := dom.NewEvent(st.X, st.Y)
		if err := s.doc.Dispatch(st.ElementID, kind, ev); err != nil {
			return r, err
		}
		r.DefaultPrevented = ev.DefaultPrevented

	case opShow, opHide, opPin:
		tip, ok := s.tooltips.Get(st.ElementID)
		if !ok {
			return r, fmt.Errorf("tooltip %q: %w", st.ElementID, domain.ErrNotFound)
		}
		switch st.Op {
		case opShow:
			tip.Show(dom.NewEvent(st.X, st.Y))
		case opHide:
			tip.Hide()
		default:
			tip.TogglePin(nil)
		}

	case opScroll:
		s.doc.SetScroll(domain.ScrollWindow, st.X, st.Y)

	case opWait:
		r.TimersFired = s.clock.Advance(st.Wait)
	}

	r.ElapsedMS = s.clock.Elapsed().Milliseconds()
	r.Tooltips = s.snapshot()
	return r, nil
}

func (s *simulator) snapshot() []TooltipResult {
	tips := s.tooltips.List()
	out := make([]TooltipResult, 0, len(tips))

	for _, tip := range tips {
		tr := TooltipResult{ElementID: tip.Config().ElementID, State: tip.State().String()}
		if id, ok := tip.AnnotationID(); ok {
			if a, ok := s.doc.Annotation(id); ok {
				p := a.Position()
				tr.Annotation = &AnnotationResult{
					ID: a.ID(), Class: a.Class(), Content: a.Content(), X: p.X, Y: p.Y,
				}
			}
		}
		out = append(out, tr)
	}
	return out
}

func outputSimulationJSON(cmd *cobra.Command, result SimulationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// outputSimulationText prints one line per step listing the tooltips
// that are not hidden.
func outputSimulationText(cmd *cobra.Command, result SimulationResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "page: %s\n", result.Page)

	for _, r := range result.Steps {
		var shown []string
		for _, t := range r.Tooltips {
			if t.State == domain.StateHidden.String() {
				continue
			}
			desc := t.ElementID + " " + t.State
			if t.Annotation != nil {
				desc += fmt.Sprintf(" at (%d,%d)", t.Annotation.X, t.Annotation.Y)
			}
			shown = append(shown, desc)
		}

		summary := "no tooltips shown"
		if len(shown) > 0 {
			summary = strings.Join(shown, ", ")
		}

		var notes []string
		if r.TimersFired > 0 {
			notes = append(notes, fmt.Sprintf("%d timer(s) fired", r.TimersFired))
		}
		if r.DefaultPrevented {
			notes = append(notes, "default prevented")
		}
		if len(notes) > 0 {
			summary += " [" + strings.Join(notes, ", ") + "]"
		}

		fmt.Fprintf(out, "%6dms  %-22s %s\n", r.ElapsedMS, r.Step, summary)
	}

	return nil
}

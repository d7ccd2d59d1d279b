package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
	"github.com/custodia-labs/hovertip/internal/logger"
)

const (
	// headerRows is the number of screen rows above the page.
	headerRows = 1

	// statusRows is the number of screen rows below the page.
	statusRows = 1

	// wheelStep is the number of rows scrolled per wheel notch.
	wheelStep = 3

	// markdownWidth is the wrap width of rendered markdown content.
	markdownWidth = 40
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides the page, its tooltips and the timer queue.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// status is the bottom status bar.
	status *status.Bar

	// viewport scrolls the rendered page.
	viewport viewport.Model

	// markdown renders tooltip content when enabled.
	markdown *glamour.TermRenderer

	// watcher reports page file changes while running.
	watcher *pageWatcher

	// doc and tooltips are replaced on reload.
	doc      *dom.Document
	tooltips driving.TooltipRegistry

	// hovered is the id of the element under the pointer.
	hovered string

	// showHelp replaces the page with the help view.
	showHelp bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:    ports,
		styles:   s,
		keymap:   km,
		status:   status.NewBar(s, km),
		viewport: viewport.New(80, 22),
		doc:      ports.Document,
		tooltips: ports.Tooltips,
	}

	if ports.Markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(markdownWidth),
		)
		if err != nil {
			return nil, fmt.Errorf("creating markdown renderer: %w", err)
		}
		a.markdown = r
	}

	a.refresh()
	a.syncScroll()
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{waitTimer(a.ports.Timers)}
	if a.watcher != nil {
		cmds = append(cmds, watchCmd(a.watcher))
	}
	return tea.Batch(cmds...)
}

// waitTimer delivers the next scheduled callback as a message.
func waitTimer(ch <-chan func()) tea.Cmd {
	return func() tea.Msg {
		fn, ok := <-ch
		if !ok {
			return nil
		}
		return messages.TimerFired{Fn: fn}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case messages.TimerFired:
		if msg.Fn != nil {
			msg.Fn()
		}
		a.afterInteraction()
		return a, waitTimer(a.ports.Timers)

	case messages.PageChanged:
		a.reload()
		if a.watcher == nil {
			return a, nil
		}
		return a, watchCmd(a.watcher)

	case messages.WatchStopped:
		logger.Warn("page watch stopped: %v", msg.Err)
		a.status.SetMessage("page watch stopped")
		return a, nil

	case messages.LinkFollowed:
		logger.Info("element %s: followed link %s", msg.ElementID, msg.Href)
		a.status.SetMessage("followed link " + msg.Href)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return a, nil
	}

	return a, nil
}

// handleKey processes key presses.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(keyStr, a.keymap.Help):
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.status.SetState(status.StateHelp)
		} else {
			a.status.SetState(status.StateReady)
		}
	case a.showHelp:
		// Page keys are inactive behind the help view.
	case keymap.Matches(keyStr, a.keymap.Up):
		a.scrollBy(-1)
	case keymap.Matches(keyStr, a.keymap.Down):
		a.scrollBy(1)
	case keymap.Matches(keyStr, a.keymap.PageUp):
		a.scrollBy(-a.viewport.Height)
	case keymap.Matches(keyStr, a.keymap.PageDown):
		a.scrollBy(a.viewport.Height)
	case keymap.Matches(keyStr, a.keymap.Reload):
		a.reload()
	}

	return a, nil
}

// handleMouse turns terminal mouse input into host events. Motion over a
// new element is a leave on the old one followed by an enter; motion
// within an element is a move.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.showHelp {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.scrollBy(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		a.scrollBy(wheelStep)
	case msg.Action == tea.MouseActionMotion:
		a.pointerMoved(a.clientPoint(msg))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return a.pointerClicked(a.clientPoint(msg))
	}
	return nil
}

func (a *App) pointerMoved(client domain.Point) {
	target := ""
	if el, ok := a.elementAt(client); ok {
		target = el.ID()
	}

	switch {
	case target != a.hovered:
		if a.hovered != "" {
			a.dispatch(a.hovered, domain.EventLeave, client)
		}
		a.hovered = target
		if target != "" {
			a.dispatch(target, domain.EventEnter, client)
		}
	case target != "":
		a.dispatch(target, domain.EventMove, client)
	}

	a.afterInteraction()
}

func (a *App) pointerClicked(client domain.Point) tea.Cmd {
	el, ok := a.elementAt(client)
	if !ok {
		return nil
	}

	ev := a.dispatch(el.ID(), domain.EventClick, client)
	a.afterInteraction()

	if ev.DefaultPrevented || el.Link() == "" {
		return nil
	}
	followed := messages.LinkFollowed{ElementID: el.ID(), Href: el.Link()}
	return func() tea.Msg { return followed }
}

// clientPoint converts a screen position to page viewport coordinates.
func (a *App) clientPoint(msg tea.MouseMsg) domain.Point {
	return domain.Point{X: msg.X, Y: msg.Y - headerRows}
}

// elementAt hit tests a viewport position against the scrolled page.
func (a *App) elementAt(client domain.Point) (*dom.Element, bool) {
	if client.X < 0 || client.Y < 0 || client.Y >= a.viewport.Height {
		return nil, false
	}
	scroll := domain.ResolveScroll(a.doc.ScrollReadings()...)
	return a.doc.HitTest(client.Add(scroll))
}

func (a *App) dispatch(id string, kind domain.EventKind, client domain.Point) *dom.Event {
	ev := dom.NewEvent(client.X, client.Y)
	if err := a.doc.Dispatch(id, kind, ev); err != nil {
		logger.Debug("dispatch %s to %s: %v", kind, id, err)
	}
	return ev
}

// afterInteraction refreshes the page and the status bar target.
func (a *App) afterInteraction() {
	if a.hovered == "" {
		a.status.SetTarget("", domain.StateHidden)
	} else {
		state := domain.StateHidden
		if tip, ok := a.tooltips.Get(a.hovered); ok {
			state = tip.State()
		}
		a.status.SetTarget(a.hovered, state)
	}
	a.refresh()
}

func (a *App) scrollBy(rows int) {
	a.viewport.SetYOffset(a.viewport.YOffset + rows)
	a.syncScroll()
}

// syncScroll publishes the viewport offset as the window scroll reading.
func (a *App) syncScroll() {
	a.doc.SetScroll(domain.ScrollWindow, 0, a.viewport.YOffset)
}

// reload replaces the page through the Reload port. The current page is
// kept when reloading fails.
func (a *App) reload() {
	if a.ports.Reload == nil {
		return
	}

	doc, tooltips, err := a.ports.Reload()
	if err != nil {
		logger.Warn("page reload failed: %v", err)
		a.err = err
		a.status.SetState(status.StateError)
		a.status.SetMessage(err.Error())
		return
	}

	a.doc = doc
	a.tooltips = tooltips
	a.hovered = ""
	a.err = nil
	a.status.Clear()
	a.status.SetMessage("page reloaded")
	a.refresh()
	a.syncScroll()

	logger.Info("page reloaded: %d elements, %d tooltips", len(doc.Elements()), len(tooltips.List()))
}

// refresh re-renders the page into the viewport.
func (a *App) refresh() {
	a.viewport.SetContent(strings.Join(a.renderPage(), "\n"))
}

// renderPage draws the elements and then every visible annotation at
// its page position.
func (a *App) renderPage() []string {
	lines := make([]string, a.doc.Height())

	for _, el := range a.doc.Elements() {
		style := a.styles.Normal
		if el.Link() != "" {
			style = a.styles.Link
		}
		if el.ID() == a.hovered {
			style = a.styles.Hover
		}
		b := el.Bounds()
		lines = overlayBlock(lines, style.Render(el.Text()), b.X, b.Y)
	}

	for _, ann := range a.doc.Attached() {
		if !ann.Visible() {
			continue
		}
		box := a.styles.ForClass(ann.Class()).Render(a.renderContent(ann.Content()))
		p := ann.Position()
		lines = overlayBlock(lines, box, p.X, p.Y)
	}

	return lines
}

func (a *App) renderContent(content string) string {
	if a.markdown == nil {
		return content
	}
	out, err := a.markdown.Render(content)
	if err != nil {
		logger.Warn("rendering markdown: %v", err)
		return content
	}
	return strings.Trim(out, "\n")
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.showHelp {
		return a.viewHelp()
	}

	title := a.doc.Title()
	if title == "" {
		title = "hovertip"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render(title),
		a.viewport.View(),
		a.status.View(),
	)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\nKeys:\n")
	for _, col := range a.keymap.FullHelp() {
		for _, k := range col {
			h := k.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\nPointer:\n")
	b.WriteString("  hover        show the element tooltip\n")
	b.WriteString("  click        pin or unpin, or follow a link\n")
	b.WriteString("  wheel        scroll the page\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[?] back to page"))

	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	if a.ports.WatchPath != "" {
		w, err := newPageWatcher(a.ports.WatchPath)
		if err != nil {
			logger.Warn("page reload on save disabled: %v", err)
		} else {
			a.watcher = w
			defer w.Close()
		}
	}

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// Document returns the page currently shown.
func (a *App) Document() *dom.Document {
	return a.doc
}

// Tooltips returns the tooltips of the page currently shown.
func (a *App) Tooltips() driving.TooltipRegistry {
	return a.tooltips
}

// Hovered returns the id of the element under the pointer.
func (a *App) Hovered() string {
	return a.hovered
}

// ScrollOffset returns the number of page rows scrolled off the top.
func (a *App) ScrollOffset() int {
	return a.viewport.YOffset
}

// ShowingHelp reports whether the help view is active.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.viewport.Width = width
	a.viewport.Height = max(1, height-headerRows-statusRows)
	a.status.SetWidth(width)

	a.refresh()
	a.syncScroll()
}

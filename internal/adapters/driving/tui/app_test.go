package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
	"github.com/custodia-labs/hovertip/internal/core/services"
)

// newTestPage lays out three elements on rows 0, 2 and 4.
// On screen they sit one row lower, below the header.
func newTestPage(t *testing.T) *dom.Document {
	t.Helper()

	doc := dom.NewDocument("demo")
	_, err := doc.Append("text1", "some text", "")
	require.NoError(t, err)
	_, err = doc.Append("anchor1", "a link", "/next")
	require.NoError(t, err)
	_, err = doc.Append("p1", "paragraph", "")
	require.NoError(t, err)
	return doc
}

func newTestApp(t *testing.T, sched driven.Scheduler, opts ...domain.Options) *App {
	t.Helper()

	doc := newTestPage(t)
	reg := services.NewRegistry(doc, sched)
	for _, o := range opts {
		_, err := reg.Attach(o)
		require.NoError(t, err)
	}

	app, err := NewApp(&Ports{Document: doc, Tooltips: reg, Timers: make(chan func())})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tooltip(t *testing.T, app *App, id string) driving.Tooltip {
	t.Helper()
	tip, ok := app.Tooltips().Get(id)
	require.True(t, ok)
	return tip
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingDocument)
	assert.Nil(t, app)
}

func TestNewApp_Markdown(t *testing.T) {
	doc := newTestPage(t)
	app, err := NewApp(&Ports{
		Document: doc,
		Tooltips: services.NewRegistry(doc, nil),
		Timers:   make(chan func()),
		Markdown: true,
	})

	require.NoError(t, err)
	assert.Contains(t, app.renderContent("**bold**"), "bold")
	assert.NotContains(t, app.renderContent("**bold**"), "**")
}

func TestApp_View_BeforeReady(t *testing.T) {
	doc := newTestPage(t)
	app, err := NewApp(&Ports{Document: doc, Tooltips: services.NewRegistry(doc, nil), Timers: make(chan func())})
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t, nil)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.Status().Width())
	assert.Equal(t, 28, app.viewport.Height)
}

func TestApp_View_RendersPage(t *testing.T) {
	app := newTestApp(t, nil)

	view := app.View()

	assert.Contains(t, view, "demo")
	assert.Contains(t, view, "some text")
	assert.Contains(t, view, "a link")
	assert.Contains(t, view, "Ready")
}

func TestHover_ShowsAnnotation(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1", Content: domain.String("hello")})

	app.Update(motion(2, 1))

	assert.Equal(t, "text1", app.Hovered())
	attached := app.Document().Attached()
	require.Len(t, attached, 1)
	assert.True(t, attached[0].Visible())
	assert.Equal(t, domain.Point{X: 18, Y: 16}, attached[0].Position())
	assert.Equal(t, "tooltip", attached[0].Class())
	assert.Contains(t, app.View(), "hello")
	assert.Contains(t, app.View(), "#text1 visible")
}

func TestHover_LeaveDetaches(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1"})

	app.Update(motion(2, 1))
	app.Update(motion(50, 1))

	assert.Equal(t, "", app.Hovered())
	assert.Empty(t, app.Document().Attached())
	assert.NotContains(t, app.View(), domain.DefaultContent)
}

func TestHover_CrossingElements(t *testing.T) {
	app := newTestApp(t, nil,
		domain.Options{ElementID: "text1", Content: domain.String("first")},
		domain.Options{ElementID: "p1", Content: domain.String("third")},
	)

	app.Update(motion(1, 1))
	app.Update(motion(1, 5))

	assert.Equal(t, domain.StateHidden, tooltip(t, app, "text1").State())
	assert.Equal(t, domain.StateVisible, tooltip(t, app, "p1").State())
	attached := app.Document().Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, "third", attached[0].Content())
}

func TestHover_MoveFollowsWhenEnabled(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1", EnableMove: domain.Bool(true)})

	app.Update(motion(2, 1))
	app.Update(motion(4, 1))

	require.Len(t, app.Document().Attached(), 1)
	assert.Equal(t, domain.Point{X: 20, Y: 16}, app.Document().Attached()[0].Position())
}

func TestHover_MoveIgnoredWhenDisabled(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1", EnableMove: domain.Bool(false)})

	app.Update(motion(2, 1))
	app.Update(motion(4, 1))

	require.Len(t, app.Document().Attached(), 1)
	assert.Equal(t, domain.Point{X: 18, Y: 16}, app.Document().Attached()[0].Position())
}

func TestHover_OutsidePageIgnored(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1"})

	app.Update(motion(2, 0))
	app.Update(motion(2, 23))

	assert.Equal(t, "", app.Hovered())
	assert.Empty(t, app.Document().Attached())
}

func TestClick_PinsAndSurvivesLeave(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1"})

	app.Update(motion(2, 1))
	_, cmd := app.Update(leftClick(2, 1))
	app.Update(motion(50, 1))

	assert.Nil(t, cmd)
	assert.Equal(t, domain.StatePinned, tooltip(t, app, "text1").State())
	assert.Len(t, app.Document().Attached(), 1)
}

func TestClick_WithoutLockDoesNotPin(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "text1", EnableLock: domain.Bool(false)})

	app.Update(motion(2, 1))
	app.Update(leftClick(2, 1))
	app.Update(motion(50, 1))

	assert.Equal(t, domain.StateHidden, tooltip(t, app, "text1").State())
}

func TestClick_FollowsLink(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(leftClick(1, 3))
	require.NotNil(t, cmd)

	msg := cmd()
	followed, ok := msg.(messages.LinkFollowed)
	require.True(t, ok)
	assert.Equal(t, "anchor1", followed.ElementID)
	assert.Equal(t, "/next", followed.Href)

	app.Update(msg)
	assert.Equal(t, "followed link /next", app.Status().Message())
}

func TestClick_LockSuppressesLink(t *testing.T) {
	app := newTestApp(t, nil, domain.Options{ElementID: "anchor1", EnableLock: domain.Bool(true)})

	app.Update(motion(1, 3))
	_, cmd := app.Update(leftClick(1, 3))

	assert.Nil(t, cmd)
	assert.True(t, tooltip(t, app, "anchor1").Pinned())
}

func TestClick_OnEmptySpace(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(leftClick(40, 2))

	assert.Nil(t, cmd)
}

func TestScroll_WheelUpdatesWindowReading(t *testing.T) {
	doc := dom.NewDocument("long")
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		_, err := doc.Append(id, "row "+id, "")
		require.NoError(t, err)
	}
	reg := services.NewRegistry(doc, nil)
	_, err := reg.Attach(domain.Options{ElementID: "c"})
	require.NoError(t, err)

	app, err := NewApp(&Ports{Document: doc, Tooltips: reg, Timers: make(chan func())})
	require.NoError(t, err)
	app.SetDimensions(40, 6)

	app.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 3, app.ScrollOffset())
	assert.Equal(t, domain.Point{Y: 3}, domain.ResolveScroll(doc.ScrollReadings()...))

	// Element c is on page row 4, now screen row 2 under the header.
	app.Update(motion(1, 2))
	assert.Equal(t, "c", app.Hovered())
	require.Len(t, doc.Attached(), 1)
	assert.Equal(t, domain.Point{X: 17, Y: 20}, doc.Attached()[0].Position())

	app.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, app.ScrollOffset())
}

func TestKeys_ScrollAndHelp(t *testing.T) {
	app := newTestApp(t, nil)
	app.SetDimensions(40, 4)

	app.Update(keyRunes("j"))
	assert.Equal(t, 1, app.ScrollOffset())
	app.Update(keyRunes("k"))
	assert.Equal(t, 0, app.ScrollOffset())

	app.Update(keyRunes("?"))
	assert.True(t, app.ShowingHelp())
	assert.Equal(t, status.StateHelp, app.Status().State())
	assert.Contains(t, app.View(), "reload")

	app.Update(keyRunes("j"))
	assert.Equal(t, 0, app.ScrollOffset(), "page keys are inactive behind help")

	app.Update(keyRunes("?"))
	assert.False(t, app.ShowingHelp())
}

func TestKeys_Quit(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTimerFired_RunsCallbackAndRearms(t *testing.T) {
	app := newTestApp(t, nil)

	called := false
	_, cmd := app.Update(messages.TimerFired{Fn: func() { called = true }})

	assert.True(t, called)
	assert.NotNil(t, cmd)
}

func TestAutoDismiss_ThroughTimerChannel(t *testing.T) {
	fake := clockwork.NewFakeClock()
	queue := make(chan func(), 1)
	sched := timer.NewClock(fake, timer.Channel(queue))

	doc := newTestPage(t)
	reg := services.NewRegistry(doc, sched)
	_, err := reg.Attach(domain.Options{ElementID: "text1", FadeOut: domain.Millis(100)})
	require.NoError(t, err)

	app, err := NewApp(&Ports{Document: doc, Tooltips: reg, Timers: queue})
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	app.Update(motion(2, 1))
	require.Len(t, doc.Attached(), 1)

	require.NoError(t, fake.BlockUntilContext(t.Context(), 1))
	fake.Advance(100 * time.Millisecond)

	done := make(chan tea.Msg, 1)
	go func() { done <- waitTimer(queue)() }()

	select {
	case msg := <-done:
		app.Update(msg)
	case <-time.After(time.Second):
		t.Fatal("timer callback was not delivered")
	}

	assert.Empty(t, doc.Attached())
	assert.Equal(t, domain.StateHidden, tooltip(t, app, "text1").State())
}

func TestReload_ReplacesPage(t *testing.T) {
	doc := newTestPage(t)
	reg := services.NewRegistry(doc, nil)

	next := dom.NewDocument("second")
	_, err := next.Append("fresh", "fresh element", "")
	require.NoError(t, err)
	nextReg := services.NewRegistry(next, nil)

	app, err := NewApp(&Ports{
		Document: doc,
		Tooltips: reg,
		Timers:   make(chan func()),
		Reload: func() (*dom.Document, driving.TooltipRegistry, error) {
			return next, nextReg, nil
		},
	})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	app.Update(motion(1, 1))

	app.Update(keyRunes("r"))

	assert.Same(t, next, app.Document())
	assert.Equal(t, "", app.Hovered())
	assert.Equal(t, "page reloaded", app.Status().Message())
	assert.Contains(t, app.View(), "fresh element")
}

func TestReload_FailureKeepsPage(t *testing.T) {
	doc := newTestPage(t)
	boom := errors.New("bad toml")

	app, err := NewApp(&Ports{
		Document: doc,
		Tooltips: services.NewRegistry(doc, nil),
		Timers:   make(chan func()),
		Reload: func() (*dom.Document, driving.TooltipRegistry, error) {
			return nil, nil, boom
		},
	})
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	app.Update(messages.PageChanged{})

	assert.Same(t, doc, app.Document())
	assert.ErrorIs(t, app.Err(), boom)
	assert.Equal(t, status.StateError, app.Status().State())
}

func TestErrorOccurred(t *testing.T) {
	app := newTestApp(t, nil)

	app.Update(messages.ErrorOccurred{Err: errors.New("broken")})

	assert.EqualError(t, app.Err(), "broken")
	assert.Contains(t, app.View(), "Error: broken")
}

func TestPageWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"a\"\n"), 0o600))

	w, err := newPageWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	done := make(chan tea.Msg, 1)
	go func() { done <- watchCmd(w)() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("title = \"b\"\n"), 0o600))

	select {
	case msg := <-done:
		assert.IsType(t, messages.PageChanged{}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestPageWatcher_MissingDirectory(t *testing.T) {
	_, err := newPageWatcher(filepath.Join(t.TempDir(), "missing", "page.toml"))

	assert.Error(t, err)
}

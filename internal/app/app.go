package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/screen"
	"github.com/mbhatt/taxtutor/internal/screens/home"
	"github.com/mbhatt/taxtutor/internal/screens/welcome"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/mbhatt/taxtutor/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI. Engine is
// required; the LLM-backed collaborators and the event repo may be nil,
// in which case the affected screens degrade to placeholders.
type Options struct {
	Engine    *session.Engine
	Generator scenario.Generator
	Evaluator evaluate.Evaluator
	Refs      refs.Lookup
	ExamGen   mockexam.Generator
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *session.Engine
	width  int
	height int
}

// newAppModel creates the model showing the welcome animation, which
// hands over to the home dashboard.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.Generator, opts.Evaluator, opts.Refs, opts.ExamGen, opts.EventRepo)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens: some must hold the user while an
		// LLM call is in flight.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	passed, total := 0, 0
	if m.engine != nil {
		tracker := m.engine.Tracker()
		passed, total = tracker.PassedCount(), tracker.Len()
	}
	header := layout.RenderHeader(title, passed, total, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, with depth-based
// defaults for screens that provide none.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/sani"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the pager. The content is a fully
// rendered document, produced once before the program starts; the pager
// only scrolls it.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	title   string
	content string
	styles  Styles
	ready   bool
}

// New creates a pager Model for the given rendered content. The title is
// shown in the status line, typically the input file name.
func New(title, content string, theme sani.Theme) Model {
	return Model{
		title:   title,
		content: content,
		styles:  NewStyles(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	// Viewport handles everything else (scroll keys, mouse wheel).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.content)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m
}

func (m Model) statusLine() string {
	position := m.styles.Accent.Render(fmt.Sprintf("%3.0f%%", m.Viewport.ScrollPercent()*100))
	help := m.styles.Muted.Render(m.title + " (q to quit)")
	return help + " " + position
}

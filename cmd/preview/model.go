package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/editor"
)

// Terminal cells are not square; approximate a cell as 8x16 px so the
// description's pixel geometry maps onto the grid.
const (
	cellW = 8
	cellH = 16
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type keyMap struct {
	Reload key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	ed      *editor.Editor
	uiName  string
	loadErr error
	cols    int
	rows    int
}

func newModel(ed *editor.Editor, uiName string) *model {
	return &model{ed: ed, uiName: uiName}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 2 // status + help lines
		if m.rows < 1 {
			m.rows = 1
		}
		// Terminal resize plays host resize: bounds first, then layout.
		m.ed.SetBounds(uiloader.Rect{W: m.cols * cellW, H: m.rows * cellH})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reload):
			m.loadErr = m.ed.Loader().LoadUI(m.uiName)
			if m.loadErr == nil {
				m.ed.Resized()
			}
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.cols == 0 {
		return "measuring terminal..."
	}

	surf := newCellSurface(m.cols, m.rows)
	m.ed.Paint(surf)
	m.ed.Container().Paint(surf)

	status := statusStyle.Render(fmt.Sprintf(" %s  %dx%d px ",
		m.uiName, m.ed.Bounds().W, m.ed.Bounds().H))
	if m.loadErr != nil {
		status += " " + errStyle.Render(m.loadErr.Error())
	}
	help := helpStyle.Render(fmt.Sprintf("%s  •  %s",
		keys.Reload.Help().Key+" "+keys.Reload.Help().Desc,
		keys.Quit.Help().Key+" "+keys.Quit.Help().Desc))

	return surf.render() + "\n" + status + "\n" + help
}

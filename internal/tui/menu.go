package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type MenuModel struct {
	items  []string
	pages  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Register"},
		pages: []string{pageLogin, pageRegister},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		if msg.StudentID != "" {
			m.status = "Student " + msg.StudentID + " registered, you can log in now"
		} else {
			m.status = "Student account created!"
		}
		return m, nil
	case LoggedOut:
		m.status = "Logged out"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Scan in when you arrive late.\n\n")
	for i, item := range m.items {
		line := fmt.Sprintf("  %d. %s", i+1, item)
		if i == m.idx {
			line = selectedStyle.Render(fmt.Sprintf("> %d. %s", i+1, item))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	writeFeedback(&b, m.status, "")

	return renderPage("LATENESS KIOSK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

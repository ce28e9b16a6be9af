package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// ScanModel is the scanning station screen of a logged-in student. It
// records one lateness event per submission and stays on the screen so the
// next scan can follow.
type ScanModel struct {
	ctx   context.Context
	kiosk service.KioskService

	student    models.StudentView
	form       form
	submitting bool
	status     string
	errMsg     string
}

func NewScanModel(ctx context.Context, kiosk service.KioskService) *ScanModel {
	return &ScanModel{
		ctx:   ctx,
		kiosk: kiosk,
		form: newForm(
			[]string{"Reason", "Minutes late"},
			[]textinput.Model{
				newInput("missed the bus", 256, false),
				newInput("0", 4, false),
			},
		),
	}
}

func (m *ScanModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoggedIn:
		m.student = msg.Student
		m.status = ""
		m.errMsg = ""
		m.form.reset()
		return m, textinput.Blink
	case scanDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgAttendanceRecorded
		m.form.reset()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return LogoutRequested{} }
		case key.Matches(msg, keys.history):
			return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *ScanModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	minutes, err := parseMinutes(m.form.value(1))
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.status = ""
	m.submitting = true
	return m, m.cmdScan(m.form.value(0), minutes)
}

func (m *ScanModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s (%s)", valueOrNA(m.student.Name), valueOrNA(m.student.StudentID))
	if m.student.Class != "" {
		fmt.Fprintf(&b, " │ class %s", m.student.Class)
	}
	b.WriteString("\n\n")

	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Recording...]\n")
	} else {
		b.WriteString("\n[Record lateness]\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("SCAN", strings.TrimRight(b.String(), "\n"), "enter: record │ tab: next field │ ctrl+r: history │ esc: log out")
}

func (m *ScanModel) cmdScan(reason string, minutes int) tea.Cmd {
	ctx := m.ctx
	kiosk := m.kiosk

	return func() tea.Msg {
		return scanDoneMsg{err: kiosk.RecordLateness(ctx, reason, minutes)}
	}
}

// parseMinutes reads the minutes field. Empty means on time.
func parseMinutes(v string) (int, error) {
	if v == "" {
		return 0, nil
	}

	minutes, err := strconv.Atoi(v)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("minutes late must be a whole number, got %q", v)
	}
	return minutes, nil
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

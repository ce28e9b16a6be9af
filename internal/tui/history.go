package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	historyTimeLayout  = "2006-01-02 15:04"
	historyReasonWidth = 40
)

// writeClipboard is swapped in tests, where no clipboard is available.
var writeClipboard = clipboard.WriteAll

// HistoryModel lists the lateness records of the logged-in student, newest
// first, as returned by the server.
type HistoryModel struct {
	ctx   context.Context
	kiosk service.KioskService

	records []models.LatenessRecord
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewHistoryModel(ctx context.Context, kiosk service.KioskService) *HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &HistoryModel{
		ctx:     ctx,
		kiosk:   kiosk,
		spinner: s,
	}
}

// Init reloads the history every time the page is opened.
func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		m.idx = min(m.idx, max(len(m.records)-1, 0))
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %d record(s)", msg.rows)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *HistoryModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageScan} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		return m, m.Init()
	case key.Matches(msg, keys.copy):
		record, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard([]models.LatenessRecord{record})
	case key.Matches(msg, keys.copyAll):
		if len(m.records) == 0 {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.records)
	}

	return m, nil
}

func (m *HistoryModel) current() (models.LatenessRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.LatenessRecord{}, false
	}
	return m.records[m.idx], true
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.records) == 0 && m.errMsg == "":
		b.WriteString("No lateness recorded\n")
	default:
		fmt.Fprintf(&b, "  %-16s │ %7s │ %s\n", "Arrival", "Minutes", "Reason")
		b.WriteString("  " + strings.Repeat("─", 17) + "┼" + strings.Repeat("─", 9) + "┼" + strings.Repeat("─", historyReasonWidth) + "\n")
		for i, r := range m.records {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-16s │ %7d │ %s\n",
				cursor, r.ArrivalTime.Local().Format(historyTimeLayout), r.MinutesLate, fitText(r.Reason, historyReasonWidth))
		}
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ c: copy │ a: copy all │ r: refresh │ esc: back")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	kiosk := m.kiosk

	return func() tea.Msg {
		records, err := kiosk.History(ctx)
		return historyLoadedMsg{records: records, err: err}
	}
}

func cmdCopyToClipboard(records []models.LatenessRecord) tea.Cmd {
	text := formatRecords(records)
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{rows: len(records)}
	}
}

// formatRecords renders records as tab-separated lines so they paste into a
// spreadsheet.
func formatRecords(records []models.LatenessRecord) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%s\t%s\t%d\t%s\n",
			r.StudentID, r.ArrivalTime.UTC().Format(time.RFC3339), r.MinutesLate, r.Reason)
	}
	return b.String()
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/mock"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// exec runs cmd and returns its message. Batches are flattened and the first
// non-nil message that is not a blink or spinner tick is returned.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := exec(t, c); m != nil {
				return m
			}
		}
		return nil
	}
	if isAnimation(msg) {
		return nil
	}
	return msg
}

// isAnimation reports cursor blink and spinner ticks.
func isAnimation(msg tea.Msg) bool {
	name := strings.ToLower(fmt.Sprintf("%T", msg))
	return strings.Contains(name, "blink") || strings.Contains(name, "tickmsg")
}

// stubClipboard replaces the system clipboard for the duration of the test.
func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func newTestRoot(t *testing.T) (RootModel, *mock.MockKioskService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	kiosk := mock.NewMockKioskService(ctrl)

	ui, err := New(kiosk, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	return ui.newRoot(context.Background()), kiosk
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── TUI ─────────────────────────────────────────────────────────────────────

func TestNew_RequiresKiosk(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoKioskService)
}

// ── RootModel ───────────────────────────────────────────────────────────────

// TestRoot_StartsOnMenu verifies the start page and the version fetch.
func TestRoot_StartsOnMenu(t *testing.T) {
	root, kiosk := newTestRoot(t)
	kiosk.EXPECT().ServerVersion(gomock.Any()).Return("2.3.4", nil)

	assert.True(t, root.isMenuPage())

	msg := exec(t, root.Init())
	require.Equal(t, serverVersionMsg{version: "2.3.4"}, msg)

	root, _ = update(t, root, msg)
	root, _ = update(t, root, runeKey('v'))
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "2.3.4")
	assert.Contains(t, root.View(), "abc123")

	root, _ = update(t, root, keyEsc)
	assert.False(t, root.showBuildInfo)
}

// TestRoot_CtrlCQuits verifies the global quit key.
func TestRoot_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t)

	root, cmd := update(t, root, keyCtrlC)

	assert.True(t, root.quitByUser)
	assert.Equal(t, tea.Quit(), exec(t, cmd))
}

// TestRoot_NavigateUnknownPage verifies unknown pages are ignored.
func TestRoot_NavigateUnknownPage(t *testing.T) {
	root, _ := newTestRoot(t)

	root, cmd := update(t, root, NavigateTo{Page: "nope"})

	assert.Nil(t, cmd)
	assert.True(t, root.isMenuPage())
}

// TestRoot_LoginFlow drives menu → login → scan → history → logout.
func TestRoot_LoginFlow(t *testing.T) {
	root, kiosk := newTestRoot(t)
	student := models.StudentView{StudentID: "S1", Name: "Ann", Class: "1A"}

	// menu: enter on the first item opens login
	root, cmd := update(t, root, keyEnter)
	root, _ = update(t, root, exec(t, cmd))
	login, ok := root.current.(*LoginModel)
	require.True(t, ok)

	login.form.inputs[0].SetValue("a@x.com")
	login.form.inputs[1].SetValue("pw123")
	kiosk.EXPECT().Login(gomock.Any(), "a@x.com", "pw123").Return(student, nil)

	root, cmd = update(t, root, keyEnter)
	result := exec(t, cmd)
	require.Equal(t, LoginResult{Student: student}, result)

	// root switches to scan and hands over the student
	root, cmd = update(t, root, result)
	scan, ok := root.current.(*ScanModel)
	require.True(t, ok)
	root, _ = update(t, root, exec(t, cmd))
	assert.Equal(t, student, scan.student)
	assert.Contains(t, root.View(), "Ann (S1)")
	assert.Empty(t, login.form.rawValue(1), "login form keeps no password after success")

	// ctrl+r opens history, which loads on open
	kiosk.EXPECT().History(gomock.Any()).Return([]models.LatenessRecord{{ID: 1, StudentID: "S1", Reason: "bus", MinutesLate: 5}}, nil)
	root, cmd = update(t, root, keyCtrlR)
	root, cmd = update(t, root, exec(t, cmd))
	_, ok = root.current.(*HistoryModel)
	require.True(t, ok)
	root, _ = update(t, root, exec(t, cmd))
	assert.Contains(t, root.View(), "bus")

	// esc back to scan, esc again logs out
	root, cmd = update(t, root, keyEsc)
	root, _ = update(t, root, exec(t, cmd))
	_, ok = root.current.(*ScanModel)
	require.True(t, ok)

	kiosk.EXPECT().Logout()
	root, cmd = update(t, root, keyEsc)
	root, cmd = update(t, root, exec(t, cmd))
	require.True(t, root.isMenuPage())
	root, _ = update(t, root, exec(t, cmd))
	assert.Contains(t, root.View(), "Logged out")
}

// TestRoot_LoginFailure verifies a refused login stays on the login page and
// shows the server message.
func TestRoot_LoginFailure(t *testing.T) {
	root, _ := newTestRoot(t)
	root, _ = root.navigate(NavigateTo{Page: pageLogin})

	root, cmd := update(t, root, LoginResult{Err: service.ErrWrongPassword})

	assert.Nil(t, exec(t, cmd))
	_, ok := root.current.(*LoginModel)
	require.True(t, ok)
	assert.Contains(t, root.View(), "Wrong password")
}

// ── LoginModel ──────────────────────────────────────────────────────────────

func TestLogin_RequiresFields(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLogin_TabMovesFocus(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(keyTab)
	assert.Equal(t, 1, m.form.focus)
	m.Update(keyTab)
	assert.Equal(t, 0, m.form.focus)
}

func TestLogin_ErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrStudentNotFound, "User not found"},
		{errors.Join(service.ErrLoginOnServer, errors.New("dial tcp 127.0.0.1:3000: connection refused")), "Network is down or the server is unavailable"},
	}

	for _, tt := range tests {
		m := NewLoginModel(context.Background(), nil)
		m.Update(LoginResult{Err: tt.err})
		assert.Equal(t, tt.want, m.errMsg)
	}
}

// ── RegisterModel ───────────────────────────────────────────────────────────

func fillRegister(m *RegisterModel, values ...string) {
	for i, v := range values {
		m.form.inputs[i].SetValue(v)
	}
}

func TestRegister_Validation(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)

	m.Update(keyEnter)
	assert.Equal(t, "Student ID, email and password are required", m.errMsg)

	fillRegister(m, "S1", "a@x.com", "pw123", "pw124")
	m.Update(keyEnter)
	assert.Equal(t, "Passwords do not match", m.errMsg)
}

// TestRegister_Success verifies every attribute reaches the service and the
// menu is told about the new student.
func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	kiosk := mock.NewMockKioskService(ctrl)
	m := NewRegisterModel(context.Background(), kiosk)

	fillRegister(m, "S1", "a@x.com", "pw123", "pw123", "A", "1", "1", "1", "1A")
	kiosk.EXPECT().Register(gomock.Any(), models.Student{
		StudentID: "S1", Email: "a@x.com", Password: "pw123",
		Name: "A", Ship: "1", Level: "1", Grade: "1", ClassGroup: "1A",
	}).Return(nil)

	_, cmd := m.Update(keyEnter)
	result := exec(t, cmd)
	require.Equal(t, RegisterResult{StudentID: "S1"}, result)

	_, cmd = m.Update(result)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{StudentID: "S1"}}, exec(t, cmd))
	assert.Empty(t, m.form.rawValue(regPassword))
}

func TestRegister_Failure(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.submitting = true

	m.Update(RegisterResult{Err: errors.Join(service.ErrRegistrationFailed, errors.New("http 500"))})

	assert.False(t, m.submitting)
	assert.Equal(t, "Registration failed", m.errMsg)
}

// ── ScanModel ───────────────────────────────────────────────────────────────

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"15", 15, false},
		{"-3", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		got, err := parseMinutes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

// TestScan_Records verifies a scan is sent and the form is cleared.
func TestScan_Records(t *testing.T) {
	ctrl := gomock.NewController(t)
	kiosk := mock.NewMockKioskService(ctrl)
	m := NewScanModel(context.Background(), kiosk)

	m.form.inputs[0].SetValue("traffic")
	m.form.inputs[1].SetValue("7")
	kiosk.EXPECT().RecordLateness(gomock.Any(), "traffic", 7).Return(nil)

	_, cmd := m.Update(keyEnter)
	require.True(t, m.submitting)

	m.Update(exec(t, cmd))
	assert.False(t, m.submitting)
	assert.Equal(t, "Attendance recorded!", m.status)
	assert.Empty(t, m.form.value(0))

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestScan_InvalidMinutes(t *testing.T) {
	m := NewScanModel(context.Background(), nil)
	m.form.inputs[1].SetValue("soon")

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "whole number")
}

func TestScan_ServerError(t *testing.T) {
	m := NewScanModel(context.Background(), nil)
	m.submitting = true

	m.Update(scanDoneMsg{err: service.ErrNotLoggedIn})

	assert.Equal(t, "Please log in first", m.errMsg)
}

// ── HistoryModel ────────────────────────────────────────────────────────────

func sampleRecords() []models.LatenessRecord {
	return []models.LatenessRecord{
		{ID: 2, StudentID: "S1", Reason: "rain", MinutesLate: 12, ArrivalTime: time.Date(2026, 3, 2, 8, 12, 0, 0, time.UTC)},
		{ID: 1, StudentID: "S1", Reason: "bus", MinutesLate: 5, ArrivalTime: time.Date(2026, 3, 1, 8, 5, 0, 0, time.UTC)},
	}
}

func TestFormatRecords(t *testing.T) {
	got := formatRecords(sampleRecords())

	assert.Equal(t,
		"S1\t2026-03-02T08:12:00Z\t12\train\n"+
			"S1\t2026-03-01T08:05:00Z\t5\tbus\n", got)
}

// TestHistory_Copy verifies c copies the selected row and a copies all rows.
func TestHistory_Copy(t *testing.T) {
	var copied []string
	stubClipboard(t, func(text string) error {
		copied = append(copied, text)
		return nil
	})

	m := NewHistoryModel(context.Background(), nil)
	m.Update(historyLoadedMsg{records: sampleRecords()})

	m.Update(runeKey('j'))
	_, cmd := m.Update(runeKey('c'))
	m.Update(exec(t, cmd))
	assert.Equal(t, "Copied 1 record(s)", m.status)

	_, cmd = m.Update(runeKey('a'))
	m.Update(exec(t, cmd))
	assert.Equal(t, "Copied 2 record(s)", m.status)

	require.Len(t, copied, 2)
	assert.Contains(t, copied[0], "bus")
	assert.NotContains(t, copied[0], "rain")
	assert.Equal(t, formatRecords(sampleRecords()), copied[1])
}

func TestHistory_CopyFailure(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utility") })

	m := NewHistoryModel(context.Background(), nil)
	m.Update(historyLoadedMsg{records: sampleRecords()})

	_, cmd := m.Update(runeKey('c'))
	m.Update(exec(t, cmd))

	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestHistory_Empty(t *testing.T) {
	m := NewHistoryModel(context.Background(), nil)
	m.Update(historyLoadedMsg{records: []models.LatenessRecord{}})

	_, cmd := m.Update(runeKey('c'))

	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.status)
	assert.Contains(t, m.View(), "No lateness recorded")
}

func TestHistory_LoadError(t *testing.T) {
	m := NewHistoryModel(context.Background(), nil)
	m.loading = true

	m.Update(historyLoadedMsg{err: service.ErrNotLoggedIn})

	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "Please log in first")
}

// ── rendering helpers ───────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"bus", 10, "bus"},
		{"missed the bus again", 10, "missed ..."},
		{"llegué tarde", 8, "llegu..."},
		{"rain", 2, "ra"},
		{"rain", 0, "rain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.width), tt.in)
	}
}

func TestRenderPage(t *testing.T) {
	page := renderPage("SCAN", "", "enter: record")

	assert.Contains(t, page, "SCAN")
	assert.Contains(t, page, "-")
	assert.Contains(t, page, "enter: record │ ctrl+c: quit")
}

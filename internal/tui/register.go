package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regStudentID = iota
	regEmail
	regPassword
	regRepeat
	regName
	regShip
	regLevel
	regGrade
	regClass
)

// RegisterModel is the Bubble Tea model for the registration screen. On
// success it resets the form and navigates back to the menu with a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx   context.Context
	kiosk service.KioskService

	form       form
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with one input per student
// attribute plus a password confirmation.
func NewRegisterModel(ctx context.Context, kiosk service.KioskService) *RegisterModel {
	return &RegisterModel{
		ctx:   ctx,
		kiosk: kiosk,
		form: newForm(
			[]string{"Student ID", "Email", "Password", "Repeat password", "Name", "Ship", "Level", "Grade", "Class"},
			[]textinput.Model{
				newInput("S-1024", 64, false),
				newInput("student@school.edu", 254, false),
				newInput("password", 256, true),
				newInput("repeat password", 256, true),
				newInput("full name", 128, false),
				newInput("house", 64, false),
				newInput("Secondary", 64, false),
				newInput("10", 16, false),
				newInput("10B", 16, false),
			},
		),
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter requires a student id, an email and a
// matching password pair; every other attribute is optional.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{StudentID: result.StudentID},
			}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			student := m.student()
			if student.StudentID == "" || student.Email == "" || student.Password == "" {
				m.errMsg = "Student ID, email and password are required"
				return m, nil
			}
			if student.Password != m.form.rawValue(regRepeat) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(student)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) student() models.Student {
	return models.Student{
		StudentID:  m.form.value(regStudentID),
		Email:      m.form.value(regEmail),
		Password:   m.form.rawValue(regPassword),
		Name:       m.form.value(regName),
		Ship:       m.form.value(regShip),
		Level:      m.form.value(regLevel),
		Grade:      m.form.value(regGrade),
		ClassGroup: m.form.value(regClass),
	}
}

func (m *RegisterModel) cmdRegister(student models.Student) tea.Cmd {
	ctx := m.ctx
	kiosk := m.kiosk

	return func() tea.Msg {
		err := kiosk.Register(ctx, student)
		return RegisterResult{Err: err, StudentID: student.StudentID}
	}
}

package tui

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type serverVersionMsg struct {
	version string
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo, login and logout messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	kiosk service.KioskService

	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	serverVersion string

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, kiosk service.KioskService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		kiosk:     kiosk,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdServerVersion()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		r.serverVersion = msg.version
		return r, nil
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		var cmd tea.Cmd
		if r.current != nil {
			r.current, cmd = r.current.Update(msg)
		}
		if msg.Err != nil {
			return r, cmd
		}
		next, nav := r.navigate(NavigateTo{Page: pageScan, Payload: LoggedIn{Student: msg.Student}})
		return next, tea.Batch(cmd, nav)
	case LogoutRequested:
		if r.kiosk != nil {
			r.kiosk.Logout()
		}
		return r.navigate(NavigateTo{Page: pageMenu, Payload: LoggedOut{}})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("KIOSK", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

// cmdServerVersion fetches the server version once for the about window.
// Failures leave it unset.
func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.kiosk == nil {
		return nil
	}

	ctx := r.ctx
	kiosk := r.kiosk
	return func() tea.Msg {
		version, err := kiosk.ServerVersion(ctx)
		if err != nil {
			return nil
		}
		return serverVersionMsg{version: version}
	}
}

package tui

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/internal/service"
	"github.com/MKhiriev/go-access-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const menuPage = "menu"

// resettable pages clear their state every time they are opened.
type resettable interface {
	reset()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

// newRootModel builds the menu and one form page per operation.
func newRootModel(ctx context.Context, svc service.AccessService, buildInfo models.AppBuildInfo) RootModel {
	ops := operations()

	pages := make(map[string]tea.Model, len(ops)+1)
	pages[menuPage] = NewMenuModel(ops)
	for _, op := range ops {
		pages[op.page] = NewFormModel(ctx, svc, op)
	}

	return NewRootModel(pages, menuPage, buildInfo)
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.isMenuPage():
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

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		if page, ok := next.(resettable); ok {
			page.reset()
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("ACCESS KEEPER", "", ""))
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

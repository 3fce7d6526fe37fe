// Package tui implements the interactive terminal client of the access
// manager on top of Bubble Tea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/service"
	"github.com/MKhiriev/go-access-keeper/internal/utils"
	"github.com/MKhiriev/go-access-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user interrupts the program with
// ctrl+c instead of choosing Exit.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	sessions  *utils.UUIDGenerator
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AccessService == nil {
		return nil, errors.New("access service is not configured")
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		sessions:  utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

// Run shows the main menu and blocks until the user exits.
func (t *TUI) Run(ctx context.Context) error {
	ctx = newSessionContext(ctx, t.logger, t.sessions)
	logger.FromContext(ctx).Info().Msg("terminal session started")

	root := newRootModel(ctx, t.services.AccessService, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	logger.FromContext(ctx).Info().Bool("interrupted", result.quitByUser).Msg("terminal session finished")
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// Package tui implements the terminal user interface of the client: a
// login form and a status screen showing connectivity, sync state, and the
// pending operation queue.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/service"
	"github.com/kirubhel/redcross-client/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the login screen until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginModel(ctx, t.services.Auth)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the status screen until the user logs out or quits.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newStatusModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(statusModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

var ErrUserQuit = errors.New("user quit the application")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log.GetChildLogger()}, nil
}

// LoginFlow asks for the user identity. It returns [ErrUserQuit] when the
// user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	finalModel, err := tea.NewProgram(newLoginModel(t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return models.User{}, ErrUserQuit
	}

	t.logger.Debug().Str("user_id", result.user.ID).Msg("login form submitted")
	return result.user, nil
}

// MainLoop runs the planner screens for user until they quit or sign out.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	t.logger.Debug().Str("user_id", user.ID).Bool("logout", result.logout).Msg("main loop closed")
	return result.logout, nil
}

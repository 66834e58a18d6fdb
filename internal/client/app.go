package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/internal/tui"
)

type App struct {
	session service.SessionService
	ui      UI
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("client: session service is nil")
	}
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}

	return &App{session: services.Session, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		if err = a.session.Login(ctx, user); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		a.session.Logout(ctx)
		a.logger.Debug().Str("user_id", user.ID).Bool("logout", logout).Msg("main loop finished")
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}

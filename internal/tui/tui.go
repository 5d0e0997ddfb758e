package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillfade/internal/adapter"
	"github.com/MKhiriev/skillfade/internal/logger"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// LoginFlow runs the welcome/login/register screens until the user is
// authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context) (userID int64, err error) {
	model := newAuthModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(authModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return 0, ErrUserQuit
	}

	return result.resultUserID, nil
}

// MainLoop runs the skill list, forms, and report screens until the user
// quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.server, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

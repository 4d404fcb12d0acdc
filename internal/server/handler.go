package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ui"
)

// sessionModel wraps the picker to log the session lifecycle
type sessionModel struct {
	*ui.Picker
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := s.Picker.Update(msg)
	if p, ok := updatedModel.(*ui.Picker); ok {
		s.Picker = p
	}

	if s.Picker.Completed {
		duration := time.Since(s.startTime)
		if s.Picker.Result.Cancelled {
			logging.Logger.Info("SSH session ended",
				"session_id", s.sessionID,
				"duration", duration.String())
		} else {
			logging.Logger.Info("SSH session ended with theme",
				"session_id", s.sessionID,
				"theme", s.Picker.Result.Name,
				"duration", duration.String())
		}
	}

	return s, cmd
}

// teaHandler creates a picker for each SSH session. Remote sessions only
// browse themes; the selection is never written to settings.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	picker := ui.NewPicker(s.source, s.current, "chinook themes (read-only)")

	return newSessionModel(picker, sessionID), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

func newSessionModel(picker *ui.Picker, sessionID string) *sessionModel {
	return &sessionModel{
		Picker:    picker,
		sessionID: sessionID,
		startTime: time.Now(),
	}
}

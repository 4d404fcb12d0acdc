package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	// AuthorizedKeysPath defaults to ~/.ssh/authorized_keys
	AuthorizedKeysPath string
	// Current is the theme the picker starts on
	Current string
	Host    string
	Port    int
	// SSHDir holds the host key; created if missing
	SSHDir string
}

// Server serves the theme picker over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	current            string
	source             ui.ThemeSource
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(source ui.ThemeSource, opts Options) (*Server, error) {
	authorizedKeysPath := opts.AuthorizedKeysPath
	if authorizedKeysPath == "" {
		path, err := defaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		authorizedKeysPath = path
	}

	if err := os.MkdirAll(opts.SSHDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(opts.SSHDir, "id_ed25519")

	s := &Server{
		address:            net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		authorizedKeysPath: authorizedKeysPath,
		current:            opts.Current,
		source:             source,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM is received,
// then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("failed to serve SSH: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

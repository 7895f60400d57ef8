package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/classic-arcade/internal/app"
	"github.com/vovakirdan/classic-arcade/internal/config"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath is the host key file. Empty uses the XDG data dir; wish
	// generates the key on first start.
	HostKeyPath string

	// IdleTimeout closes connections without input for this long.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent connections; 0 means unlimited.
	MaxSessions int
}

// DefaultSSHServerConfig returns the defaults used by `arcade serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
	}
}

type sessionIDKey struct{}

// SSHServer serves the arcade over SSH, one session per connection.
// Sessions share the read-only app context and the score store.
type SSHServer struct {
	config   SSHServerConfig
	ctx      *app.Context
	server   *ssh.Server
	sessions *SessionRegistry
}

// NewSSHServer creates a server for ctx.
func NewSSHServer(ctx *app.Context, cfg SSHServerConfig) (*SSHServer, error) {
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		p, err := xdg.DataFile(filepath.Join(config.AppName, "host_key"))
		if err != nil {
			return nil, fmt.Errorf("tui: host key path: %w", err)
		}
		hostKeyPath = p
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: create host key dir: %w", err)
	}

	srv := &SSHServer{config: cfg, ctx: ctx, sessions: NewSessionRegistry(cfg.MaxSessions)}
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler creates the session model for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "arcade needs an interactive terminal, try ssh -t")
		return nil, nil
	}
	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	logger := s.ctx.Logger.With("session", id, "user", sess.User())

	styles := NewStyles(bubbletea.MakeRenderer(sess))
	m := NewSessionModel(s.ctx, styles, logger, pty.Window.Width, pty.Window.Height)
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware tags each connection with an ID, admits it into the
// registry and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		info := SessionInfo{
			ID:      uuid.NewString(),
			User:    sess.User(),
			Remote:  sess.RemoteAddr().String(),
			Started: time.Now(),
		}
		if !s.sessions.Register(info) {
			s.ctx.Logger.Warn("session refused, server full", "user", info.User, "remote", info.Remote,
				"limit", s.config.MaxSessions)
			wish.Fatalln(sess, "arcade is full, try again later")
			return
		}
		defer s.sessions.Unregister(info.ID)

		sess.Context().SetValue(sessionIDKey{}, info.ID)
		s.ctx.Logger.Info("session started", "session", info.ID, "user", info.User, "remote", info.Remote,
			"active", s.sessions.Count())
		next(sess)
		s.ctx.Logger.Info("session ended", "session", info.ID, "user", info.User,
			"duration", time.Since(info.Started).Round(time.Second))
	}
}

// Sessions returns the live session registry.
func (s *SSHServer) Sessions() *SessionRegistry {
	return s.sessions
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.ctx.Logger.Info("starting ssh server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	s.ctx.Logger.Info("shutting down ssh server", "active", s.sessions.Count())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to ten seconds for
// sessions to end.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

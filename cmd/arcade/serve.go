package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH",
	Long: `Start an SSH server; every connection gets its own launcher.

All sessions share one scores database and the saved settings.

Host key handling:
  - If --host-key is provided, that key file is used
  - Otherwise a key is generated in the XDG data dir on first start

Examples:
  arcade serve
  arcade serve --ssh :2222
  arcade serve --host-key ./host_key --idle-timeout 10m

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", def.IdleTimeout, "Disconnect idle sessions after this long")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", def.MaxSessions, "Concurrent session limit (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// The server is headless, so it logs to stderr.
	ctx, cleanup, err := newContext(options(), os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	server, err := tui.NewSSHServer(ctx, tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		MaxSessions: flagMaxSessions,
	})
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Arcade SSH server on %s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe(sigCtx)
}

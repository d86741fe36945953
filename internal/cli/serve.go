package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/roach88/dashview/internal/httpapi"
	"github.com/roach88/dashview/internal/store"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard session over HTTP",
		Long: `Serve one dashboard session as a JSON HTTP API.

The session starts from the usual collection source. When --db is set,
collections uploaded with PUT /records are also saved as the new snapshot.
Metrics are exposed at /metrics.

Example:
  dashview serve --addr :8080 --db ./dashview.db
  dashview serve --seed ./pharmacies.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (env DASHVIEW_ADDR, default :8080)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	logger := opts.Logger()
	out := opts.formatter(cmd)

	addr := opts.Addr
	if addr == "" {
		addr = opts.config.Addr
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sess, coll, err := opts.newSession(ctx)
	if err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "failed to load collection", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	serverOpts := []httpapi.Option{
		httpapi.WithLogger(logger),
		httpapi.WithRegistry(reg),
	}
	if coll.Owner != nil {
		serverOpts = append(serverOpts, httpapi.WithOwner(*coll.Owner))
	}
	if opts.Verbose {
		serverOpts = append(serverOpts, httpapi.WithAccessLog(cmd.ErrOrStderr()))
	}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return out.Fail(ExitCommandError, CodeStorage, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		serverOpts = append(serverOpts, httpapi.WithSaver(st))
	}
	srv := httpapi.NewServer(sess, serverOpts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("serving dashboard", "addr", addr, "session", sess.ID(), "source", coll.Source)
	if err := srv.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return WrapExitError(ExitCommandError, "server failed", err)
	}
	logger.Info("server stopped")
	return nil
}

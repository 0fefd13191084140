package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/mchmarny/navmenu/pkg/watch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendered menu over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	f := cmd.Flags()
	f.IntP(config.KeyPort, "p", server.DefaultPort, "port to listen on")
	f.String(config.KeyHost, "", "interface to bind")
	f.StringP(config.KeyKind, "k", "ul", "default outer element (ul, ol, div)")
	f.BoolP(config.KeyWatch, "w", false, "reload the menu file when it changes")
	f.Duration(config.KeyShutdownTimeout, server.DefaultShutdownTimeout, "grace period for in-flight requests")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	slog.Info("starting navmenu", "commit", a.info.Commit, "date", a.info.Date)

	b, err := menu.LoadFile(a.cfg.MenuFile)
	if err != nil {
		return err
	}
	store := menu.NewStore(b)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	counters := metric.NewMenu(reg)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return menu.Run(gCtx, store, counters, menu.Kind(a.cfg.Kind),
			server.WithHost(a.cfg.Host),
			server.WithPort(a.cfg.Port),
			server.WithShutdownTimeout(a.cfg.ShutdownTimeout),
			server.WithErrorLog(logger.NewLogLogger(slog.LevelError, false)),
			server.WithMetrics(reg),
		)
	})

	if a.cfg.Watch {
		r := watch.New(a.cfg.MenuFile, store, watch.WithCounter(counters.Reloads))
		g.Go(func() error {
			return r.Run(gCtx)
		})
	}

	return g.Wait()
}

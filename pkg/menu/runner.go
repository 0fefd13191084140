package menu

import (
	"context"
	"log/slog"

	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/server"
)

// Run serves the menu held by store at /menu and / until ctx is canceled.
// Extra server options, such as the port or a metrics endpoint, are applied
// after the menu routes.
func Run(ctx context.Context, store *Store, counters *metric.Menu, kind Kind, opt ...server.Option) error {
	if counters == nil {
		counters = metric.NoopMenu()
	}

	h := Handler(store, counters.Renders, kind)

	opts := []server.Option{
		server.WithHandler("/menu", h),
		server.WithHandler("/{$}", h),
		server.WithSimpleHealth(),
	}
	opts = append(opts, opt...)

	slog.Info("serving menu", "items", store.Load().Len(), "kind", kind)

	return server.New(opts...).Serve(ctx)
}

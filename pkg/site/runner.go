package site

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/navmenu/pkg/definition"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/server"
)

// Run serves the site of def until the context is canceled or an error
// occurs. Health and metrics endpoints are registered next to the pages.
func Run(ctx context.Context, def *definition.File, opt ...server.Option) error {
	reg := prometheus.NewRegistry()
	s := New(def, metric.NewRenderRecorder(reg))

	slog.Info("starting site", "title", def.Title, "menus", len(def.Menus))

	opts := []server.Option{
		server.WithSimpleHealth(),
		server.WithMetrics(reg),
		server.WithHandler("/", s.Handler()),
	}
	opts = append(opts, opt...)

	return server.New(opts...).Serve(ctx)
}

package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RenderRecorder records menu render outcomes.
type RenderRecorder struct {
	Renders  *Counter
	Duration *Histogram
	Items    *Counter
}

// NewRenderRecorder registers the menu metrics with reg.
func NewRenderRecorder(reg prometheus.Registerer) *RenderRecorder {
	return &RenderRecorder{
		Renders:  NewCounter(reg, "navmenu_renders_total", "Number of menu renders by menu and status.", "menu", "status"),
		Duration: NewHistogram(reg, "navmenu_render_duration_seconds", "Time spent building and rendering a menu.", nil, "menu"),
		Items:    NewCounter(reg, "navmenu_items_rendered_total", "Number of menu items rendered.", "menu"),
	}
}

// Record records a single render of menu with n items.
func (r *RenderRecorder) Record(menu string, n int, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	r.Renders.Increment(menu, status)
	r.Duration.Observe(d, menu)

	if err == nil {
		r.Items.Add(float64(n), menu)
	}
}

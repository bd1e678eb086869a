package testutil

import (
	"testing"
	"time"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
)

// AppOption adjusts the options of a test App.
type AppOption func(*app.Options)

// WithFlags turns the named flags on.
func WithFlags(names ...string) AppOption {
	return func(o *app.Options) {
		on := make(map[string]bool, len(names))
		for _, n := range names {
			on[n] = true
		}
		o.Flags = flags.New(on)
	}
}

// WithoutReportCache renders every report from scratch.
func WithoutReportCache() AppOption {
	return func(o *app.Options) { o.CacheReports = false }
}

// NewTestApp creates an empty App with the report cache and history on.
// It is closed when the test ends.
func NewTestApp(t testing.TB, opts ...AppOption) *app.App {
	t.Helper()
	o := app.Options{
		CacheReports:  true,
		ReportTTL:     time.Minute,
		AuditCapacity: 100,
		SessionID:     "test",
	}
	for _, opt := range opts {
		opt(&o)
	}
	a := app.New(o)
	t.Cleanup(a.Close)
	return a
}

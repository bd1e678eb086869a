package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/config"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/seed"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// openVenue builds the App described by c and loads c.SeedFile into it. The
// returned func closes the App and flushes pending spans.
func openVenue(ctx context.Context, c config.Config, out io.Writer) (*app.App, func(), error) {
	provider, err := tracing.NewProvider(ctx, c.Tracing)
	if err != nil {
		return nil, nil, fmt.Errorf("starting tracing: %w", err)
	}

	a := app.New(app.Options{
		Flags:         flags.New(c.Flags),
		Tracer:        provider.Tracer(),
		CacheReports:     c.ReportCache.Enabled,
		ReportTTL:        c.ReportCache.TTL,
		SlidingReportTTL: c.ReportCache.Sliding,
		AuditCapacity:    c.Audit.Capacity,
	})

	shutdown := func() {
		a.Close()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(sctx); err != nil {
			log.ErrorErr(log.CatApp, "Tracing shutdown failed", err)
		}
	}

	if c.SeedFile == "" {
		return a, shutdown, nil
	}

	s, err := seed.Load(c.SeedFile)
	if err == nil {
		var sum seed.Summary
		sum, err = seed.Apply(ctx, a, s)
		if err == nil {
			log.Info(log.CatSeed, "Seed applied", "file", c.SeedFile, "summary", sum)
			if out != nil {
				_, _ = fmt.Fprintf(out, "Seed carregado de %s: %s\n\n", c.SeedFile, sum)
			}
			return a, shutdown, nil
		}
	}
	shutdown()
	return nil, nil, fmt.Errorf("loading seed %s: %w", c.SeedFile, err)
}

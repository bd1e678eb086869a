// Package app is the venue application context: the single instance of every
// manager plus the operations that span more than one of them. Mutations made
// through Run are traced, logged, published as Change events and invalidate
// the cached reports of the domains they touch.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/artist"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/cachemanager"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/pubsub"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/request"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/room"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/shopping"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/stock"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// Options configures New. The zero value gives a working App with no
// tracing, no report cache and no history.
type Options struct {
	Flags *flags.Registry

	// Tracer receives one span per operation. Nil disables spans.
	Tracer trace.Tracer

	// CacheReports turns on the report cache. ReportCache is used when set,
	// otherwise an in-memory cache is created.
	CacheReports bool
	ReportCache  cachemanager.CacheManager[string, string]
	ReportTTL    time.Duration
	// SlidingReportTTL restarts an entry's TTL on every hit instead of
	// letting it expire ReportTTL after it was rendered.
	SlidingReportTTL bool

	// AuditCapacity is how many changes History keeps; 0 disables it.
	AuditCapacity int

	// SessionID labels log lines and spans. Empty generates a UUID.
	SessionID string
}

// App owns the venue state for one run.
type App struct {
	Catalog  *catalog.Catalog
	Stock    *stock.Stock
	Artists  *artist.Directory
	Rooms    *room.Directory
	Requests *request.Log
	Shopping *shopping.Directory

	flags     *flags.Registry
	tracer    trace.Tracer
	sessionID string

	changes   *pubsub.Broker[Change]
	stopAudit func()
	audit     *Audit
	reports   *cachemanager.ReadThroughCache[string, string, reportInput]
	reportTTL time.Duration
	sliding   bool
	sequence  int
	nowFunc   func() time.Time
}

// New creates an empty venue.
func New(opts Options) *App {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	a := &App{
		Catalog:   catalog.New(),
		Stock:     stock.New(),
		Artists:   artist.New(),
		Rooms:     room.New(),
		Requests:  request.New(),
		Shopping:  shopping.New(),
		flags:     opts.Flags,
		tracer:    opts.Tracer,
		sessionID: sessionID,
		changes:   pubsub.NewBroker[Change](),
		reportTTL: opts.ReportTTL,
		sliding:   opts.SlidingReportTTL,
		nowFunc:   time.Now,
	}

	if opts.AuditCapacity > 0 {
		a.audit = NewAudit(opts.AuditCapacity)
		a.stopAudit = a.changes.Observe(a.audit.Record)
	}

	cache := opts.ReportCache
	if cache == nil && opts.CacheReports {
		ttl := opts.ReportTTL
		if ttl <= 0 {
			ttl = cachemanager.DefaultExpiration
		}
		cache = cachemanager.NewInMemoryCacheManager[string, string]("reports", ttl, cachemanager.DefaultCleanupInterval)
	}
	a.reports = cachemanager.NewReadThroughCache(cache, a.render, cache == nil)

	log.Info(log.CatApp, "Venue created",
		"session", sessionID,
		"report_cache", cache != nil,
		"sliding_ttl", opts.SlidingReportTTL,
		"audit_capacity", opts.AuditCapacity,
		"flags", opts.Flags.EnabledNames())
	return a
}

// SessionID identifies this run.
func (a *App) SessionID() string { return a.sessionID }

// Tracer returns the tracer operations report to. May be nil.
func (a *App) Tracer() trace.Tracer { return a.tracer }

// Flags returns the feature flags the app was built with. May be nil.
func (a *App) Flags() *flags.Registry { return a.flags }

// History returns the recorded changes, oldest first. Empty when the audit
// trail is disabled.
func (a *App) History() []Change {
	if a.audit == nil {
		return nil
	}
	return a.audit.Entries()
}

// Close stops the change broker and empties the report cache. The app must
// not be used afterwards.
func (a *App) Close() {
	if a.stopAudit != nil {
		a.stopAudit()
	}
	a.changes.Close()
	if err := a.reports.Flush(context.Background()); err != nil {
		log.ErrorErr(log.CatCache, "Flushing report cache failed", err)
	}
}

// Op describes one mutating operation.
type Op struct {
	Domain Domain
	Name   string
	// Touches lists every domain whose reports the operation can change.
	// Domain is always included.
	Touches []Domain
}

func (o Op) String() string {
	return string(o.Domain) + "." + o.Name
}

func (o Op) touched() []Domain {
	out := []Domain{o.Domain}
	for _, d := range o.Touches {
		if d != o.Domain {
			out = append(out, d)
		}
	}
	return out
}

// Run applies fn as operation name of domain d. fn returns the id of the
// entity it worked on (0 when there is none).
func (a *App) Run(ctx context.Context, d Domain, name string, fn func() (int, error)) (int, error) {
	return a.run(ctx, Op{Domain: d, Name: name}, func(context.Context) (int, error) { return fn() })
}

func (a *App) run(ctx context.Context, op Op, fn func(ctx context.Context) (int, error)) (int, error) {
	var id int
	err := tracing.WithSpan(ctx, a.tracer, tracing.SpanPrefixOperation+op.String(), func(ctx context.Context) error {
		var err error
		id, err = fn(ctx)
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.Int(tracing.AttrEntityID, id))
		if err != nil {
			return err
		}
		a.publish(ctx, op, id)
		a.invalidate(ctx, op.touched())
		return nil
	},
		attribute.String(tracing.AttrOperation, op.Name),
		attribute.String(tracing.AttrDomain, string(op.Domain)),
		attribute.String(tracing.AttrSessionID, a.sessionID),
	)
	if err != nil {
		log.Warn(log.CatApp, "Operation failed",
			"op", op, "id", id, "kind", tracing.ErrorKind(err), "error", err)
		return id, err
	}
	log.Info(log.CatApp, "Operation applied", "op", op, "id", id, "session", a.sessionID)
	return id, nil
}

func (a *App) publish(ctx context.Context, op Op, id int) {
	a.sequence++
	change := Change{
		Seq:       a.sequence,
		Domain:    op.Domain,
		Op:        op.Name,
		ID:        id,
		SessionID: a.sessionID,
		TraceID:   tracing.TraceID(ctx),
		At:        a.nowFunc(),
	}
	a.changes.Publish(eventTypeFor(op.Name), change)
	trace.SpanFromContext(ctx).AddEvent(tracing.EventChangePublished,
		trace.WithAttributes(attribute.Int("change.seq", change.Seq)))
}

func (a *App) invalidate(ctx context.Context, domains []Domain) {
	for _, d := range domains {
		prefix := string(d) + ":"
		n := a.reports.Invalidate(ctx, func(key string) bool { return strings.HasPrefix(key, prefix) })
		if n > 0 {
			log.Debug(log.CatCache, "Reports invalidated", "domain", d, "count", n)
			trace.SpanFromContext(ctx).AddEvent(tracing.EventCacheInvalidated,
				trace.WithAttributes(attribute.String(tracing.AttrDomain, string(d))))
		}
	}
}

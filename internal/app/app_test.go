package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// createTestApp creates an App with history and the report cache on.
func createTestApp(t *testing.T, opts ...func(*app.Options)) *app.App {
	t.Helper()
	o := app.Options{
		CacheReports:  true,
		ReportTTL:     time.Minute,
		AuditCapacity: 50,
		SessionID:     "test-session",
	}
	for _, fn := range opts {
		fn(&o)
	}
	a := app.New(o)
	t.Cleanup(a.Close)
	return a
}

func TestApp_Empty(t *testing.T) {
	a := createTestApp(t)
	assert.Equal(t, "test-session", a.SessionID())
	assert.Zero(t, a.Catalog.Len())
	assert.Zero(t, a.Stock.Len())
	assert.Zero(t, a.Rooms.Len())
	assert.Zero(t, a.Artists.Len())
	assert.Zero(t, a.Requests.Len())
	assert.Zero(t, a.Shopping.Len())
	assert.Empty(t, a.History())
}

func TestApp_GeneratesSessionID(t *testing.T) {
	a := app.New(app.Options{})
	defer a.Close()
	require.Len(t, a.SessionID(), 36)
}

func TestRun_RecordsHistory(t *testing.T) {
	a := createTestApp(t)
	ctx := context.Background()

	id, err := a.Run(ctx, app.DomainCatalog, "register", func() (int, error) {
		return a.Catalog.Register("Toalha", 12.5)
	})
	require.NoError(t, err)

	_, err = a.Run(ctx, app.DomainCatalog, "register", func() (int, error) {
		return a.Catalog.Register("Toalha", 1)
	})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	history := a.History()
	require.Len(t, history, 1, "failed operations are not recorded")
	assert.Equal(t, 1, history[0].Seq)
	assert.Equal(t, app.DomainCatalog, history[0].Domain)
	assert.Equal(t, "register", history[0].Op)
	assert.Equal(t, id, history[0].ID)
	assert.Equal(t, "test-session", history[0].SessionID)
}

func TestRun_HistoryDisabled(t *testing.T) {
	a := createTestApp(t, func(o *app.Options) { o.AuditCapacity = 0 })
	_, err := a.Run(context.Background(), app.DomainStock, "receive", func() (int, error) {
		return 1, a.Stock.Receive(1, "Água", 3)
	})
	require.NoError(t, err)
	require.Empty(t, a.History())
}

func TestReport_CachedUntilChange(t *testing.T) {
	a := createTestApp(t)
	ctx := context.Background()

	first, err := a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.Contains(t, first, "Estoque vazio")

	// A direct mutation bypasses Run, so the cached report is served.
	require.NoError(t, a.Stock.Receive(1, "Água", 5))
	cached, err := a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.Equal(t, first, cached)

	// An operation of another domain leaves the stock report alone.
	_, err = a.Run(ctx, app.DomainCatalog, "register", func() (int, error) { return a.Catalog.Register("Água", 2) })
	require.NoError(t, err)
	cached, _ = a.Report(ctx, app.DomainStock, false)
	require.Equal(t, first, cached)

	_, err = a.Run(ctx, app.DomainStock, "receive", func() (int, error) { return 1, a.Stock.Receive(1, "Água", 1) })
	require.NoError(t, err)
	fresh, err := a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.Contains(t, fresh, "Água")
	require.Contains(t, fresh, "6")
}

func TestReport_NoCache(t *testing.T) {
	a := createTestApp(t, func(o *app.Options) { o.CacheReports = false })
	ctx := context.Background()

	_, err := a.Report(ctx, app.DomainCatalog, false)
	require.NoError(t, err)
	_, err = a.Catalog.Register("Toalha", 3)
	require.NoError(t, err)

	out, err := a.Report(ctx, app.DomainCatalog, false)
	require.NoError(t, err)
	require.Contains(t, out, "Toalha")
}

func TestReport_ZeroOptions(t *testing.T) {
	a := app.New(app.Options{})
	defer a.Close()
	ctx := context.Background()

	for _, kind := range app.Domains {
		_, err := a.Report(ctx, kind, false)
		require.NoError(t, err, kind)
	}
	_, err := a.Run(ctx, app.DomainCatalog, "register", func() (int, error) {
		return a.Catalog.Register("Toalha", 3)
	})
	require.NoError(t, err)

	out, err := a.Report(ctx, app.DomainCatalog, false)
	require.NoError(t, err)
	require.Contains(t, out, "Toalha")
}

func TestReport_SlidingTTL(t *testing.T) {
	a := createTestApp(t, func(o *app.Options) {
		o.ReportTTL = 200 * time.Millisecond
		o.SlidingReportTTL = true
	})
	ctx := context.Background()

	first, err := a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.NoError(t, a.Stock.Receive(1, "Água", 5))

	// Each hit restarts the TTL, so the stale render outlives ReportTTL.
	for range 4 {
		time.Sleep(100 * time.Millisecond)
		cached, err := a.Report(ctx, app.DomainStock, false)
		require.NoError(t, err)
		require.Equal(t, first, cached)
	}
}

func TestReport_FixedTTLExpires(t *testing.T) {
	a := createTestApp(t, func(o *app.Options) { o.ReportTTL = 50 * time.Millisecond })
	ctx := context.Background()

	_, err := a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.NoError(t, a.Stock.Receive(1, "Água", 5))

	require.Eventually(t, func() bool {
		out, err := a.Report(ctx, app.DomainStock, false)
		return err == nil && strings.Contains(out, "Água")
	}, time.Second, 10*time.Millisecond)
}

func TestReport_JSON(t *testing.T) {
	a := createTestApp(t)
	ctx := context.Background()
	_, err := a.Catalog.Register("Toalha", 3)
	require.NoError(t, err)

	out, err := a.Report(ctx, app.DomainCatalog, true)
	require.NoError(t, err)
	require.Contains(t, out, `"name": "Toalha"`)

	out, err = a.Report(ctx, app.DomainShopping, true)
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestReport_UnknownKind(t *testing.T) {
	a := createTestApp(t)
	_, err := a.Report(context.Background(), app.Domain("bogus"), false)
	require.Error(t, err)
}

func TestParseDomain(t *testing.T) {
	d, err := app.ParseDomain(" Stock ")
	require.NoError(t, err)
	require.Equal(t, app.DomainStock, d)

	_, err = app.ParseDomain("venue")
	require.Error(t, err)
	require.Contains(t, err.Error(), "catalog, stock")
}

func TestRun_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	a := createTestApp(t, func(o *app.Options) { o.Tracer = tp.Tracer("test") })
	ctx := context.Background()

	_, err := a.Run(ctx, app.DomainStock, "issue", func() (int, error) { return 9, a.Stock.Issue(9, 1) })
	require.Error(t, err)
	_, err = a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	_, err = a.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)

	require.Equal(t, "venue.stock.issue", spans[0].Name())
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "issue", attrs[tracing.AttrOperation].AsString())
	assert.Equal(t, int64(9), attrs[tracing.AttrEntityID].AsInt64())
	assert.Equal(t, string(domain.KindNotFound), attrs[tracing.AttrErrorKind].AsString())

	require.Equal(t, "report.stock", spans[1].Name())
	assert.False(t, attrMap(spans[1].Attributes())[tracing.AttrCacheHit].AsBool())
	assert.True(t, attrMap(spans[2].Attributes())[tracing.AttrCacheHit].AsBool())
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestCreateRequest_StrictRoomRefs(t *testing.T) {
	ctx := context.Background()

	lenient := createTestApp(t)
	_, err := lenient.CreateRequest(ctx, 42, "Marina")
	require.NoError(t, err)

	strict := createTestApp(t, func(o *app.Options) {
		o.Flags = flags.New(map[string]bool{flags.FlagStrictRoomRefs: true})
	})
	_, err = strict.CreateRequest(ctx, 42, "Marina")
	require.ErrorIs(t, err, domain.ErrCamarimNotFound)
	require.Zero(t, strict.Requests.Len())

	roomID, err := strict.RegisterRoom(ctx, "Camarim A", 0)
	require.NoError(t, err)
	_, err = strict.CreateRequest(ctx, roomID, "Marina")
	require.NoError(t, err)
}

package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)

	line := Format(ts, LevelWarn, CatStock, "issue rejected", "item", 3, "requested", 9)
	require.Equal(t, "2026-03-01T20:30:00 [WARN] [stock] issue rejected item=3 requested=9\n", line)

	line = Format(ts, LevelInfo, CatApp, "odd", "orphan")
	require.Equal(t, "2026-03-01T20:30:00 [INFO] [app] odd orphan=<missing>\n", line)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelDebug,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLogger_WritesAndFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	restore := SetDefault(New(&buf))
	defer restore()

	Debug(CatMenu, "shown")
	SetMinLevel(LevelWarn)
	Info(CatMenu, "hidden")
	ErrorErr(CatSeed, "load failed", errors.New("boom"), "file", "venue.yaml")

	out := buf.String()
	require.Contains(t, out, "[DEBUG] [menu] shown")
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[ERROR] [seed] load failed file=venue.yaml error=boom")
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	restore := SetDefault(New(&buf))
	defer restore()

	SetEnabled(false)
	Error(CatApp, "nothing")
	require.Empty(t, buf.String())
}

func TestLogger_NoDefaultIsNoop(t *testing.T) {
	restore := SetDefault(nil)
	defer restore()

	require.NotPanics(t, func() { Info(CatApp, "dropped") })
	require.Nil(t, Subscribe(context.Background()))
}

func TestSubscribe_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	restore := SetDefault(New(&buf))
	defer restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := Subscribe(ctx)
	require.NotNil(t, ch)

	Info(CatCache, "invalidated", "kind", "stock")

	select {
	case ev := <-ch:
		require.Contains(t, ev.Payload, "[INFO] [cache] invalidated kind=stock")
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for log event")
	}
}

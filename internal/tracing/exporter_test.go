package tracing

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exp, err := NewFileExporter(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
}

func TestNewFileExporter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"existing":true}`+"\n"), 0600))

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	_, span := tp.Tracer("t").Start(context.Background(), "appended")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `{"existing":true}`)
	require.Contains(t, string(data), `"name":"appended"`)
}

func TestWriterExporter_RecordFormat(t *testing.T) {
	var buf bytes.Buffer
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(NewWriterExporter(&buf)))
	tracer := tp.Tracer("t")

	ctx, parent := tracer.Start(context.Background(), "venue.request.dispatch")
	_, child := tracer.Start(ctx, "venue.stock.issue",
		trace.WithAttributes(attribute.Int(AttrEntityID, 3)))
	child.AddEvent(EventPreflightFailed, trace.WithAttributes(attribute.Int("item", 1)))
	child.SetStatus(codes.Error, "short")
	child.End()
	parent.SetStatus(codes.Ok, "")
	parent.End()

	var records []SpanRecord
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)

	c, p := records[0], records[1]
	require.Equal(t, "venue.stock.issue", c.Name)
	require.Equal(t, "ERROR", c.Status)
	require.Equal(t, "short", c.StatusMsg)
	require.Equal(t, p.SpanID, c.ParentSpanID)
	require.Equal(t, p.TraceID, c.TraceID)
	require.EqualValues(t, 3, c.Attributes[AttrEntityID])
	require.Len(t, c.Events, 1)
	require.Equal(t, EventPreflightFailed, c.Events[0].Name)

	require.Equal(t, "OK", p.Status)
	require.Empty(t, p.ParentSpanID)
}

func TestFileExporter_ExportAfterShutdown(t *testing.T) {
	exp := NewWriterExporter(&bytes.Buffer{})
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
	require.Error(t, exp.ExportSpans(context.Background(), nil))
}

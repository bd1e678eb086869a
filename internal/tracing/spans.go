package tracing

// Span attribute keys.
const (
	AttrOperation = "venue.operation"
	AttrDomain    = "venue.domain"
	AttrEntityID  = "venue.entity_id"
	AttrSessionID = "session.id"
	AttrReport    = "report.kind"
	AttrCacheHit  = "cache.hit"

	AttrErrorKind    = "error.kind"
	AttrErrorMessage = "error.message"
)

// Span names are SpanPrefixOperation + operation name, e.g.
// "venue.stock.issue".
const (
	SpanPrefixOperation = "venue."
	SpanPrefixReport    = "report."
	SpanSeedApply       = "seed.apply"
)

// Span event names.
const (
	EventChangePublished  = "change.published"
	EventCacheInvalidated = "cache.invalidated"
	EventPreflightFailed  = "preflight.failed"
)

package app

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/presentation"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

type reportInput struct {
	Kind Domain
	JSON bool
}

func (in reportInput) key() string {
	format := "text"
	if in.JSON {
		format = "json"
	}
	return string(in.Kind) + ":" + format
}

// Report renders the listing of one domain as text or indented JSON.
// Rendered reports are cached until an operation touching the domain
// succeeds or the TTL runs out.
func (a *App) Report(ctx context.Context, kind Domain, asJSON bool) (string, error) {
	in := reportInput{Kind: kind, JSON: asJSON}
	var out string
	err := tracing.WithSpan(ctx, a.tracer, tracing.SpanPrefixReport+string(kind), func(ctx context.Context) error {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Bool(tracing.AttrCacheHit, true))
		var err error
		if a.sliding {
			out, err = a.reports.GetWithRefresh(ctx, in.key(), in, a.reportTTL)
		} else {
			out, err = a.reports.Get(ctx, in.key(), in, a.reportTTL)
		}
		return err
	},
		attribute.String(tracing.AttrReport, string(kind)),
		attribute.String(tracing.AttrSessionID, a.sessionID),
	)
	return out, err
}

// render builds a report from the live registries. Called on cache misses.
func (a *App) render(ctx context.Context, in reportInput) (string, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool(tracing.AttrCacheHit, false))
	if !slices.Contains(Domains, in.Kind) {
		return "", fmt.Errorf("unknown report kind %q", in.Kind)
	}

	if in.JSON {
		var buf bytes.Buffer
		if err := presentation.NewFormatter(&buf).FormatJSON(a.reportData(in.Kind)); err != nil {
			return "", fmt.Errorf("encoding %s report: %w", in.Kind, err)
		}
		return buf.String(), nil
	}

	switch in.Kind {
	case DomainCatalog:
		return presentation.CatalogText(a.Catalog.List()), nil
	case DomainStock:
		return presentation.StockText(a.Stock.List()), nil
	case DomainRooms:
		return presentation.RoomsText(a.Rooms.List()), nil
	case DomainArtists:
		return presentation.ArtistsText("Lista de Artistas", "Nenhum artista cadastrado.", a.Artists.List()), nil
	case DomainRequests:
		return presentation.RequestsText("Lista de Pedidos", "Nenhum pedido cadastrado.", a.Requests.List()), nil
	case DomainShopping:
		return presentation.ShoppingListsText(a.Shopping.List()), nil
	}
	return "", fmt.Errorf("unknown report kind %q", in.Kind)
}

func (a *App) reportData(kind Domain) any {
	switch kind {
	case DomainCatalog:
		return presentation.FromItems(a.Catalog.List())
	case DomainStock:
		return presentation.FromStock(a.Stock.List())
	case DomainRooms:
		return presentation.FromRooms(a.Rooms.List())
	case DomainArtists:
		return presentation.FromArtists(a.Artists.List())
	case DomainRequests:
		return presentation.FromRequests(a.Requests.List())
	case DomainShopping:
		return presentation.FromShoppingLists(a.Shopping.List())
	}
	return nil
}

package presentation

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/artist"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/request"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/room"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/shopping"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/stock"
)

// Column widths, in terminal cells.
const (
	colID       = 5
	colName     = 30
	colQuantity = 10

	colShopName  = 25
	colShopQty   = 8
	colShopPrice = 12

	stockRule    = 45
	ledgerRule   = 42
	shoppingRule = 60
	totalWidth   = 50
)

// cell pads s on the right to width cells. Longer values are not cut.
func cell(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// row joins padded cells and drops the padding after the last one.
func row(cells ...string) string {
	return strings.TrimRight(strings.Join(cells, ""), " ") + "\n"
}

// StockText renders the central stock table.
func StockText(entries []stock.Entry) string {
	var b strings.Builder
	b.WriteString("=== ESTOQUE ===\n")
	if len(entries) == 0 {
		b.WriteString("Estoque vazio\n")
		return b.String()
	}
	b.WriteString(row(cell("ID", colID), cell("Nome", colName), cell("Quantidade", colQuantity)))
	b.WriteString(strings.Repeat("-", stockRule) + "\n")
	for _, e := range entries {
		b.WriteString(row(
			cell(fmt.Sprint(e.ID), colID),
			cell(e.Name, colName),
			cell(fmt.Sprint(e.Quantity), colQuantity),
		))
	}
	return b.String()
}

// writeLines renders the indented item table used by rooms and requests.
func writeLines(b *strings.Builder, lines []ledger.Line, empty string) {
	if len(lines) == 0 {
		b.WriteString("  " + empty + "\n")
		return
	}
	b.WriteString(row(cell("  ID", colID), cell("Nome", colName), cell("Quantidade", colQuantity)))
	b.WriteString("  " + strings.Repeat("-", ledgerRule) + "\n")
	for _, l := range lines {
		b.WriteString(row(
			cell(fmt.Sprintf("  %d", l.ID), colID),
			cell(l.Name, colName),
			cell(fmt.Sprint(l.Quantity), colQuantity),
		))
	}
}

// RoomText renders one dressing room with its items.
func RoomText(r *room.DressingRoom) string {
	var b strings.Builder
	b.WriteString("=== CAMARIM ===\n")
	fmt.Fprintf(&b, "ID: %d\n", r.ID())
	fmt.Fprintf(&b, "Nome: %s\n", r.Name())
	fmt.Fprintf(&b, "Artista ID: %d\n", r.ArtistID())
	fmt.Fprintf(&b, "Total de itens: %d\n", r.TotalItems())
	b.WriteString("\nItens:\n")
	writeLines(&b, r.Items(), "Nenhum item no camarim")
	return b.String()
}

func statusLabel(s request.Status) string {
	if s == request.StatusFulfilled {
		return "ATENDIDO"
	}
	return "PENDENTE"
}

// RequestText renders one request with its status and items.
func RequestText(r *request.Request) string {
	var b strings.Builder
	b.WriteString("=== PEDIDO ===\n")
	fmt.Fprintf(&b, "ID: %d\n", r.ID())
	fmt.Fprintf(&b, "Camarim ID: %d\n", r.DressingRoomID())
	fmt.Fprintf(&b, "Artista: %s\n", r.ArtistName())
	fmt.Fprintf(&b, "Status: %s\n", statusLabel(r.Status()))
	b.WriteString("\nItens:\n")
	writeLines(&b, r.Items(), "Nenhum item no pedido")
	return b.String()
}

// ShoppingListText renders a shopping list with prices, the TOTAL line and
// the number of units on the list.
func ShoppingListText(l *shopping.List) string {
	var b strings.Builder
	b.WriteString("=== LISTA DE COMPRAS ===\n")
	fmt.Fprintf(&b, "ID: %d\n", l.ID())
	fmt.Fprintf(&b, "Descrição: %s\n", l.Description())
	b.WriteString("\nItens:\n")

	items := l.Items()
	if len(items) == 0 {
		b.WriteString("  Lista vazia\n")
		return b.String()
	}
	b.WriteString(row(
		cell("  ID", colID),
		cell("Nome", colShopName),
		cell("Qtd", colShopQty),
		cell("Preço Unit.", colShopPrice),
		cell("Subtotal", colShopPrice),
	))
	rule := "  " + strings.Repeat("-", shoppingRule) + "\n"
	b.WriteString(rule)
	for _, it := range items {
		b.WriteString(row(
			cell(fmt.Sprintf("  %d", it.ID), colID),
			cell(it.Name, colShopName),
			cell(fmt.Sprint(it.Quantity), colShopQty),
			Money(it.UnitPrice),
			Money(it.Subtotal),
		))
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "%*s%9.2f\n", totalWidth, "TOTAL: R$ ", l.Total())
	fmt.Fprintf(&b, "Total de itens: %d\n", l.TotalUnits())
	return b.String()
}

// Money renders a price as "R$ " followed by a 9-wide, 2-decimal amount.
func Money(v float64) string {
	return fmt.Sprintf("R$ %-9.2f", v)
}

// listing writes title followed by one block per entry, or empty alone.
// render must end its block with a newline.
func listing[T any](title, empty string, entries []T, render func(T) string) string {
	if len(entries) == 0 {
		return empty + "\n"
	}
	var b strings.Builder
	b.WriteString("=== " + title + " ===\n")
	for _, e := range entries {
		b.WriteString(render(e))
	}
	return b.String()
}

func display[T interface{ Display() string }](v T) string {
	return v.Display() + "\n"
}

// CatalogText lists every catalog item.
func CatalogText(items []*catalog.Item) string {
	return listing("Catálogo de Itens", "Nenhum item cadastrado no catálogo.", items, display[*catalog.Item])
}

// ArtistsText lists artists under title; empty is printed when there are none.
func ArtistsText(title, empty string, artists []*artist.Artist) string {
	return listing(title, empty, artists, display[*artist.Artist])
}

// RoomsText lists every dressing room.
func RoomsText(rooms []*room.DressingRoom) string {
	return listing("Lista de Camarins", "Nenhum camarim cadastrado.", rooms, func(r *room.DressingRoom) string {
		return RoomText(r) + "\n"
	})
}

// RequestsText lists requests under title; empty is printed when there are none.
func RequestsText(title, empty string, requests []*request.Request) string {
	return listing(title, empty, requests, func(r *request.Request) string {
		return RequestText(r) + "\n"
	})
}

// ShoppingListsText lists every shopping list.
func ShoppingListsText(lists []*shopping.List) string {
	return listing("Listas de Compras", "Nenhuma lista de compras cadastrada.", lists, func(l *shopping.List) string {
		return ShoppingListText(l) + "\n"
	})
}

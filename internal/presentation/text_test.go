package presentation

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/artist"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/request"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/room"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/shopping"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/stock"
)

func TestStockText_Empty(t *testing.T) {
	require.Equal(t, "=== ESTOQUE ===\nEstoque vazio\n", StockText(nil))
}

func TestStockText_Table(t *testing.T) {
	s := stock.New()
	require.NoError(t, s.Receive(2, "Toalha", 10))
	require.NoError(t, s.Receive(1, "Água", 24))

	lines := strings.Split(StockText(s.List()), "\n")
	require.Equal(t, "=== ESTOQUE ===", lines[0])
	require.Equal(t, "ID   Nome                          Quantidade", lines[1])
	require.Equal(t, strings.Repeat("-", 45), lines[2])
	require.Equal(t, "1    Água                          24", lines[3])
	require.Equal(t, "2    Toalha                        10", lines[4])

	// Accented names take one cell per rune.
	require.Equal(t, 35, runewidth.StringWidth(lines[3][:strings.Index(lines[3], "24")]))
}

func TestRoomText(t *testing.T) {
	rooms := room.New()
	id, err := rooms.Register("Camarim A", 3)
	require.NoError(t, err)

	r, _ := rooms.FindByID(id)
	out := RoomText(r)
	require.Contains(t, out, "=== CAMARIM ===\nID: 1\nNome: Camarim A\nArtista ID: 3\nTotal de itens: 0\n")
	require.Contains(t, out, "  Nenhum item no camarim\n")

	require.NoError(t, rooms.AddItem(id, 7, "Cabo", 4))
	r, _ = rooms.FindByID(id)
	out = RoomText(r)
	require.Contains(t, out, "Total de itens: 4\n")
	require.Contains(t, out, "  ID Nome                          Quantidade\n")
	require.Contains(t, out, "  "+strings.Repeat("-", 42)+"\n")
	require.Contains(t, out, "  7  Cabo                          4\n")
}

func TestRequestText_Status(t *testing.T) {
	log := request.New()
	id, err := log.Create(1, "Marina")
	require.NoError(t, err)
	require.NoError(t, log.AddItem(id, 1, "Água", 2))

	r, _ := log.FindByID(id)
	out := RequestText(r)
	require.Contains(t, out, "Artista: Marina\nStatus: PENDENTE\n")
	require.Contains(t, out, "  1  Água                          2\n")

	require.NoError(t, log.MarkFulfilled(id))
	r, _ = log.FindByID(id)
	require.Contains(t, RequestText(r), "Status: ATENDIDO\n")
}

func TestShoppingListText(t *testing.T) {
	d := shopping.New()
	id, err := d.Create("Show de sexta")
	require.NoError(t, err)

	l, _ := d.FindByID(id)
	require.Contains(t, ShoppingListText(l), "Descrição: Show de sexta\n\nItens:\n  Lista vazia\n")

	require.NoError(t, d.AddItem(id, 1, "Mic", 2, 10))
	require.NoError(t, d.AddItem(id, 2, "Cabo", 4, 2.5))
	l, _ = d.FindByID(id)
	out := ShoppingListText(l)

	require.Contains(t, out, "  1  Mic                      2       R$ 10.00    R$ 20.00\n")
	require.Contains(t, out, "  2  Cabo                     4       R$ 2.50     R$ 10.00\n")
	require.Contains(t, out, strings.Repeat(" ", 40)+"TOTAL: R$     30.00\nTotal de itens: 6\n")
	require.Equal(t, 2, strings.Count(out, "  "+strings.Repeat("-", 60)+"\n"))
}

func TestListings_Empty(t *testing.T) {
	require.Equal(t, "Nenhum item cadastrado no catálogo.\n", CatalogText(nil))
	require.Equal(t, "Nenhum camarim cadastrado.\n", RoomsText(nil))
	require.Equal(t, "Nenhuma lista de compras cadastrada.\n", ShoppingListsText(nil))
	require.Equal(t, "Nenhum pedido pendente.\n", RequestsText("Pedidos Pendentes", "Nenhum pedido pendente.", nil))
	require.Equal(t, "Nenhum artista cadastrado.\n", ArtistsText("Lista de Artistas", "Nenhum artista cadastrado.", nil))
}

func TestCatalogAndArtistListings(t *testing.T) {
	item, err := catalog.NewItem(1, "Toalha", 12.5)
	require.NoError(t, err)
	require.Equal(t,
		"=== Catálogo de Itens ===\nItem [ID: 1, Name: Toalha, Price: R$ 12.50]\n",
		CatalogText([]*catalog.Item{item}))

	a, err := artist.NewArtist(2, "Marina", 1)
	require.NoError(t, err)
	require.Equal(t,
		"=== Lista de Artistas ===\nArtista [ID: 2, Nome: Marina, Camarim ID: 1]\n",
		ArtistsText("Lista de Artistas", "-", []*artist.Artist{a}))
}

func TestMoney(t *testing.T) {
	require.Equal(t, "R$ 10.50    ", Money(10.5))
	require.Equal(t, "R$ 0.00     ", Money(0))
}

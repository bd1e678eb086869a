package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/room"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/shopping"
)

func TestFormatter_JSONRoomKeepsEmptyItems(t *testing.T) {
	rooms := room.New()
	id, err := rooms.Register("Camarim A", 0)
	require.NoError(t, err)
	r, _ := rooms.FindByID(id)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatJSON(FromRooms([]*room.DressingRoom{r})))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "Camarim A", decoded[0]["name"])
	require.Equal(t, []any{}, decoded[0]["items"])
}

func TestFormatter_JSONShoppingTotal(t *testing.T) {
	d := shopping.New()
	id, _ := d.Create("Sexta")
	require.NoError(t, d.AddItem(id, 1, "Mic", 2, 10))
	l, _ := d.FindByID(id)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatJSON(FromShoppingList(l)))
	require.Contains(t, buf.String(), `"total": 20`)
	require.Contains(t, buf.String(), `"subtotal": 20`)
}

func TestFormatter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatText(StockText(nil)))
	require.Equal(t, "=== ESTOQUE ===\nEstoque vazio\n", buf.String())
}

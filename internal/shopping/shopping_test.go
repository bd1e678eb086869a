package shopping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

func newList(t *testing.T, d *Directory) int {
	t.Helper()
	id, err := d.Create("Show de sexta")
	require.NoError(t, err)
	return id
}

func TestDirectory_Create(t *testing.T) {
	d := New()
	id := newList(t, d)

	l, ok := d.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, "Show de sexta", l.Description())
	assert.Empty(t, l.Items())

	_, err := d.Create(" ")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Equal(t, 1, d.Len())
}

func TestDirectory_SubtotalRecompute(t *testing.T) {
	d := New()
	id := newList(t, d)

	require.NoError(t, d.AddItem(id, 1, "Mic", 2, 10.0))
	items, _ := d.Items(id)
	assert.InDelta(t, 20.0, items[0].Subtotal, 1e-9)

	// Price from the first insertion is retained.
	require.NoError(t, d.AddItem(id, 1, "Mic", 3, 99.0))
	items, _ = d.Items(id)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 10.0, items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 50.0, items[0].Subtotal, 1e-9)

	require.NoError(t, d.UpdateQuantity(id, 1, 1))
	items, _ = d.Items(id)
	assert.InDelta(t, 10.0, items[0].Subtotal, 1e-9)

	require.NoError(t, d.AddItem(id, 2, "Cable", 4, 2.5))
	total, err := d.CalculateTotal(id)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, total, 1e-9)
}

func TestDirectory_AddItemValidation(t *testing.T) {
	d := New()
	id := newList(t, d)

	tests := []struct {
		name  string
		item  int
		label string
		qty   int
		price float64
	}{
		{"negative price", 1, "Mic", 1, -1},
		{"NaN price", 1, "Mic", 1, math.NaN()},
		{"zero qty", 1, "Mic", 0, 1},
		{"empty name", 1, "", 1, 1},
		{"negative id", -1, "Mic", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.AddItem(id, tt.item, tt.label, tt.qty, tt.price)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	items, _ := d.Items(id)
	require.Empty(t, items)

	require.NoError(t, d.AddItem(id, 1, "Water", 3, 0), "free items are allowed")
}

func TestDirectory_UpdateQuantityErrors(t *testing.T) {
	d := New()
	id := newList(t, d)
	require.NoError(t, d.AddItem(id, 1, "Mic", 2, 10))

	require.ErrorIs(t, d.UpdateQuantity(id, 5, 1), domain.ErrShoppingListNotFound)
	require.ErrorIs(t, d.UpdateQuantity(id, 1, 0), domain.ErrValidation)
	require.ErrorIs(t, d.UpdateQuantity(77, 1, 1), domain.ErrShoppingListNotFound)
}

func TestDirectory_RemoveAndClear(t *testing.T) {
	d := New()
	id := newList(t, d)
	require.NoError(t, d.AddItem(id, 1, "Mic", 2, 10))
	require.NoError(t, d.AddItem(id, 2, "Cable", 1, 5))

	require.NoError(t, d.RemoveItem(id, 1))
	require.ErrorIs(t, d.RemoveItem(id, 1), domain.ErrShoppingListNotFound)

	require.NoError(t, d.Clear(id))
	items, _ := d.Items(id)
	require.Empty(t, items)
	_, ok := d.FindByID(id)
	require.True(t, ok, "clear keeps the list")

	total, _ := d.CalculateTotal(id)
	require.Zero(t, total)
}

func TestDirectory_UpdateDescriptionAndDelete(t *testing.T) {
	d := New()
	id := newList(t, d)

	require.NoError(t, d.UpdateDescription(id, "Sábado"))
	l, _ := d.FindByID(id)
	require.Equal(t, "Sábado", l.Description())
	require.ErrorIs(t, d.UpdateDescription(id, ""), domain.ErrValidation)

	require.True(t, d.Delete(id))
	require.ErrorIs(t, d.Clear(id), domain.ErrShoppingListNotFound)
}

// === Property-Based Tests ===

func TestDirectory_PropertyBased_TotalIsSumOfSubtotals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := New()
		id, err := d.Create("p")
		if err != nil {
			t.Fatal(err)
		}

		n := rapid.IntRange(1, 30).Draw(t, "n")
		for i := 0; i < n; i++ {
			item := rapid.IntRange(1, 5).Draw(t, "item")
			qty := rapid.IntRange(1, 20).Draw(t, "qty")
			cents := rapid.IntRange(0, 10000).Draw(t, "cents")
			if rapid.Bool().Draw(t, "update") {
				_ = d.UpdateQuantity(id, item, qty)
				continue
			}
			if err := d.AddItem(id, item, "x", qty, float64(cents)/100); err != nil {
				t.Fatalf("add: %v", err)
			}
		}

		items, _ := d.Items(id)
		var sum float64
		for _, it := range items {
			if it.Quantity <= 0 {
				t.Fatalf("non-positive quantity %+v", it)
			}
			want := float64(it.Quantity) * it.UnitPrice
			if diff := it.Subtotal - want; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("stale subtotal %+v", it)
			}
			sum += it.Subtotal
		}
		total, _ := d.CalculateTotal(id)
		if diff := total - sum; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("total %v, sum %v", total, sum)
		}
	})
}

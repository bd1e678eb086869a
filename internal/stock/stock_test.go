package stock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

func TestStock_ReceiveMerges(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(1, "Rope", 5))
	require.NoError(t, s.Receive(1, "Rope", 3))
	require.Equal(t, 8, s.QuantityOf(1))
}

func TestStock_ReceiveKeepsFirstName(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(1, "Rope", 5))
	require.NoError(t, s.Receive(1, "Corda", 1))

	e, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, "Rope", e.Name)
}

func TestStock_ReceiveZeroIsNoop(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(1, "Rope", 0))
	require.Equal(t, 0, s.Len())

	require.NoError(t, s.Receive(1, "Rope", 2))
	require.NoError(t, s.Receive(1, "Rope", 0))
	require.Equal(t, 2, s.QuantityOf(1))
}

func TestStock_ReceiveValidation(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Receive(1, "Rope", -1), domain.ErrValidation)
	require.ErrorIs(t, s.Receive(-1, "Rope", 1), domain.ErrValidation)
	require.ErrorIs(t, s.Receive(1, " ", 1), domain.ErrValidation)
	require.Equal(t, 0, s.Len())
}

func TestStock_IssueBoundary(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(1, "X", 5))

	err := s.Issue(1, 6)
	var short *domain.InsufficientQuantityError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, 5, short.Available)
	assert.Equal(t, 6, short.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.ErrorIs(t, err, domain.ErrStock)
	assert.ErrorIs(t, err, domain.ErrDomain)
	require.Equal(t, 5, s.QuantityOf(1))

	require.NoError(t, s.Issue(1, 5))
	require.Equal(t, 0, s.QuantityOf(1))
	_, ok := s.Get(1)
	require.False(t, ok, "issuing everything must evict the entry")
	require.Empty(t, s.List())
}

func TestStock_IssueErrors(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Issue(9, 1), domain.ErrStockItemNotFound)

	require.NoError(t, s.Receive(9, "X", 1))
	require.ErrorIs(t, s.Issue(9, 0), domain.ErrValidation)
	require.ErrorIs(t, s.Issue(9, -2), domain.ErrValidation)
}

func TestStock_CheckAvailability(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(1, "X", 3))

	assert.True(t, s.CheckAvailability(1, 3))
	assert.True(t, s.CheckAvailability(1, 0))
	assert.False(t, s.CheckAvailability(1, 4))
	assert.False(t, s.CheckAvailability(2, 1))
	assert.Equal(t, 3, s.QuantityOf(1), "check must not mutate")
}

func TestStock_SetQuantity(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.SetQuantity(1, 4), domain.ErrStockItemNotFound)

	require.NoError(t, s.Receive(1, "X", 3))
	require.NoError(t, s.SetQuantity(1, 10))
	require.Equal(t, 10, s.QuantityOf(1))

	require.ErrorIs(t, s.SetQuantity(1, -1), domain.ErrValidation)
	require.Equal(t, 10, s.QuantityOf(1))

	require.NoError(t, s.SetQuantity(1, 0))
	require.Equal(t, 0, s.Len())
}

func TestStock_ListIsSnapshot(t *testing.T) {
	s := New()
	require.NoError(t, s.Receive(2, "B", 1))
	require.NoError(t, s.Receive(1, "A", 1))

	list := s.List()
	require.Equal(t, []int{1, 2}, []int{list[0].ID, list[1].ID})

	list[0].Quantity = 100
	require.Equal(t, 1, s.QuantityOf(1))
}

// === Property-Based Tests ===

func TestStock_PropertyBased_MatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()
		model := make(map[int]int)

		numOps := rapid.IntRange(1, 60).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			id := rapid.IntRange(1, 4).Draw(t, "id")
			qty := rapid.IntRange(0, 10).Draw(t, "qty")

			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				if err := s.Receive(id, "item", qty); err != nil {
					t.Fatalf("receive: %v", err)
				}
				if qty > 0 {
					model[id] += qty
				}
			case 1:
				err := s.Issue(id, qty)
				have, ok := model[id]
				switch {
				case !ok:
					if !errors.Is(err, domain.ErrStockItemNotFound) {
						t.Fatalf("issue absent: got %v", err)
					}
				case qty == 0:
					if !errors.Is(err, domain.ErrValidation) {
						t.Fatalf("issue zero: got %v", err)
					}
				case qty > have:
					if !errors.Is(err, domain.ErrInsufficientQuantity) {
						t.Fatalf("issue short: got %v", err)
					}
				default:
					if err != nil {
						t.Fatalf("issue: %v", err)
					}
					model[id] -= qty
					if model[id] == 0 {
						delete(model, id)
					}
				}
			case 2:
				want := s.CheckAvailability(id, qty)
				have, ok := model[id]
				if want != (ok && have >= qty) {
					t.Fatalf("availability mismatch for %d/%d", id, qty)
				}
			}
		}

		if s.Len() != len(model) {
			t.Fatalf("len %d, model %d", s.Len(), len(model))
		}
		for _, e := range s.List() {
			if e.Quantity <= 0 || model[e.ID] != e.Quantity {
				t.Fatalf("entry %+v disagrees with model %d", e, model[e.ID])
			}
		}
	})
}

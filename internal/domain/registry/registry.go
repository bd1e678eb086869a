package registry

import (
	"slices"
)

// Record is an entity stored in a Registry. T is normally a pointer type
// whose Clone returns an independent deep copy.
type Record[T any] interface {
	ID() int
	Clone() T
}

// Registry holds records in registration order and assigns ids from a
// monotonically increasing counter starting at 1. Ids are never reused.
type Registry[T Record[T]] struct {
	records []T
	nextID  int
}

// New creates an empty registry.
func New[T Record[T]]() *Registry[T] {
	return &Registry[T]{
		records: make([]T, 0),
		nextID:  1,
	}
}

// Create builds a record with the next id and appends it. When build fails
// nothing is stored and the counter does not advance.
func (r *Registry[T]) Create(build func(id int) (T, error)) (int, error) {
	id := r.nextID
	rec, err := build(id)
	if err != nil {
		return 0, err
	}
	r.records = append(r.records, rec)
	r.nextID++
	return id, nil
}

// FindByID returns the live record with the given id.
func (r *Registry[T]) FindByID(id int) (T, bool) {
	for _, rec := range r.records {
		if rec.ID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindFirst returns the first live record matching pred.
func (r *Registry[T]) FindFirst(pred func(T) bool) (T, bool) {
	for _, rec := range r.records {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindBy returns every live record matching pred, in registration order.
func (r *Registry[T]) FindBy(pred func(T) bool) []T {
	result := make([]T, 0)
	for _, rec := range r.records {
		if pred(rec) {
			result = append(result, rec)
		}
	}
	return result
}

// DeleteByID removes every record carrying id and reports whether any was
// removed.
func (r *Registry[T]) DeleteByID(id int) bool {
	before := len(r.records)
	r.records = slices.DeleteFunc(r.records, func(rec T) bool {
		return rec.ID() == id
	})
	return len(r.records) != before
}

// Update applies fn to the record with the given id. It returns false when
// no record matches; fn's error is returned as is.
func (r *Registry[T]) Update(id int, fn func(T) error) (bool, error) {
	rec, ok := r.FindByID(id)
	if !ok {
		return false, nil
	}
	return true, fn(rec)
}

// List returns deep copies of every record in registration order.
func (r *Registry[T]) List() []T {
	return cloneAll(r.records)
}

// Snapshot returns deep copies of the records matching pred.
func (r *Registry[T]) Snapshot(pred func(T) bool) []T {
	return cloneAll(r.FindBy(pred))
}

// Len returns the number of stored records.
func (r *Registry[T]) Len() int {
	return len(r.records)
}

func cloneAll[T Record[T]](records []T) []T {
	out := make([]T, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}

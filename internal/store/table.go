package store

import (
	"sort"
	"sync"
)

// table is a keyed in-memory collection with monotonic integer ids.
// Ids start at 1 and are never reused, even after deletion.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[int]T
	next  int
	setID func(*T, int)
	getID func(T) int
}

func newTable[T any](setID func(*T, int), getID func(T) int) *table[T] {
	return &table[T]{
		rows:  map[int]T{},
		setID: setID,
		getID: getID,
	}
}

func (t *table[T]) create(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.setID(&row, t.next)
	t.rows[t.next] = row
	return row
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) list() []T {
	return t.where(func(T) bool { return true })
}

func (t *table[T]) where(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := []T{}
	for _, row := range t.rows {
		if pred(row) {
			res = append(res, row)
		}
	}
	sort.Slice(res, func(i, j int) bool { return t.getID(res[i]) < t.getID(res[j]) })
	return res
}

// update applies fn to a copy of the stored row and writes it back.
// Returns the absent sentinel when id does not exist; fn is not called
// in that case, so no partial application occurs.
func (t *table[T]) update(id int, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&row)
	t.setID(&row, id) // id is immutable
	t.rows[id] = row
	return row, true
}

func (t *table[T]) delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) snapshot() ([]T, int) {
	rows := t.list()
	t.mu.RLock()
	defer t.mu.RUnlock()
	return rows, t.next
}

func (t *table[T]) restore(rows []T, next int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[int]T, len(rows))
	for _, row := range rows {
		id := t.getID(row)
		t.rows[id] = row
		if id > next {
			next = id
		}
	}
	t.next = next
}

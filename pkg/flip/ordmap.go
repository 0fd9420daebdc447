package flip

// orderedMap is a minimal insertion-ordered map. The alive and leaving sets
// must iterate in render order, which Go's built-in map does not preserve.
type orderedMap[K comparable, V any] struct {
	order []K
	items map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{items: map[K]V{}}
}

func (m *orderedMap[K, V]) set(k K, v V) {
	if _, ok := m.items[k]; !ok {
		m.order = append(m.order, k)
	}
	m.items[k] = v
}

func (m *orderedMap[K, V]) get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *orderedMap[K, V]) has(k K) bool {
	_, ok := m.items[k]
	return ok
}

func (m *orderedMap[K, V]) delete(k K) {
	if _, ok := m.items[k]; !ok {
		return
	}
	delete(m.items, k)
	for i, existing := range m.order {
		if existing == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *orderedMap[K, V]) len() int {
	return len(m.order)
}

// keys returns the keys in insertion order. The slice is shared; callers
// must not mutate it.
func (m *orderedMap[K, V]) keys() []K {
	return m.order
}

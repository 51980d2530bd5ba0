package cart

import "sync"

// Manager hands out one cart per storage key. A cart lives for the
// lifetime of the process once requested; it is emptied only through
// its own Clear operation.
type Manager struct {
	mu    sync.Mutex
	store Store
	carts map[string]*Cart
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, carts: map[string]*Cart{}}
}

// Get returns the cart for key, hydrating it from the store on first
// access.
func (m *Manager) Get(key string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[key]; ok {
		return c
	}
	c := New(key, m.store)
	m.carts[key] = c
	return c
}

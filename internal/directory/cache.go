package directory

import "sync"

// Cache holds the client-side copy of the directory's current
// listing. It is the single source of truth the view derives from;
// filters never mutate it.
type Cache struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll swaps in a freshly normalized listing.
func (c *Cache) ReplaceAll(employees []Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.employees = append([]Employee(nil), employees...)
}

// Snapshot returns a copy of the cached listing in service order.
func (c *Cache) Snapshot() []Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Employee(nil), c.employees...)
}

// Get returns the cached record with the given id.
func (c *Cache) Get(id int) (Employee, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// SetDisabled flips the record to Inactive in place. Applying it to an
// already-disabled record is a no-op, which keeps repeated archive
// calls convergent.
func (c *Cache) SetDisabled(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.employees {
		if c.employees[i].ID == id {
			c.employees[i].Disabled = true
			c.employees[i].Status = StatusInactive
			return true
		}
	}
	return false
}

// Len reports how many records are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.employees)
}

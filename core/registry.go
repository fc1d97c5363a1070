package core

// Registry manages the lifecycle of resources of a specific type.
//
// It combines IdentityManager (for ID allocation) with Storage (for item storage)
// to provide a complete resource management solution.
//
// Thread-safe for concurrent use.
type Registry[T any, M Marker] struct {
	identity *IdentityManager[M]
	storage  *Storage[T, M]
	key      RawID
}

// NewRegistry creates a new registry for the given types. Each registry
// draws its own encryption key, so a handle minted by one registry decodes
// to an uncorrelated (index, epoch) pair when presented to another.
func NewRegistry[T any, M Marker]() *Registry[T, M] {
	return &Registry[T, M]{
		identity: NewIdentityManager[M](),
		storage:  NewStorage[T, M](64),
		key:      newPoolKey(),
	}
}

// encode turns an internal (index, epoch) ID into the public handle value
// handed back to callers.
func (r *Registry[T, M]) encode(id ID[M]) ID[M] {
	return ID[M]{raw: id.Raw().Encrypt(r.key)}
}

// decode recovers the internal (index, epoch) ID from a public handle.
// A handle minted by a different registry decodes to garbage here rather
// than panicking; the subsequent Storage lookup rejects it.
func (r *Registry[T, M]) decode(id ID[M]) ID[M] {
	return ID[M]{raw: id.Raw().Decrypt(r.key)}
}

// Register allocates a new ID and stores the item.
// Returns the allocated, encrypted public handle.
func (r *Registry[T, M]) Register(item T) ID[M] {
	id := r.identity.Alloc()
	r.storage.Insert(id, item)
	return r.encode(id)
}

// Get retrieves an item by ID.
// Returns the item and nil error if found, or zero value and error if not found
// or epoch mismatch.
func (r *Registry[T, M]) Get(pub ID[M]) (T, error) {
	if pub.IsZero() {
		var zero T
		return zero, ErrInvalidID
	}

	id := r.decode(pub)
	item, ok := r.storage.Get(id)
	if !ok {
		var zero T
		// Check if it's epoch mismatch or not found
		if r.storage.Capacity() > int(id.Index()) {
			return zero, ErrEpochMismatch
		}
		return zero, ErrResourceNotFound
	}

	return item, nil
}

// GetMut retrieves an item by ID for mutation.
// The callback is called with a pointer to the item if found.
// Returns nil if successful, or error if not found.
func (r *Registry[T, M]) GetMut(pub ID[M], fn func(*T)) error {
	if pub.IsZero() {
		return ErrInvalidID
	}

	id := r.decode(pub)
	if !r.storage.GetMut(id, fn) {
		if r.storage.Capacity() > int(id.Index()) {
			return ErrEpochMismatch
		}
		return ErrResourceNotFound
	}

	return nil
}

// Unregister removes an item by ID and releases the ID for reuse.
// Returns the removed item and nil error, or zero value and error if not found.
func (r *Registry[T, M]) Unregister(pub ID[M]) (T, error) {
	if pub.IsZero() {
		var zero T
		return zero, ErrInvalidID
	}

	id := r.decode(pub)
	item, ok := r.storage.Remove(id)
	if !ok {
		var zero T
		if r.storage.Capacity() > int(id.Index()) {
			return zero, ErrEpochMismatch
		}
		return zero, ErrResourceNotFound
	}

	r.identity.Release(id)
	return item, nil
}

// Contains checks if an item exists at the given ID.
func (r *Registry[T, M]) Contains(pub ID[M]) bool {
	if pub.IsZero() {
		return false
	}
	return r.storage.Contains(r.decode(pub))
}

// Count returns the number of registered items.
func (r *Registry[T, M]) Count() uint64 {
	return r.identity.Count()
}

// ForEach iterates over all registered items.
// The callback receives the public handle and item for each entry.
// Return false from the callback to stop iteration.
func (r *Registry[T, M]) ForEach(fn func(ID[M], T) bool) {
	r.storage.ForEach(func(id ID[M], item T) bool {
		return fn(r.encode(id), item)
	})
}

// Clear removes all items from the registry.
// Note: This does not release IDs properly - use only for cleanup.
func (r *Registry[T, M]) Clear() {
	r.storage.Clear()
}

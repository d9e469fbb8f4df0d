// Package repository owns the canonical in-memory property collection. The
// collection lives for the process lifetime and resets on restart; all access
// goes through PropertyRepository so callers never touch the backing slice.
package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/gosimple/slug"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
)

type PropertyRepository interface {
	List() []model.Property
	GetByID(id int) (model.Property, bool)
	Create(draft model.Property) model.Property
	Update(id int, draft model.Property) (model.Property, bool)
	Delete(id int) bool
}

// InMemory is the single-process implementation. Mutations are serialized
// behind one lock; reads take snapshots so the query pipeline never sees a
// half-applied write.
type InMemory struct {
	mu         sync.RWMutex
	properties []model.Property
}

func NewInMemory(seed []model.Property) *InMemory {
	props := make([]model.Property, len(seed))
	copy(props, seed)
	return &InMemory{properties: props}
}

// List returns all properties in insertion order.
func (r *InMemory) List() []model.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Property, len(r.properties))
	copy(out, r.properties)
	return out
}

func (r *InMemory) GetByID(id int) (model.Property, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.properties {
		if p.ID == id {
			return p, true
		}
	}
	return model.Property{}, false
}

// Create assigns the next identifier (max existing + 1, or 1 on an empty
// repository), stamps both timestamps and appends the record.
func (r *InMemory) Create(draft model.Property) model.Property {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.properties {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	now := time.Now().UTC()
	draft.ID = maxID + 1
	draft.Slug = r.slugFor(draft.Title, draft.ID)
	draft.CreatedAt = now
	draft.UpdatedAt = now

	r.properties = append(r.properties, draft)
	return draft
}

// Update overwrites every mutable field in place and refreshes the update
// timestamp. Identifier and creation timestamp are immutable.
func (r *InMemory) Update(id int, draft model.Property) (model.Property, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.properties {
		if r.properties[i].ID != id {
			continue
		}

		p := &r.properties[i]
		p.Title = draft.Title
		p.Slug = r.slugFor(draft.Title, id)
		p.Price = draft.Price
		p.Bedrooms = draft.Bedrooms
		p.Bathrooms = draft.Bathrooms
		p.Sqft = draft.Sqft
		p.Description = draft.Description
		p.Address = draft.Address
		p.ImageURL = draft.ImageURL
		p.ImageURLs = draft.ImageURLs
		p.IsFeatured = draft.IsFeatured
		p.Features = draft.Features
		p.Type = draft.Type
		p.Status = draft.Status
		p.UpdatedAt = time.Now().UTC()
		return *p, true
	}
	return model.Property{}, false
}

// Delete removes the matching record and reports whether a removal occurred.
func (r *InMemory) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.properties {
		if p.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return true
		}
	}
	return false
}

// slugFor derives a URL slug from the title, suffixing the id when another
// property already claims it. Caller must hold the lock.
func (r *InMemory) slugFor(title string, id int) string {
	s := slug.Make(title)
	for _, p := range r.properties {
		if p.ID != id && p.Slug == s {
			return fmt.Sprintf("%s-%d", s, id)
		}
	}
	return s
}

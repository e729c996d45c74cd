package booking

import (
	"slices"

	"github.com/google/uuid"
)

// ShoeRoster holds the shoe entries of a booking in insertion order. Every
// mutation hands a copy of the full sequence to onChange.
type ShoeRoster struct {
	entries  []ShoeEntry
	newID    func() string
	onChange func([]ShoeEntry)
}

func NewShoeRoster(onChange func([]ShoeEntry)) *ShoeRoster {
	return &ShoeRoster{
		entries:  []ShoeEntry{},
		newID:    uuid.NewString,
		onChange: onChange,
	}
}

func (r *ShoeRoster) Add() ShoeEntry {
	entry := ShoeEntry{ID: r.newID()}
	r.entries = append(r.entries, entry)
	r.notify()
	return entry
}

// UpdateSize stores size as typed. Sizes are not checked here.
func (r *ShoeRoster) UpdateSize(id, size string) error {
	i := r.index(id)
	if i < 0 {
		return ErrShoeNotFound
	}

	r.entries[i].Size = size
	r.notify()
	return nil
}

// Remove deletes the entry with the given id. Unknown ids are ignored.
func (r *ShoeRoster) Remove(id string) {
	i := r.index(id)
	if i < 0 {
		return
	}

	r.entries = slices.Delete(r.entries, i, i+1)
	r.notify()
}

func (r *ShoeRoster) Entries() []ShoeEntry {
	return slices.Clone(r.entries)
}

func (r *ShoeRoster) index(id string) int {
	return slices.IndexFunc(r.entries, func(entry ShoeEntry) bool {
		return entry.ID == id
	})
}

func (r *ShoeRoster) notify() {
	if r.onChange != nil {
		r.onChange(r.Entries())
	}
}

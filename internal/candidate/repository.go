package candidate

import "sync"

// Repository is the ordered in-memory roster. Candidates are only ever appended.
type Repository struct {
	mu    sync.RWMutex
	items []*Candidate
}

// NewRepository returns a repository holding the given candidates in order.
func NewRepository(items []*Candidate) *Repository {
	r := &Repository{}
	r.Replace(items)
	return r
}

// Append adds a candidate to the end of the roster.
func (r *Repository) Append(c *Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
}

// Replace swaps the whole roster, used when a snapshot is restored.
func (r *Repository) Replace(items []*Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]*Candidate, 0, len(items))
	for _, c := range items {
		if c != nil {
			r.items = append(r.items, c)
		}
	}
}

// Snapshot returns the current roster in insertion order.
func (r *Repository) Snapshot() []*Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Candidate, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// FindByID returns the candidate with the given id or nil.
func (r *Repository) FindByID(id string) *Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c
		}
	}
	return nil
}

package sink

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
)

// RefScheme prefixes references handed out while no share server is running.
const RefScheme = "blob:presupuesto/"

// Shared is a blob registered under a reference.
type Shared struct {
	ID        string
	Name      string
	Blob      csvenc.Blob
	CreatedAt time.Time
}

// Registry maps share references to blobs for the life of the process.
// References are not durable and mean nothing to another process.
type Registry struct {
	mu      sync.RWMutex
	baseURL string
	entries map[string]Shared
	now     func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Shared),
		now:     time.Now,
	}
}

// SetBaseURL makes new references resolvable over HTTP as baseURL/blob/<id>.
// An empty baseURL restores the blob: scheme.
func (r *Registry) SetBaseURL(baseURL string) {
	r.mu.Lock()
	r.baseURL = strings.TrimRight(baseURL, "/")
	r.mu.Unlock()
}

// Register stores blob under a fresh reference and returns it.
func (r *Registry) Register(name string, blob csvenc.Blob) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = Shared{ID: id, Name: name, Blob: blob, CreatedAt: r.now()}
	return r.refLocked(id)
}

func (r *Registry) refLocked(id string) string {
	if r.baseURL != "" {
		return r.baseURL + "/blob/" + id
	}
	return RefScheme + id
}

// Resolve looks up a reference. It accepts a full reference in either form or
// a bare id.
func (r *Registry) Resolve(ref string) (Shared, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[idOf(ref)]
	return s, ok
}

// Revoke drops a reference and reports whether it existed.
func (r *Registry) Revoke(ref string) bool {
	id := idOf(ref)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Len returns the number of live references.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// List returns every live share, oldest first.
func (r *Registry) List() []Shared {
	r.mu.RLock()
	out := make([]Shared, 0, len(r.entries))
	for _, s := range r.entries {
		out = append(out, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Shared) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func idOf(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

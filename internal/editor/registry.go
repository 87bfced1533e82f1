package editor

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const DefaultSessionTTL = 30 * time.Minute

// Registry holds live sessions. A session idle for longer than the TTL is
// dropped.
type Registry struct {
	c           *cache.Cache
	removeDelay time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{c: cache.New(ttl, ttl/2+time.Second), removeDelay: DefaultRemoveDelay}
}

// SetRemoveDelay sets the deferred-removal delay of sessions created later.
func (r *Registry) SetRemoveDelay(d time.Duration) {
	r.removeDelay = d
}

// Create starts a session and returns its id.
func (r *Registry) Create(userID string) (string, *Session) {
	id := uuid.NewString()
	s := NewSession(userID)
	s.SetRemoveDelay(r.removeDelay)
	r.c.Set(id, s, cache.DefaultExpiration)
	return id, s
}

// Get returns a session and refreshes its expiry.
func (r *Registry) Get(id string) (*Session, bool) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	r.c.Set(id, s, cache.DefaultExpiration)
	return s, true
}

func (r *Registry) Delete(id string) {
	r.c.Delete(id)
}

func (r *Registry) Len() int { return r.c.ItemCount() }

package session

import (
	"sync"

	"atelie-store/internal/model"
)

// Resolver reports the currently authenticated user, or nil for a guest
// session. Implementations must be synchronous and side-effect-free; the
// cart layer derives its storage partition from the result.
type Resolver interface {
	Current() *model.User
}

// StaticResolver holds the session user explicitly. It is initialised once
// at application start and updated on login/logout; Clear makes it
// resettable for tests.
type StaticResolver struct {
	mu   sync.RWMutex
	user *model.User
}

// NewStaticResolver creates a resolver with no authenticated user.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// Current returns the session user, or nil for a guest.
func (r *StaticResolver) Current() *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user
}

// Set records the authenticated user.
func (r *StaticResolver) Set(user *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = user
}

// Clear removes the session user, returning the resolver to guest state.
func (r *StaticResolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
}

package cart

import "sync"

// Publisher broadcasts cart-change notifications to UI observers. It
// replaces a global event bus with a typed subscription: observers receive
// no payload and are expected to re-read the store.
type Publisher struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{subs: make(map[int]func())}
}

// Subscribe registers an observer and returns a function that removes it.
func (p *Publisher) Subscribe(fn func()) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Notify invokes every subscribed observer. Observers run synchronously,
// after the local state they will re-read is already durable.
func (p *Publisher) Notify() {
	p.mu.Lock()
	fns := make([]func(), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

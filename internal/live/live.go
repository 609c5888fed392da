// Package live tracks the running instances of application subsystems so
// help pages can read state, such as keyboard shortcuts, from the first one.
package live

import "sync"

// Actions exposes the keyboard shortcuts of one subsystem instance.
type Actions interface {
	// Shortcut returns the key sequence bound to action, if any.
	Shortcut(action string) (string, bool)
}

// Registry holds live instances per subsystem in registration order.
type Registry struct {
	mu   sync.RWMutex
	subs map[string][]*entry
}

type entry struct {
	actions Actions
}

func NewRegistry() *Registry {
	return &Registry{subs: make(map[string][]*entry)}
}

// Register adds an instance of subsystem and returns a func that removes it again.
func (r *Registry) Register(subsystem string, a Actions) (unregister func()) {
	e := &entry{actions: a}

	r.mu.Lock()
	r.subs[subsystem] = append(r.subs[subsystem], e)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			list := r.subs[subsystem]
			for i, x := range list {
				if x == e {
					r.subs[subsystem] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
			if len(r.subs[subsystem]) == 0 {
				delete(r.subs, subsystem)
			}
		})
	}
}

// First returns the earliest registered instance still alive.
func (r *Registry) First(subsystem string) (Actions, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.subs[subsystem]
	if len(list) == 0 {
		return nil, false
	}
	return list[0].actions, true
}

// Count returns the number of live instances of subsystem.
func (r *Registry) Count(subsystem string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[subsystem])
}
